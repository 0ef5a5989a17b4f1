// Command pagekit exercises the side panel core from a terminal: it estimates
// and truncates page text, prepares request bodies, and structures answers.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
