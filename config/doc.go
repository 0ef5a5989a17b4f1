// Package config loads pagekit settings from TOML or YAML files and the
// environment, and can watch a file for live reloads.
//
//	cfg, err := config.Load("pagekit.toml")
//	if err != nil {
//	    return err
//	}
//	go config.Watch(ctx, "pagekit.toml", func(c config.Config) { apply(c) })
//
// Environment variables use the PAGEKIT_ prefix and override file values.
package config
