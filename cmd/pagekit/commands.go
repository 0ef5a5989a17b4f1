package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/pagekit/markdown"
	"github.com/randalmurphal/pagekit/request"
	"github.com/randalmurphal/pagekit/tokens"
	"github.com/randalmurphal/pagekit/truncate"
)

func newEstimateCmd(opts *rootOptions) *cobra.Command {
	var encoding string
	var useTiktoken bool

	cmd := &cobra.Command{
		Use:   "estimate [file]",
		Short: "Print the backend token estimate and budget usage",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			usage := tokens.NewBudget(opts.cfg.MaxTokens).Measure(text)
			fmt.Fprintln(cmd.OutOrStdout(), usage)

			if useTiktoken {
				tc, err := tokens.NewTiktokenCounter(encoding)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tokens\n", tc.Encoding(), tc.Count(text))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&useTiktoken, "tiktoken", false, "also count with a BPE encoding")
	cmd.Flags().StringVar(&encoding, "encoding", tokens.DefaultEncoding, "BPE encoding for --tiktoken")
	return cmd
}

func newTruncateCmd(opts *rootOptions) *cobra.Command {
	var contentOnly bool

	cmd := &cobra.Command{
		Use:   "truncate [file]",
		Short: "Truncate text to the token limit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			res := truncate.ForLanguage(string(opts.state.Language())).
				WithMaxTokens(opts.cfg.MaxTokens).
				Truncate(text)

			if contentOnly {
				_, err := fmt.Fprint(cmd.OutOrStdout(), res.Content)
				return err
			}
			return writeJSON(cmd, res)
		},
	}

	cmd.Flags().BoolVar(&contentOnly, "content-only", false, "print only the bounded content")
	return cmd
}

func newParseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Structure a markdown answer into render elements",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			elements := markdown.Parse(text)

			switch format {
			case "json":
				return writeJSON(cmd, elements)
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(elements); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			case "plain":
				_, err := fmt.Fprint(cmd.OutOrStdout(), markdown.PlainText(elements))
				return err
			default:
				return fmt.Errorf("unknown format %q (want json, yaml or plain)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml or plain")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of a render element",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := markdown.Schema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

// preparedRequest pairs a request body with the endpoint it would be posted to.
type preparedRequest struct {
	Endpoint string          `json:"endpoint"`
	Body     request.Request `json:"body"`
}

func newPrepareCmd(opts *rootOptions) *cobra.Command {
	var action, question string
	var withEndpoint bool

	cmd := &cobra.Command{
		Use:   "prepare [file]",
		Short: "Print the request body the panel would send for a page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			req, res, err := request.NewBuilder().
				WithMaxTokens(opts.cfg.MaxTokens).
				Build(request.Action(action), text, opts.state.Language(), question)
			if err != nil {
				return err
			}

			endpoint := opts.cfg.WithBackendURL(opts.state.BackendURL()).Endpoint()
			slog.Debug("prepared request",
				slog.String("request_id", req.ID.String()),
				slog.String("endpoint", endpoint),
				slog.String("usage", tokens.NewBudget(res.MaxTokens).Usage(res.FinalTokens).String()),
				slog.Bool("truncated", res.WasTruncated))

			if withEndpoint {
				return writeJSON(cmd, preparedRequest{Endpoint: endpoint, Body: req})
			}
			return writeJSON(cmd, req)
		},
	}

	cmd.Flags().StringVarP(&action, "action", "a", string(request.ActionSummarize), "backend action")
	cmd.Flags().StringVarP(&question, "question", "q", "", "question for the pergunta action")
	cmd.Flags().BoolVar(&withEndpoint, "with-endpoint", false, "wrap the body with the endpoint it would be posted to")
	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
