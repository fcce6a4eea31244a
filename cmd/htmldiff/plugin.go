package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dacharyc/htmldiff"
	"github.com/dacharyc/htmldiff/internal/plugin"
)

func newPluginCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin",
		Short: "Serve host plugin requests over stdin and stdout",
		Long: `Read one JSON request from stdin and print the base64-encoded result.

  diff     {"before": "<base64>", "after": "<base64>"}
  restore  {"diff": "<base64>"}`,
	}

	cmd.AddCommand(
		newPluginSubCmd(a, "diff", "Diff two base64-encoded texts", plugin.DiffHTML),
		newPluginSubCmd(a, "restore", "Restore a base64-encoded line diff", plugin.RestoreHTML),
	)
	return cmd
}

type pluginHandler func(input []byte, opts ...htmldiff.Option) (string, error)

func newPluginSubCmd(a *app, use, short string, handle pluginHandler) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading request: %w", err)
			}

			out, err := handle(input, a.options()...)
			if err != nil {
				a.logger.Error("plugin request failed", "kind", use, "error", err)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
