package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dacharyc/htmldiff"
)

func newRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore [FILE]",
		Short: "Rebuild an inline rendering from a line diff",
		Long: `Read a line-oriented diff (lines prefixed with ' ', '-' or '+') from FILE,
or stdin when FILE is omitted or "-", and print the marked-up rendering.
Lines with any other prefix are ignored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "-"
			if len(args) == 1 {
				name = args[0]
			}
			diffText, err := readInput(cmd, name)
			if err != nil {
				return err
			}

			start := time.Now()
			out := htmldiff.RestoreFromDiff(diffText, a.options()...)
			a.logger.Debug("diff restored",
				"lines", strings.Count(diffText, "\n"),
				"output_bytes", len(out),
				"elapsed", time.Since(start))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
