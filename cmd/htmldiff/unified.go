package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dacharyc/htmldiff"
)

func newUnifiedCmd(a *app) *cobra.Command {
	var renderOut bool

	cmd := &cobra.Command{
		Use:   "unified BEFORE AFTER",
		Short: "Print the line diff of two documents",
		Long: `Print the line-oriented diff of two documents in the format read by
"htmldiff restore". With --render the diff is restored immediately, giving the
inline rendering of the whole document.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, after, err := readPair(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			diffText := htmldiff.Unified(before, after)
			a.logger.Debug("line diff generated", "bytes", len(diffText))

			if !renderOut {
				_, err = io.WriteString(cmd.OutOrStdout(), diffText)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), htmldiff.RestoreFromDiff(diffText, a.options()...))
			return err
		},
	}

	cmd.Flags().BoolVarP(&renderOut, "render", "r", false, "restore the diff into an inline rendering")
	return cmd
}
