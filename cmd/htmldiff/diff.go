package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dacharyc/htmldiff"
)

func newDiffCmd(a *app) *cobra.Command {
	var literal bool

	cmd := &cobra.Command{
		Use:   "diff BEFORE AFTER",
		Short: "Render the inline difference of two documents",
		Long: `Render AFTER with the changes from BEFORE marked inline.

BEFORE and AFTER are file names, or "-" for stdin. With --text they are
taken as the literal texts to compare.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, after := args[0], args[1]
			if !literal {
				var err error
				before, after, err = readPair(cmd, args[0], args[1])
				if err != nil {
					return err
				}
			}

			start := time.Now()
			out := htmldiff.Diff(before, after, a.options()...)
			a.logger.Debug("diff rendered",
				"before_bytes", len(before),
				"after_bytes", len(after),
				"output_bytes", len(out),
				"elapsed", time.Since(start))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().BoolVarP(&literal, "text", "t", false, "treat arguments as literal text instead of file names")
	return cmd
}
