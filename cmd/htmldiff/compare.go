package main

import (
	"fmt"
	"io"
	"time"

	godiff "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/dacharyc/htmldiff"
)

func newCompareCmd(a *app) *cobra.Command {
	var literal bool

	cmd := &cobra.Command{
		Use:   "compare BEFORE AFTER",
		Short: "Compare the token engine with a character-level diff",
		Long: `Diff BEFORE and AFTER with the htmldiff token engine and with go-diff's
character-level algorithm, and print operation counts, change regions and
timing for both.`,
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

			a.logger.Debug("comparing engines", "before_bytes", len(before), "after_bytes", len(after))
			return compare(cmd.OutOrStdout(), before, after)
		},
	}

	cmd.Flags().BoolVarP(&literal, "text", "t", false, "treat arguments as literal text instead of file names")
	return cmd
}

type diffStats struct {
	total, equal, delete, insert, replace int
	changeRegions                         int
}

func compare(w io.Writer, before, after string) error {
	a := htmldiff.Tokenize(before)
	b := htmldiff.Tokenize(after)

	start := time.Now()
	ops := htmldiff.Operations(a, b)
	tokenTime := time.Since(start)

	dmp := godiff.New()
	start = time.Now()
	goDiffs := dmp.DiffMain(before, after, false)
	goDiffTime := time.Since(start)

	tokenStats := analyzeOps(ops)
	goDiffStats := analyzeGoDiff(goDiffs)

	fmt.Fprintf(w, "before: %d tokens, after: %d tokens\n", len(a), len(b))

	fmt.Fprintf(w, "\nhtmldiff: %v\n", tokenTime)
	fmt.Fprintf(w, "  Operations: %d (Equal: %d, Delete: %d, Insert: %d, Replace: %d)\n",
		tokenStats.total, tokenStats.equal, tokenStats.delete, tokenStats.insert, tokenStats.replace)
	fmt.Fprintf(w, "  Change regions: %d\n", tokenStats.changeRegions)

	fmt.Fprintf(w, "\ngo-diff:  %v\n", goDiffTime)
	fmt.Fprintf(w, "  Operations: %d (Equal: %d, Delete: %d, Insert: %d)\n",
		goDiffStats.total, goDiffStats.equal, goDiffStats.delete, goDiffStats.insert)
	_, err := fmt.Fprintf(w, "  Change regions: %d\n", goDiffStats.changeRegions)
	return err
}

func analyzeOps(ops []htmldiff.DiffOp) diffStats {
	var s diffStats
	s.total = len(ops)
	inChange := false
	for _, op := range ops {
		switch op.Type {
		case htmldiff.Equal:
			s.equal++
			inChange = false
			continue
		case htmldiff.Delete:
			s.delete++
		case htmldiff.Insert:
			s.insert++
		case htmldiff.Replace:
			s.replace++
		}
		if !inChange {
			s.changeRegions++
			inChange = true
		}
	}
	return s
}

func analyzeGoDiff(diffs []godiff.Diff) diffStats {
	var s diffStats
	s.total = len(diffs)
	inChange := false
	for _, d := range diffs {
		switch d.Type {
		case godiff.DiffEqual:
			s.equal++
			inChange = false
			continue
		case godiff.DiffDelete:
			s.delete++
		case godiff.DiffInsert:
			s.insert++
		}
		if !inChange {
			s.changeRegions++
			inChange = true
		}
	}
	return s
}
