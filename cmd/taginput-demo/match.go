package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/taginput/catalog"
	"github.com/iw2rmb/taginput/internal/grapheme"
)

var (
	idColor    = color.New(color.FgHiBlack)
	matchColor = color.New(color.FgGreen, color.Bold)
)

func newMatchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "match <query>",
		Short: "Print the catalog entries a query suggests",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, flags)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cmd.Context(), opts.catalog)
			if err != nil {
				return err
			}

			query := args[0]
			matches := cat.Match(query)
			if len(matches) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no matches for %q\n", query)
				return nil
			}
			printMatches(cmd, query, matches)
			return nil
		},
	}
}

func printMatches(cmd *cobra.Command, query string, matches []catalog.Entry) {
	out := cmd.OutOrStdout()
	n := queryClusters(query)
	for _, e := range matches {
		prefix, rest := splitClusters(e.Label, n)
		fmt.Fprintf(out, "%s\t%s%s\n", idColor.Sprint(e.ID), matchColor.Sprint(prefix), rest)
	}
}

// queryClusters is the number of label clusters a query covers. A leading
// space is the caret anchor and covers nothing.
func queryClusters(query string) int {
	clusters := grapheme.Split(query)
	if len(clusters) > 0 && grapheme.IsSpace(clusters[0]) {
		clusters = clusters[1:]
	}
	return len(clusters)
}

func splitClusters(s string, n int) (string, string) {
	clusters := grapheme.Split(s)
	if n > len(clusters) {
		n = len(clusters)
	}
	return strings.Join(clusters[:n], ""), strings.Join(clusters[n:], "")
}
