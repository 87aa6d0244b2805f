package main

import (
	"fmt"
	"os"

	"github.com/rdfkit/isograph/isograph/query"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <a.txt> <b.txt>",
	Short: "Compare two query files and report equivalence",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		b, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		report, err := query.Compare(string(a), string(b))
		if err != nil {
			return err
		}
		fmt.Println(report)
		return nil
	},
}
