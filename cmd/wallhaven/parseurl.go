package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dixieflatline76/wallhaven/pkg/wallhaven"
)

var parseURLCmd = &cobra.Command{
	Use:   "parse-url <web url>",
	Short: "Convert a wallhaven.cc browser URL to its API form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, kind, err := wallhaven.ParseWebURL(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  (%s)\n", apiURL, kind)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseURLCmd)
}
