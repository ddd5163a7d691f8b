package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/codeloom-ai/codeloom/src/provider"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show providers, models, and which keys are configured",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range provider.All() {
			mark := "⬜"
			if _, ok := store.Key(p); ok {
				mark = "✅"
			}
			fmt.Printf("%s %s\n", mark, p.Title())
			for i, m := range provider.Models(p) {
				suffix := ""
				if i == 0 {
					suffix = " (default)"
				}
				fmt.Printf("    %s%s\n", m, suffix)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
