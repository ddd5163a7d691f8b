package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codeloom-ai/codeloom/src"
	"github.com/codeloom-ai/codeloom/src/extract"
)

var (
	genProvider  string
	genModel     string
	genName      string
	genOverwrite bool
	genZip       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate a project from a prompt and write it to disk",
	Long: `Sends the prompt to the selected provider with the file-output contract,
extracts every fenced code block from the response, and materializes the
resulting tree under a fresh project directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, model, err := resolveClient(genProvider, genModel)
		if err != nil {
			return err
		}

		base := outDir
		if base == "" {
			base, _ = os.Getwd()
		}
		dir := src.ProjectDir(base, genName)

		fmt.Printf("🧶 Weaving with %s (%s)...\n", client.Provider(), model)
		res, err := src.RunGenerate(cmd.Context(), client, model, strings.Join(args, " "),
			extract.NewEngine(extract.WithLogger(logger)), nil,
			src.GenerateOptions{ProjectDir: dir, Overwrite: genOverwrite, Zip: genZip})
		if err != nil {
			return err
		}

		printActions(res)
		return nil
	},
}

func printActions(res *src.GenerateResult) {
	tree := res.Extraction.Tree
	if tree.Len() == 0 {
		fmt.Println("ℹ️ The response contained no code blocks; nothing was written.")
		return
	}

	fmt.Printf("📁 %s\n", res.ProjectDir)
	for _, a := range res.Actions {
		switch a.Action {
		case "saved":
			fmt.Printf("💾 Saved %s\n", a.Path)
		case "skipped":
			fmt.Printf("⏭️ Skipped %s (%s)\n", a.Path, a.Message)
		case "archived":
			fmt.Printf("📦 Archived %s (%s)\n", a.Path, a.Message)
		case "error":
			msg := a.Message
			if a.Err != nil {
				msg = fmt.Sprintf("%s: %v", msg, a.Err)
			}
			fmt.Printf("❌ %s %s\n", a.Path, msg)
		case "info":
			fmt.Printf("ℹ️ %s\n", a.Message)
		}
	}
	fmt.Println()
	fmt.Println(src.RenderFileTree(tree.Paths()))
}

func init() {
	generateCmd.Flags().StringVarP(&genProvider, "provider", "p", "", "provider to use")
	generateCmd.Flags().StringVarP(&genModel, "model", "m", "", "model ID (default: provider default)")
	generateCmd.Flags().StringVarP(&genName, "project-name", "n", "", "project directory name (default: timestamped)")
	generateCmd.Flags().BoolVar(&genOverwrite, "overwrite", false, "overwrite files that already exist")
	generateCmd.Flags().BoolVarP(&genZip, "zip", "z", false, "zip the project after writing")
	rootCmd.AddCommand(generateCmd)
}
