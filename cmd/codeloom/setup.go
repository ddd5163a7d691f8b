package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codeloom-ai/codeloom/src/provider"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Add API keys interactively",
	Long: `Paste API keys one at a time. The provider is detected from the key's
shape (sk-ant- for Anthropic, AIza for Gemini, and so on); keys it cannot
place are assigned by name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup()
	},
}

func runSetup() error {
	in := bufio.NewScanner(os.Stdin)
	fmt.Println("🧶 codeloom setup. Paste a key per line, empty line to finish.")

	for {
		fmt.Print("API key: ")
		if !in.Scan() {
			break
		}
		key := strings.TrimSpace(in.Text())
		if key == "" {
			break
		}

		p := provider.Detect(key)
		if p == provider.Unknown {
			fmt.Print("Could not detect the provider. Name it (openai/anthropic/google/perplexity/grok/cohere): ")
			if !in.Scan() {
				break
			}
			p = provider.Provider(strings.ToLower(strings.TrimSpace(in.Text())))
			if provider.DefaultModel(p) == "" {
				fmt.Println("❌ Unknown provider, key not saved.")
				continue
			}
		}

		if err := store.SetKey(p, key); err != nil {
			return err
		}
		fmt.Printf("✅ Saved %s key (default model %s)\n", p.Title(), provider.DefaultModel(p))
	}

	if err := in.Err(); err != nil {
		return err
	}
	if len(store.Configured()) == 0 {
		return fmt.Errorf("no keys configured")
	}
	fmt.Printf("Config written to %s\n", store.Path())
	return nil
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
