package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codeloom-ai/codeloom/src/provider"
)

var (
	askProvider string
	askModel    string
)

var askCmd = &cobra.Command{
	Use:   "ask [prompt]",
	Short: "Ask a one-off question without writing any files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, model, err := resolveClient(askProvider, askModel)
		if err != nil {
			return err
		}
		prompt := strings.Join(args, " ")
		logger.Debug("one-shot ask", zap.String("provider", string(client.Provider())), zap.String("model", model))

		resp, err := client.Complete(cmd.Context(), model, prompt)
		if err != nil {
			return err
		}
		fmt.Println(resp)
		return nil
	},
}

// resolveClient picks a provider and model from flags, falling back to the
// saved defaults.
func resolveClient(providerFlag, modelFlag string) (provider.Client, string, error) {
	var p provider.Provider
	model := modelFlag

	if providerFlag != "" {
		p = provider.Provider(strings.ToLower(providerFlag))
		if provider.DefaultModel(p) == "" {
			return nil, "", fmt.Errorf("unknown provider %q", providerFlag)
		}
	} else {
		var ok bool
		var savedModel string
		p, savedModel, ok = store.Default()
		if !ok {
			return nil, "", fmt.Errorf("no provider configured; run `codeloom setup` first")
		}
		if model == "" {
			model = savedModel
		}
	}

	key, ok := store.Key(p)
	if !ok {
		return nil, "", fmt.Errorf("no API key for %s; run `codeloom setup`", p.Title())
	}
	client, err := provider.NewClient(p, key)
	if err != nil {
		return nil, "", err
	}
	if model == "" {
		model = provider.DefaultModel(p)
	}
	return client, model, nil
}

func init() {
	askCmd.Flags().StringVarP(&askProvider, "provider", "p", "", "provider to use (openai, anthropic, google, perplexity, grok, cohere)")
	askCmd.Flags().StringVarP(&askModel, "model", "m", "", "model ID (default: provider default)")
	rootCmd.AddCommand(askCmd)
}
