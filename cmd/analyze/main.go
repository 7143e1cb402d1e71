// Command analyze runs one analysis from the terminal and prints the
// event stream as NDJSON. Handy for prompt tuning without a frontend.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fitellieburger/ask-better-questions/internal/cache"
	"github.com/fitellieburger/ask-better-questions/internal/config"
	"github.com/fitellieburger/ask-better-questions/internal/model"
	"github.com/fitellieburger/ask-better-questions/internal/pipeline"
	"github.com/fitellieburger/ask-better-questions/internal/resolve"
	"github.com/fitellieburger/ask-better-questions/pkg/extract"
	"github.com/fitellieburger/ask-better-questions/pkg/llm"
)

var (
	flagMode      string
	flagURL       string
	flagChosenURL string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one article (pasted on stdin or fetched from a URL)",
		Long: "Runs the question pipeline once and writes the NDJSON event\n" +
			"stream to stdout. Without --url, article text is read from stdin.",
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagMode, "mode", "fast", "analysis mode: fast, deeper, cliff, or bundle")
	rootCmd.Flags().StringVar(&flagURL, "url", "", "analyze the article at this URL instead of stdin")
	rootCmd.Flags().StringVar(&flagChosenURL, "chosen-url", "", "candidate picked from an earlier choice event")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.Load()

	var generator llm.Generator
	switch {
	case cfg.Provider == "anthropic" && cfg.AnthropicKey != "":
		generator = llm.NewAnthropicClient(cfg.AnthropicKey)
	case cfg.OpenAIKey != "":
		generator = llm.NewOpenAIClient(cfg.OpenAIKey)
	default:
		return fmt.Errorf("no API key configured for provider %q", cfg.Provider)
	}

	req := pipeline.Request{Mode: model.ParseMode(flagMode)}
	if flagURL != "" {
		req.Resolve = resolve.Request{InputMode: "url", URL: flagURL, ChosenURL: flagChosenURL}
	} else {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		req.Resolve = resolve.Request{InputMode: "paste", Text: string(text)}
	}

	extractor := extract.NewClient(cfg.ExtractorURL, cfg.ExtractorKey)
	resolver := resolve.New(extractor, cache.Noop{})
	analyzer := pipeline.New(resolver, generator, cfg.RequestTimeout)

	enc := json.NewEncoder(os.Stdout)
	analyzer.Stream(cmd.Context(), req, func(e pipeline.Event) {
		enc.Encode(e)
	})

	return nil
}
