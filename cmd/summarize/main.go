package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"summarize/internal/config"
	"summarize/internal/domain"
	"summarize/internal/service"
	"summarize/internal/summarizer"
	"summarize/internal/tui"
)

var (
	cfgPath  string
	topWords int
	plain    bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "summarize [file.txt ...]",
		Short: "Extract key sentences from text",
		Long: "Extracts key sentences from text using word frequencies: the best\n" +
			"sentence for each of the most frequent words is selected and shown as a\n" +
			"bulleted list. Without --plain, a TUI opens with the key sentences\n" +
			"highlighted in the original text. With --plain and no file arguments,\n" +
			"text is read from stdin.",
		SilenceUsage: true,
		RunE:         run,
	}
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to YAML config (default: ./config.yaml, then ~/.config/summarize/config.yaml)")
	rootCmd.Flags().IntVar(&topWords, "top-words", 0, "number of top frequent words driving selection (overrides config)")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "print the bulleted summary to stdout instead of starting the TUI")
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if cfgPath == "" {
		cfgPath = os.Getenv("SUMMARIZE_CONFIG")
	}
	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("top-words") {
		cfg.Summarizer.TopWords = topWords
	}

	var svc domain.SummaryService = service.New(summarizer.NewFrequencySummarizer(), cfg.Summarizer.TopWords)

	if len(args) > 0 {
		text, summary, err := svc.SummarizeFiles(args)
		if err != nil {
			return err
		}
		if plain {
			fmt.Println(summary.Bulleted)
			return nil
		}
		return runTUI(svc, text, summary, cfg.UI.HighlightColor)
	}

	if plain {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		summary, err := svc.SummarizeText(string(data))
		if err != nil {
			return err
		}
		fmt.Println(summary.Bulleted)
		return nil
	}

	return runTUI(svc, "", domain.Summary{}, cfg.UI.HighlightColor)
}

func runTUI(svc domain.SummaryService, text string, summary domain.Summary, highlightColor string) error {
	m := tui.New(svc, text, summary, highlightColor)
	_, err := tea.NewProgram(m).Run()
	return err
}
