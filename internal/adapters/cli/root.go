package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wavenote/speechsubs/internal/adapters/cli/tui"
	"github.com/wavenote/speechsubs/internal/application"
	"github.com/wavenote/speechsubs/internal/config"
	"github.com/wavenote/speechsubs/internal/domain"
)

var (
	// Global flags
	voiceFlag      string
	outputFlag     string
	audioFlag      string
	languageFlag   string
	splitCharsFlag string
	cacheTTLFlag   string
	noCacheFlag    bool
	quietFlag      bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "speechsubs [text-file]",
		Short: "Synthesize speech with synchronized subtitles",
		Long: `speechsubs synthesizes speech from a text file using the Azure Batch
Synthesis API and writes an SRT subtitle track derived from the word-level
timing metadata the API returns.

Provide a text file to synthesize, or run without arguments for an
interactive menu.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRoot,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&voiceFlag, "voice", "", "Voice name (e.g. en-US-JennyNeural, zh-CN-YunjianNeural)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Subtitle output path (default: <text-file>.srt)")
	rootCmd.PersistentFlags().StringVar(&audioFlag, "audio", "", "Also copy the synthesized WAV to this path")
	rootCmd.PersistentFlags().StringVarP(&languageFlag, "language", "l", "", "Language code for the split-character set (default: from voice)")
	rootCmd.PersistentFlags().StringVar(&splitCharsFlag, "split-chars", "", "Explicit subtitle split characters, overriding the language set")
	rootCmd.PersistentFlags().StringVar(&cacheTTLFlag, "cache-ttl", "", "Cache lifetime (e.g., 24h, 7d)")
	rootCmd.PersistentFlags().BoolVar(&noCacheFlag, "no-cache", false, "Skip cache")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress progress output")

	// Add subcommands
	rootCmd.AddCommand(NewCacheCmd())
	rootCmd.AddCommand(NewConfigCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		// No arguments - show interactive menu
		return runInteractiveMenu()
	}

	return runSynthesize(args[0])
}

func runInteractiveMenu() error {
	options := []tui.MenuOption{
		{Label: "Synthesize a text file", Value: "synthesize"},
		{Label: "Show cache statistics", Value: "cache"},
		{Label: "Clear expired cache entries", Value: "clean"},
	}

	selected, err := tui.RunMenu("What would you like to do?", options)
	if err != nil {
		return err
	}

	switch selected {
	case "synthesize":
		fmt.Print("Enter text file path: ")
		path, err := readInputLine(os.Stdin)
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Println("Cancelled")
			return nil
		}
		return runSynthesize(path)
	case "cache":
		return runCacheStatus(nil, nil)
	case "clean":
		app, err := GetApp()
		if err != nil {
			return err
		}
		cleaned, err := app.CacheSvc.CleanExpired(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d expired entries\n", cleaned)
	case "":
		fmt.Println("Cancelled")
	}

	return nil
}

// readInputLine reads one whole line, so paths containing spaces survive.
func readInputLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// splitSet resolves the split-character set for this run: an explicit flag
// wins, then the language flag, then the language inferred from the voice.
func splitSet(cfg *config.Config, voice string) domain.SplitSet {
	if splitCharsFlag != "" {
		return domain.NewSplitSet(splitCharsFlag)
	}

	lang := languageFlag
	if lang == "" {
		lang = config.LangFromVoice(voice)
	}
	if lang == "" {
		lang = cfg.Defaults.Language
	}
	return domain.NewSplitSet(config.SplitCharsForLang(lang))
}

func runSynthesize(path string) error {
	app, err := GetApp()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(text)) == "" {
		return fmt.Errorf("%s is empty, nothing to synthesize", path)
	}

	voice := voiceFlag
	if voice == "" {
		voice = app.Config.Defaults.Voice
	}

	output := outputFlag
	if output == "" {
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ".srt"
	}

	steps := []string{"Synthesizing speech", "Writing subtitles"}
	progress := tui.NewProgressDisplay(steps, quietFlag)
	spinnerDone := progress.StartSpinner()

	progress.StartStep(0)

	ctx := context.Background()
	result, err := app.SynthesizeSvc.Synthesize(ctx, string(text), application.SynthesizeOptions{
		Voice:      voice,
		SplitChars: splitSet(app.Config, voice),
		OutputPath: output,
		AudioPath:  audioFlag,
		NoCache:    noCacheFlag,
	})
	if err != nil {
		close(spinnerDone)
		progress.FailStep(0, err.Error())
		return err
	}

	progress.CompleteStep(0)
	progress.StartStep(1)
	progress.CompleteStep(1)
	close(spinnerDone)

	outputs := map[string]string{"subtitles": result.SubtitlePath}
	if result.AudioPath != "" {
		outputs["audio"] = result.AudioPath
	}
	progress.Complete(outputs)

	if !quietFlag {
		if result.FromCache {
			fmt.Println("  (synthesis served from cache)")
		}
		if n := len(result.Groups); n > 0 {
			span := time.Duration(result.Groups[n-1].End) * time.Millisecond
			fmt.Printf("  %d subtitle groups spanning %s\n", n, tui.FormatClock(span))
		} else {
			fmt.Println("  0 subtitle groups")
		}
	}

	return nil
}
