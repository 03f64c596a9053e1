package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"subkit/internal/config"
	"subkit/internal/subtitle"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [subtitle_file]",
	Short: "Convert a subtitle file to another format",
	Long: `Convert a subtitle file between SRT, WebVTT, ASS, and JSON input and
SRT, plain text, ASS, and JSON output, optionally retiming it on the way.

The input format is chosen by extension; WebVTT files carrying YouTube's
word-level <c> markup are detected automatically. Bilingual tracks keep
their translated text and the --layout flag controls how both texts are
arranged in the output.

Examples:
  subkit convert captions.vtt -o captions.srt
  subkit convert bilingual.srt -o out.ass --layout translated-top --style styles.ass
  subkit convert words.json -o merged.srt --optimize --threshold 800
  subkit convert speech.srt -o words.srt --split-words --strip-punctuation`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("layout", "l", "", "Text layout: original-top, translated-top, original-only, translated-only")
	convertCmd.Flags().
		StringP("style", "s", "", "File holding an ASS [V4+ Styles] section to use instead of the built-in styles")
	convertCmd.Flags().
		Bool("split-words", false, "Re-segment each cue into word-level cues")
	convertCmd.Flags().
		Bool("strip-punctuation", false, "Strip trailing full-width punctuation from cue texts")
	convertCmd.Flags().
		Bool("optimize", false, "Close small gaps between adjacent cues")
	convertCmd.Flags().
		Int("threshold", 0, "Gap threshold in milliseconds for --optimize")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	layoutStr, _ := cmd.Flags().GetString("layout")
	stylePath, _ := cmd.Flags().GetString("style")
	splitWords, _ := cmd.Flags().GetBool("split-words")
	stripPunctuation, _ := cmd.Flags().GetBool("strip-punctuation")
	optimize, _ := cmd.Flags().GetBool("optimize")
	threshold, _ := cmd.Flags().GetInt("threshold")

	if outputPath == "" {
		return fmt.Errorf("output path is required: use the --output flag")
	}
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", inputPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if layoutStr == "" {
		layoutStr = cfg.Layout
	}
	if threshold <= 0 {
		threshold = cfg.OptimizeThresholdMS
	}
	if stylePath == "" {
		stylePath = cfg.ASSStyleFile
	}

	layout, err := subtitle.ParseLayout(layoutStr)
	if err != nil {
		return err
	}

	style := ""
	if stylePath != "" && strings.EqualFold(filepath.Ext(outputPath), ".ass") {
		raw, err := os.ReadFile(stylePath)
		if err != nil {
			return fmt.Errorf("failed to read style file: %w", err)
		}
		style = string(raw)
	}

	logger.Infow("Converting subtitle file",
		"input", inputPath,
		"output", outputPath,
		"layout", layout.String(),
	)

	doc, err := subtitle.Open(inputPath, subtitle.WithSkipFunc(
		func(format subtitle.Format, reason string) {
			logger.Debugw("Skipped malformed block",
				"format", format,
				"reason", reason,
			)
		},
	))
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}
	if !doc.HasData() {
		logger.Warnw("Input parsed to zero segments", "input", inputPath)
	}

	logger.Infow("Parsed subtitle file",
		"segments", doc.Len(),
		"word_timestamped", doc.IsWordTimestamped(),
	)

	if splitWords {
		doc = doc.SplitToWordSegments()
		logger.Infow("Split into word segments", "segments", doc.Len())
	}
	if stripPunctuation {
		doc = doc.RemovePunctuation()
	}
	if optimize {
		doc = doc.OptimizeTiming(threshold)
		logger.Infow("Optimized cue timing", "threshold_ms", threshold)
	}

	if err := doc.Save(outputPath, style, layout); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Subtitles written successfully: %s\n", absOutput)
	fmt.Printf("  Segments: %d\n", doc.Len())

	return nil
}
