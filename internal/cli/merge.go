package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"subkit/internal/config"
	"subkit/internal/subtitle"

	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [subtitle_file]",
	Short: "Merge a range of cues into one",
	Long: `Merge the cues from --from through --to (inclusive, 0-based) into a
single cue spanning the range and write the result.

Without --text the merged cue concatenates the original texts of the range.
Translated text does not survive a merge.

Examples:
  subkit merge captions.srt --from 2 --to 5 -o merged.srt
  subkit merge captions.srt --from 0 --to 1 --text "combined line" -o merged.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().Int("from", 0, "First cue index of the range")
	mergeCmd.Flags().Int("to", 0, "Last cue index of the range (inclusive)")
	mergeCmd.Flags().String("text", "", "Replacement text for the merged cue")
	_ = mergeCmd.MarkFlagRequired("from")
	_ = mergeCmd.MarkFlagRequired("to")
}

func runMerge(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")
	text, _ := cmd.Flags().GetString("text")
	outputPath, _ := cmd.Flags().GetString("output")

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
	layout, err := subtitle.ParseLayout(cfg.Layout)
	if err != nil {
		return err
	}

	doc, err := subtitle.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	merged, err := doc.MergeSegments(from, to, text)
	if err != nil {
		return fmt.Errorf("failed to merge cues: %w", err)
	}

	logger.Infow("Merged cue range",
		"from", from,
		"to", to,
		"segments", merged.Len(),
	)

	if err := merged.Save(outputPath, "", layout); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Merged subtitles written: %s\n", absOutput)

	return nil
}
