package cli

import (
	"fmt"
	"os"

	"subkit/internal/subtitle"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [subtitle_file]",
	Short: "Show the cues of a subtitle file",
	Long: `Parse a subtitle file and print its cues as a table, together with
whether the track carries word-level timestamps.

Examples:
  subkit inspect captions.srt
  subkit inspect words.vtt --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Int("limit", 0, "Show at most this many cues (0 = all)")
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	limit, _ := cmd.Flags().GetInt("limit")

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("subtitle file not found: %s", inputPath)
	}

	skipped := 0
	doc, err := subtitle.Open(inputPath, subtitle.WithSkipFunc(
		func(format subtitle.Format, reason string) {
			skipped++
			logger.Debugw("Skipped malformed block",
				"format", format,
				"reason", reason,
			)
		},
	))
	if err != nil {
		return fmt.Errorf("failed to parse subtitle file: %w", err)
	}

	fmt.Printf("File: %s\n", inputPath)
	fmt.Printf("  Segments: %d\n", doc.Len())
	fmt.Printf("  Word-level timestamps: %v\n", doc.IsWordTimestamped())
	if skipped > 0 {
		fmt.Printf("  Skipped blocks: %d\n", skipped)
	}
	if !doc.HasData() {
		return nil
	}

	fmt.Println(renderSegmentTable(doc, limit))
	return nil
}

func renderSegmentTable(doc *subtitle.Document, limit int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Timing", "Text", "Translation"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	for i, seg := range doc.Segments {
		if limit > 0 && i >= limit {
			tw.AppendFooter(table.Row{"", "", fmt.Sprintf("… %d more", doc.Len()-limit), ""})
			break
		}
		tw.AppendRow(table.Row{i + 1, seg.SRTTimestamp(), seg.Text, seg.TranslatedText})
	}
	return tw.Render()
}
