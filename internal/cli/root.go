package cli

import (
	"subkit/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subkit",
	Short: "Subtitle normalization and retiming toolkit",
	Long: `Subkit reads SRT, WebVTT, ASS, and JSON subtitle tracks into a
single representation, applies timing and segmentation transforms, and
writes the result back out as SRT, plain text, ASS, or JSON.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file path (default ~/.config/subkit/config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
