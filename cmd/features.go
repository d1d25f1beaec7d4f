package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sonavox/voiceguard/internal/app"
)

var (
	featuresFormat     string
	featuresOutputFile string
)

// featuresCmd represents the features command
var featuresCmd = &cobra.Command{
	Use:   "features [flags] <audio-file>",
	Short: "Extract the raw feature vector from an audio file",
	Long: `Extract the acoustic feature vector from a local MP3 or WAV
recording without classifying it.

The output includes per-statistic summaries of zero crossing rate,
spectral centroid, bandwidth, contrast and rolloff, MFCCs and their
deltas, chroma, pitch, and energy. Useful for threshold tuning and
offline analysis.

Examples:
  # Dump features as JSON
  voiceguard features sample.wav

  # Table output for quick inspection
  voiceguard features -o table sample.mp3`,
	Args: cobra.ExactArgs(1),
	RunE: runFeatures,
}

func init() {
	rootCmd.AddCommand(featuresCmd)

	featuresCmd.Flags().StringVarP(&featuresFormat, "format", "f", "",
		"audio format (mp3, wav), inferred from extension when omitted")
	featuresCmd.Flags().StringVar(&featuresOutputFile, "output-file", "",
		"write results to file instead of stdout")
}

func runFeatures(cmd *cobra.Command, args []string) error {
	ctx := &app.Context{
		InputFile:    args[0],
		AudioFormat:  featuresFormat,
		OutputFile:   featuresOutputFile,
		OutputFormat: outputFormat,
		FeaturesOnly: true,
		Verbose:      verbose,
	}

	featuresApp, err := app.NewDetectApp(ctx)
	if err != nil {
		return err
	}

	return featuresApp.Run()
}
