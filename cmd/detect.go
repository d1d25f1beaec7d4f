package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sonavox/voiceguard/internal/app"
)

var (
	detectFormat     string
	detectOutputFile string
)

// detectCmd represents the detect command
var detectCmd = &cobra.Command{
	Use:   "detect [flags] <audio-file>",
	Short: "Classify a local audio file as human or AI-generated",
	Long: `Classify a local MP3 or WAV recording as human speech or
AI-generated voice.

The audio format is inferred from the file extension unless --format
is given. The result contains the classification label, a confidence
score, and a short explanation of the dominant indicators.

Examples:
  # Classify a recording
  voiceguard detect sample.mp3

  # Force the format and write YAML to a file
  voiceguard detect --format wav -o yaml --output-file result.yaml recording.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)

	detectCmd.Flags().StringVarP(&detectFormat, "format", "f", "",
		"audio format (mp3, wav), inferred from extension when omitted")
	detectCmd.Flags().StringVar(&detectOutputFile, "output-file", "",
		"write results to file instead of stdout")
}

func runDetect(cmd *cobra.Command, args []string) error {
	ctx := &app.Context{
		InputFile:    args[0],
		AudioFormat:  detectFormat,
		OutputFile:   detectOutputFile,
		OutputFormat: outputFormat,
		Verbose:      verbose,
	}

	detectApp, err := app.NewDetectApp(ctx)
	if err != nil {
		return err
	}

	return detectApp.Run()
}
