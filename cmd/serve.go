package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sonavox/voiceguard/configs"
	"github.com/sonavox/voiceguard/internal/api"
)

var (
	serveHost string
	servePort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the voice detection HTTP API",
	Long: `Start the HTTP API server for voice detection.

The server exposes a health endpoint and an authenticated detection
endpoint that accepts base64-encoded MP3 or WAV audio and returns the
classification, confidence score, and explanation.

The API key is read from the VOICEGUARD_API_KEY environment variable
or the server.api_key configuration value. A .env file in the working
directory is loaded if present.

Examples:
  # Start with defaults (port 8000)
  voiceguard serve

  # Bind a specific host and port
  voiceguard serve --host 0.0.0.0 --port 9000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port")
}

func runServe(cmd *cobra.Command, args []string) error {
	loadEnvironment(viper.GetViper())

	cfg, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx)
}

// loadEnvironment reads a .env file when one exists and applies the
// VOICEGUARD_API_KEY variable regardless of where it came from.
func loadEnvironment(v *viper.Viper) {
	// Local development convenience, missing file is fine
	_ = godotenv.Load()

	if key := os.Getenv("VOICEGUARD_API_KEY"); key != "" {
		v.Set("server.api_key", key)
	}
}
