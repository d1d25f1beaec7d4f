package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sonavox/voiceguard/configs"
	"github.com/sonavox/voiceguard/internal/logging"
	"github.com/sonavox/voiceguard/internal/output"
	audioconfig "github.com/sonavox/voiceguard/pkg/audio/config"
	"github.com/sonavox/voiceguard/pkg/audio/detector"
	"github.com/sonavox/voiceguard/pkg/audio/loader"
)

// Context holds the CLI invocation state and configuration
type Context struct {
	// CLI arguments
	InputFile    string
	AudioFormat  string
	OutputFile   string
	OutputFormat string
	FeaturesOnly bool
	Verbose      bool

	// Runtime context
	Logger logging.Logger
	Config *configs.Config
}

// DetectApp handles a single command-line detection run
type DetectApp struct {
	ctx      *Context
	config   *configs.Config
	detector *detector.Detector
	logger   logging.Logger
}

// NewDetectApp creates a new detection application
func NewDetectApp(ctx *Context) (*DetectApp, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "detect_app",
	})
	ctx.Logger = logger

	cfg, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	ctx.Config = cfg

	logger.Debug("Detection application initialized", logging.Fields{
		"input_file":    ctx.InputFile,
		"output_format": ctx.OutputFormat,
		"features_only": ctx.FeaturesOnly,
	})

	return &DetectApp{
		ctx:      ctx,
		config:   cfg,
		detector: detector.New(loaderConfig(cfg), featureConfig(cfg)),
		logger:   logger,
	}, nil
}

// Run reads the input file, runs the detection pipeline, and outputs
// the result.
func (app *DetectApp) Run() error {
	data, err := os.ReadFile(app.ctx.InputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	format := app.ctx.AudioFormat
	if format == "" {
		format = formatFromExtension(app.ctx.InputFile)
	}
	if format == "" {
		return fmt.Errorf("cannot determine audio format of %q, use --format", app.ctx.InputFile)
	}

	var result any
	if app.ctx.FeaturesOnly {
		result, err = app.detector.ExtractFeatures(data, format)
	} else {
		result, err = app.detector.Detect(data, format)
	}
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	return app.outputResult(result)
}

// outputResult formats the result and writes it to the output file or
// stdout.
func (app *DetectApp) outputResult(result any) error {
	formatter := output.NewFormatter(app.ctx.OutputFormat)
	formatted, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("failed to format output data: %w", err)
	}

	if app.ctx.OutputFile != "" {
		return app.writeToFile(formatted)
	}

	_, err = os.Stdout.Write(formatted)
	return err
}

// writeToFile writes data to the specified output file
func (app *DetectApp) writeToFile(data []byte) error {
	dir := filepath.Dir(app.ctx.OutputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(app.ctx.OutputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	app.logger.Debug("Results written to file", logging.Fields{
		"output_file": app.ctx.OutputFile,
		"size_bytes":  len(data),
	})

	return nil
}

// formatFromExtension infers the audio format from the file extension.
func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return "mp3"
	case ".wav", ".wave":
		return "wav"
	default:
		return ""
	}
}

func loaderConfig(cfg *configs.Config) loader.Config {
	return loader.Config{
		TargetSampleRate: cfg.Audio.TargetSampleRate,
		AnalysisDuration: cfg.Audio.AnalysisDuration,
		MaxDuration:      cfg.Audio.MaxDuration,
		MaxSizeBytes:     int64(cfg.Audio.MaxSizeMB) << 20,
	}
}

func featureConfig(cfg *configs.Config) *audioconfig.FeatureConfig {
	fc := audioconfig.DefaultFeatureConfig()
	if cfg.Audio.WindowSize > 0 {
		fc.WindowSize = cfg.Audio.WindowSize
	}
	if cfg.Audio.HopSize > 0 {
		fc.HopSize = cfg.Audio.HopSize
	}
	if cfg.Audio.MelBands > 0 {
		fc.MelBands = cfg.Audio.MelBands
	}
	if cfg.Audio.MFCCCoefficients > 0 {
		fc.MFCCCoefficients = cfg.Audio.MFCCCoefficients
	}
	if cfg.Audio.ContrastBands > 0 {
		fc.ContrastBands = cfg.Audio.ContrastBands
	}
	if cfg.Audio.RolloffPercent > 0 {
		fc.RolloffPercent = cfg.Audio.RolloffPercent
	}
	return fc
}
