package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/aescanero/dago-codegen-helpers/internal/codegen"
	"github.com/aescanero/dago-codegen-helpers/internal/config"
	"github.com/aescanero/dago-codegen-helpers/internal/eval/template"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("starting hbs-render",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)
	logger.Debug("configuration loaded", zap.String("config", cfg.String()))

	if err := run(cfg, logger); err != nil {
		logger.Error("render failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run renders the configured template
func run(cfg *config.Config, logger *zap.Logger) error {
	source, err := os.ReadFile(cfg.TemplateFile)
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	data, err := loadData(cfg.DataFile)
	if err != nil {
		return err
	}

	engine := template.NewEngine(nil, logger)
	if _, err := codegen.RegisterHelpers(engine, cfg.HelperOptions()); err != nil {
		return fmt.Errorf("failed to register helpers: %w", err)
	}

	result, err := engine.Render(string(source), data)
	if err != nil {
		return err
	}

	if cfg.OutputFile == "" {
		_, err = os.Stdout.WriteString(result)
		return err
	}
	if err := os.WriteFile(cfg.OutputFile, []byte(result), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("template rendered",
		zap.String("template_file", cfg.TemplateFile),
		zap.String("output_file", cfg.OutputFile),
		zap.Int("bytes", len(result)),
	)
	return nil
}

// loadData decodes the data file. JSON is valid YAML, so both formats work.
func loadData(path string) (map[string]interface{}, error) {
	data := map[string]interface{}{}
	if path == "" {
		return data, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}
	return data, nil
}

// initLogger initializes the logger
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
