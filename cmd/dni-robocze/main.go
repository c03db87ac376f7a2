package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/dni-robocze/internal/calendar"
	"github.com/username/dni-robocze/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	quiet      bool
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dni-robocze",
		Short: "Kalkulator dni roboczych w Polsce",
		Long:  "Workday calculator for the Polish calendar: counts workdays in a range, lists public holidays and shifts dates by a signed number of workdays.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Print only the raw result")

	rootCmd.AddCommand(countCmd())
	rootCmd.AddCommand(holidaysCmd())
	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(daemonCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Błąd: %v\n", userMessage(err))
		os.Exit(1)
	}
}

// initEngine builds the calendar engine from the loaded configuration.
func initEngine(cfg *config.Config) (*calendar.Engine, error) {
	table, err := cfg.Calendar.Table(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday table: %w", err)
	}

	engine, err := calendar.New(table)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize calendar engine: %w", err)
	}

	return engine, nil
}

// userMessage converts engine errors into the Polish messages shown to the
// user; anything untyped passes through unchanged.
func userMessage(err error) string {
	var unsupported *calendar.UnsupportedYearError
	if errors.As(err, &unsupported) {
		return fmt.Sprintf("Rok %d nie jest obsługiwany. Obsługiwane lata: %d-%d.",
			unsupported.Year, unsupported.MinYear, unsupported.MaxYear)
	}

	var invalid *calendar.InvalidRangeError
	if errors.As(err, &invalid) {
		return "Data początkowa nie może być późniejsza niż data końcowa."
	}

	var exhausted *calendar.RangeExhaustedError
	if errors.As(err, &exhausted) {
		return fmt.Sprintf("Wyszliśmy poza obsługiwany zakres lat (%d-%d).",
			exhausted.MinYear, exhausted.MaxYear)
	}

	return err.Error()
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	// Setup encoder
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Parse log level
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	// Create core with lumberjack writer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
