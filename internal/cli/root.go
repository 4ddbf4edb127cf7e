// Package cli implements the launchtheme command line.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/launchtime/launchtheme/internal/config"
	"github.com/launchtime/launchtheme/internal/db"
	"github.com/launchtime/launchtheme/internal/logging"
)

var (
	cfgFile        string
	dbPath         string
	logLevel       string
	logFormat      string
	jsonOutput     bool
	jsonlOutput    bool
	nonInteractive bool
	noProgress     bool
	themesDirs     []string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "launchtheme",
	Short: "Manage launcher themes and icon tinting",
	Long: `launchtheme switches launcher themes, keeps a snapshot of customized
colors per theme, and renders themed application icons.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/launchtheme/config.yaml)")
	flags.StringVar(&dbPath, "db", "", "preference database path")
	flags.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "", "log format (console, json)")
	flags.BoolVar(&jsonOutput, "json", false, "output JSON")
	flags.BoolVar(&jsonlOutput, "jsonl", false, "output JSON lines")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt or start the picker")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")
	flags.StringSliceVar(&themesDirs, "themes-dir", nil, "extra theme pack directory (repeatable)")
}

// ExecuteContext runs the root command with ctx.
func ExecuteContext(ctx context.Context, version string) error {
	rootCmd.Version = version
	return rootCmd.ExecuteContext(ctx)
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFormat != "" {
		cfg.Logging.Format = logFormat
	}
	if len(themesDirs) > 0 {
		cfg.Themes.Dirs = append(append([]string(nil), themesDirs...), cfg.Themes.Dirs...)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	}); err != nil {
		return err
	}

	appConfig = cfg
	logger := logging.Component("cli")
	logger.Debug().
		Str("config", cfg.Path).
		Str("db", cfg.Database.Path).
		Msg("configuration loaded")
	return nil
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}

func openDatabase() (*db.DB, error) {
	cfg := GetConfig()
	database, err := db.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if _, err := database.MigrateUp(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return database, nil
}

// IsJSONOutput reports whether --json was given.
func IsJSONOutput() bool {
	return jsonOutput
}

// IsJSONLOutput reports whether --jsonl was given.
func IsJSONLOutput() bool {
	return jsonlOutput
}

// WriteOutput encodes v as indented JSON, or as one JSON value per line for
// --jsonl when v is a slice.
func WriteOutput(out io.Writer, v any) error {
	if IsJSONLOutput() {
		return writeJSONL(out, v)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSONL(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		// Not a list: a single line.
		return enc.Encode(v)
	}
	for _, item := range items {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

// PreflightError is a user-facing error with remediation hints.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Hint != "" {
		b.WriteString("\n  hint: ")
		b.WriteString(e.Hint)
	}
	if e.NextStep != "" {
		b.WriteString("\n  try:  ")
		b.WriteString(e.NextStep)
	}
	return b.String()
}
