package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/almery/breathe/internal/breath"
	"github.com/almery/breathe/internal/config"
	"github.com/almery/breathe/internal/store"
	"github.com/almery/breathe/internal/tui"
)

var version = "dev"

// storeSaver adapts the settings store to the TUI's saver interface.
type storeSaver struct {
	st *store.Store
}

func (s storeSaver) Save(cfg *config.Config) error {
	return s.st.Save(store.FromConfig(cfg))
}

// resolveSettingsPath picks the settings file path from, in order, the
// CLI flag, the config file, and the XDG default.
func resolveSettingsPath(changed bool, cfg *config.Config) (string, error) {
	if changed {
		return viper.GetString(FlagSettingsFile), nil
	}
	if cfg.Paths.Settings != "" {
		return cfg.Paths.Settings, nil
	}
	return store.DefaultPath()
}

// resolveLogDir picks the debug log directory the same way.
func resolveLogDir(changed bool, cfg *config.Config) (string, error) {
	if changed {
		return viper.GetString(FlagLogDir), nil
	}
	if cfg.Paths.LogDir != "" {
		return cfg.Paths.LogDir, nil
	}
	return store.DefaultLogDir()
}

// loadEffectiveConfig merges defaults, config file, env, persisted
// settings, and CLI flag overrides into the final session config.
func loadEffectiveConfig(cmd *cobra.Command) (*config.Config, *store.Store, error) {
	cfg, err := config.LoadConfig(viper.GetViper())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	settingsPath, err := resolveSettingsPath(cmd.Flags().Changed(FlagSettingsFile), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve settings path: %w", err)
	}

	st := store.New(settingsPath)
	persisted, err := st.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}
	if persisted != nil {
		persisted.ApplyTo(cfg)
	}
	cfg.Normalize()

	// Apply CLI flag overrides (only if explicitly set)
	if cmd.Flags().Changed(FlagPattern) {
		id := viper.GetString(FlagPattern)
		preset, ok := breath.ByID(id)
		if !ok {
			slog.Warn("unknown pattern, using default", "pattern", id, "default", preset.ID)
		}
		cfg.SetPattern(preset)
	}
	if cmd.Flags().Changed(FlagDuration) {
		cfg.Session.DurationSeconds = viper.GetInt(FlagDuration)
	}
	if cmd.Flags().Changed(FlagSpeed) {
		cfg.Session.AnimationSpeed = viper.GetFloat64(FlagSpeed)
	}
	cfg.Normalize()

	return cfg, st, nil
}

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	viper.SetEnvPrefix("BREATHE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "breathe",
		Short: "Guided breathing sessions in your terminal",
		Long: `breathe runs guided breathing sessions with animated visual feedback.

A session cycles through the four breath phases (inhale, hold, exhale,
rest) of the selected pattern until the session countdown runs out.
Settings are adjusted in the TUI or via flags, and persist between runs.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
				logger.Debug("verbose logging enabled")
			}

			cfg, st, err := loadEffectiveConfig(cmd)
			if err != nil {
				return err
			}

			// Determine TUI mode: explicit flag > auto-detect from TTY
			tuiEnabled := viper.GetBool(FlagTUI)
			if !cmd.Flags().Changed(FlagTUI) {
				tuiEnabled = term.IsTerminal(int(os.Stdout.Fd()))
			}

			if !tuiEnabled {
				return runHeadless(context.Background(), logger, cfg)
			}

			// In TUI mode, logs go to a rotating file so they cannot
			// corrupt the display.
			logDir, err := resolveLogDir(cmd.Flags().Changed(FlagLogDir), cfg)
			if err != nil {
				return fmt.Errorf("resolve log dir: %w", err)
			}
			if err := os.MkdirAll(logDir, 0755); err != nil {
				return fmt.Errorf("create log dir: %w", err)
			}
			logResult, err := SetupTUILogger(logDir, logLevel, cfg.LogRotation)
			if err != nil {
				return fmt.Errorf("setup TUI logger: %w", err)
			}
			defer func() { _ = logResult.Close() }()
			slog.SetDefault(logResult.Logger)

			t := tui.New(cfg,
				tui.WithSaver(storeSaver{st: st}),
				tui.WithOnQuit(func() {
					slog.Info("session quit by user")
				}),
			)
			return t.Run()
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: ~/.config/breathe/config.yaml)")
	rootCmd.PersistentFlags().String(FlagSettingsFile, "", "Settings file path (default: ~/.local/state/breathe/settings.json)")
	rootCmd.PersistentFlags().String(FlagLogDir, "", "Debug log directory")

	// Root command flags
	rootCmd.Flags().Bool(FlagTUI, true, "Run the interactive TUI (auto-detected from TTY)")
	rootCmd.Flags().String(FlagPattern, "", "Breathing pattern preset (see 'breathe patterns')")
	rootCmd.Flags().Int(FlagDuration, 0, "Session length in seconds")
	rootCmd.Flags().Float64(FlagSpeed, 0, "Animation speed multiplier")

	// Bind all flags to viper
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("breathe %s\n", version)
		},
	}

	// Patterns command
	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the built-in breathing patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := breath.Presets()
			if viper.GetBool(FlagJSON) {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(presets)
			}
			for _, p := range presets {
				fmt.Printf("%-10s %-16s %d-%d-%d-%d (%ds cycle)\n",
					p.ID, p.Name, p.Inhale, p.Hold, p.Exhale, p.Rest, p.CycleSeconds())
			}
			return nil
		},
	}
	patternsCmd.Flags().Bool(FlagJSON, false, "Output as JSON")
	_ = viper.BindPFlag(FlagJSON, patternsCmd.Flags().Lookup(FlagJSON))

	// Settings command
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadEffectiveConfig(cmd)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(store.FromConfig(cfg))
		},
	}

	settingsResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove the persisted settings record",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(viper.GetViper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			settingsPath, err := resolveSettingsPath(cmd.Flags().Changed(FlagSettingsFile), cfg)
			if err != nil {
				return fmt.Errorf("resolve settings path: %w", err)
			}
			if err := store.New(settingsPath).Reset(); err != nil {
				return err
			}
			fmt.Println("Settings reset to defaults")
			return nil
		},
	}
	settingsCmd.AddCommand(settingsResetCmd)

	rootCmd.AddCommand(versionCmd, patternsCmd, settingsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
