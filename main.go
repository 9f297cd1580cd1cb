package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iburimskiy/sorry-card/internal/config"
	"github.com/iburimskiy/sorry-card/internal/game"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sorry-card: %v\n", err)
		// best effort, there may be no desktop to show it on
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           "sorry-card",
		Short:         "An apology card whose No button will not be caught",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, &cfg); err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return run(cfg, logger)
		},
	}

	f := cmd.Flags()
	f.Int("width", config.WindowWidth, "initial window width")
	f.Int("height", config.WindowHeight, "initial window height")
	f.Bool("muted", false, "do not play the celebration chime")
	f.Bool("notify", false, "post a desktop notification on acceptance")
	f.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	f.String("to", "", "recipient named in the greeting")
	f.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

// applyFlags lets explicitly set flags override the environment.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	var err error
	if f.Changed("width") {
		if cfg.WindowWidth, err = f.GetInt("width"); err != nil {
			return err
		}
	}
	if f.Changed("height") {
		if cfg.WindowHeight, err = f.GetInt("height"); err != nil {
			return err
		}
	}
	if f.Changed("muted") {
		if cfg.Muted, err = f.GetBool("muted"); err != nil {
			return err
		}
	}
	if f.Changed("notify") {
		if cfg.Notify, err = f.GetBool("notify"); err != nil {
			return err
		}
	}
	if f.Changed("seed") {
		if cfg.Seed, err = f.GetUint64("seed"); err != nil {
			return err
		}
	}
	if f.Changed("to") {
		if cfg.Recipient, err = f.GetString("to"); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func run(cfg config.Config, logger *zap.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting",
		zap.Int("width", cfg.WindowWidth),
		zap.Int("height", cfg.WindowHeight),
		zap.Bool("muted", cfg.Muted),
		zap.Bool("notify", cfg.Notify),
		zap.Uint64("seed", seed))

	var opts []game.Option
	if cfg.Notify {
		opts = append(opts, game.WithNotifier(game.DesktopNotifier{}))
	}
	g, err := game.New(cfg, rand.New(rand.NewPCG(seed, seed>>1|1)), logger, opts...)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("closed")
	return nil
}
