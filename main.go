package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iburimskiy/radar-pulse/internal/config"
	"github.com/iburimskiy/radar-pulse/internal/game"
	"github.com/iburimskiy/radar-pulse/internal/logging"
	"github.com/iburimskiy/radar-pulse/internal/rng"
	"github.com/iburimskiy/radar-pulse/internal/sim"
)

func main() {
	flags := pflag.NewFlagSet("radar-pulse", pflag.ExitOnError)
	configPath := flags.String("config", "", "path to a JSON settings file")
	flags.Bool("headless", false, "run the simulation without a window")
	flags.Float64("seconds", 20, "simulated seconds to run in headless mode")
	flags.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	flags.String("log-level", "info", "trace, debug, info, warn or error")
	_ = flags.Parse(os.Args[1:])

	config.SetDefaults()
	bind := map[string]string{
		"headless.enabled": "headless",
		"headless.seconds": "seconds",
		"seed":             "seed",
		"logLevel":         "log-level",
	}
	for key, name := range bind {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := logging.New(settings.LogLevel, os.Stderr)
	src := rng.New(settings.Seed)

	if settings.Headless.Enabled {
		if err := runHeadless(settings, log, src); err != nil {
			log.Error().Err(err).Msg("headless run failed")
			os.Exit(1)
		}
		return
	}

	if err := runWindow(settings, log, src); err != nil {
		log.Error().Err(err).Msg("radar-pulse stopped")
		_ = zenity.Error(err.Error(), zenity.Title("Radar Pulse"), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func runHeadless(settings config.Settings, log zerolog.Logger, src rng.Source) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	world := sim.NewWorld(src)
	log.Info().Float64("seconds", settings.Headless.Seconds).Msg("headless run started")

	sum, err := sim.Run(ctx, world, settings.Headless.Seconds, 1.0/config.TPS, log)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info().EmbedObject(sum).Msg("headless run finished")
	return nil
}

func runWindow(settings config.Settings, log zerolog.Logger, src rng.Source) error {
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(config.TPS)

	g, err := game.New(settings, log, src)
	if err != nil {
		return err
	}
	log.Info().Int("width", settings.Window.Width).Int("height", settings.Window.Height).Msg("window opened")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
