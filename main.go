// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TheRockettek/Sandwich-Users/client"
	"github.com/TheRockettek/Sandwich-Users/config"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const usage = `usage: sandwich-users [-config data.json] <command> [id]

commands:
  fetch <id>  refresh a user from the API, store and produce it
  show <id>   print the stored snapshot of a user
  dm <id>     open a direct message channel with a user
  clear       remove every stored user
`

func newLogger(debug bool) zerolog.Logger {
	if debug {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

func main() {
	configPath := flag.String("config", "data.json", "path to the configuration file")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load dotenv
	godotenv.Load()

	cfg, err := config.Load(*configPath)
	log := newLogger(cfg.Debug)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.SentryDSN != "" {
		if err = sentry.Init(sentry.ClientOptions{
			Dsn:     cfg.SentryDSN,
			Release: "sandwich-users@" + client.VERSION,
		}); err != nil {
			log.Warn().Err(err).Msg("failed to init sentry")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = run(ctx, cfg, log, flag.Args())
	stop()

	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		if cfg.SentryDSN != "" {
			sentry.CaptureException(err)
			sentry.Flush(5 * time.Second)
		}
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Configuration, log zerolog.Logger, args []string) (err error) {
	if len(args) == 0 {
		return errUsage
	}

	a, err := newApp(ctx, cfg, log, os.Stdout)
	if err != nil {
		return
	}
	defer a.Close()

	return a.Run(ctx, args)
}
