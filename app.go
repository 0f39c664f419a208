// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/TheRockettek/Sandwich-Users/client"
	"github.com/TheRockettek/Sandwich-Users/config"
	"github.com/TheRockettek/Sandwich-Users/discord"
	"github.com/TheRockettek/Sandwich-Users/producer"
	"github.com/TheRockettek/Sandwich-Users/state"
	"github.com/disgoorg/snowflake/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var errUsage = errors.New("invalid usage")

// ErrNoState is returned by commands that need redis when no redis
// address was configured.
var ErrNoState = errors.New("no redis address configured")

// App holds the components commands run against. State and Producer are
// nil when their addresses are not configured.
type App struct {
	Client   *client.Client
	State    *state.State
	Producer *producer.Producer

	redis *redis.Client
	out   io.Writer
	log   zerolog.Logger
}

func newApp(ctx context.Context, cfg config.Configuration, log zerolog.Logger, out io.Writer) (a *App, err error) {
	a = &App{out: out, log: log}

	a.Client, err = client.NewClient(cfg.Token,
		client.WithLogger(log),
		client.WithRateLimit(rate.Limit(cfg.RateLimit), int(cfg.RateLimit)+1),
		client.WithMaxRestRetries(cfg.MaxRestRetries),
	)
	if err != nil {
		return nil, err
	}

	if cfg.Redis.Address != "" {
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Verify that redis has successfully connected
		if err = a.redis.Ping(ctx).Err(); err != nil {
			a.redis.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.State = state.NewState(a.redis, cfg.Redis.Prefix, log)
	}

	if cfg.Nats.Address != "" {
		a.Producer, err = producer.Connect(cfg.Nats.Address, cfg.Nats.ClusterID, cfg.Nats.ClientID, cfg.Nats.Channel, log)
		if err != nil {
			a.Close()
			return nil, err
		}
	}

	return
}

// Close releases the redis and nats connections.
func (a *App) Close() {
	if a.Producer != nil {
		a.Producer.Close()
	}
	if a.redis != nil {
		a.redis.Close()
	}
}

// Run executes a single command.
func (a *App) Run(ctx context.Context, args []string) (err error) {
	if len(args) == 0 {
		return errUsage
	}

	command, args := args[0], args[1:]

	if command == "clear" {
		return a.clear(ctx)
	}

	if len(args) != 1 {
		return errUsage
	}

	userID, err := snowflake.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", args[0], err)
	}

	switch command {
	case "fetch":
		return a.fetch(ctx, userID)
	case "show":
		return a.show(ctx, userID)
	case "dm":
		return a.dm(ctx, userID)
	}

	return errUsage
}

// fetch refreshes the stored snapshot, or a new one, from the API.
func (a *App) fetch(ctx context.Context, userID snowflake.ID) (err error) {
	var u discord.Userlike = discord.NewUser(userID)

	if a.State != nil {
		stored, err := a.State.User(ctx, userID)
		switch {
		case err == nil:
			u = stored
		case !errors.Is(err, state.ErrStateNotFound):
			return err
		}
	}

	if err = u.Refresh(ctx, a.Client); err != nil {
		return fmt.Errorf("failed to refresh user %s: %w", userID, err)
	}
	a.log.Info().Str("user", userID.String()).Str("tag", u.String()).Msg("refreshed user")

	if a.State != nil {
		if err = a.State.UserSave(ctx, u); err != nil {
			return
		}
	}

	if a.Producer != nil {
		if err = a.Producer.ProduceUser(u); err != nil {
			return
		}
	}

	return a.print(u)
}

func (a *App) show(ctx context.Context, userID snowflake.ID) (err error) {
	if a.State == nil {
		return ErrNoState
	}

	u, err := a.State.User(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	return a.print(u)
}

func (a *App) dm(ctx context.Context, userID snowflake.ID) (err error) {
	channel, err := discord.NewUser(userID).CreateDM(ctx, a.Client)
	if err != nil {
		return fmt.Errorf("failed to open dm with %s: %w", userID, err)
	}

	_, err = fmt.Fprintf(a.out, "%s\n", channel.ID)
	return
}

func (a *App) clear(ctx context.Context) (err error) {
	if a.State == nil {
		return ErrNoState
	}

	count, err := a.State.ClearKeys(ctx, a.State.RedisPrefix+":user*")
	if err != nil {
		return
	}

	_, err = fmt.Fprintf(a.out, "removed %d keys\n", count)
	return
}

func (a *App) print(ul discord.Userlike) (err error) {
	u := ul.Base()

	avatar, err := u.AvatarURL(discord.ImageFormatAuto, 1024)
	if err != nil {
		return
	}

	banner, err := u.BannerURL(discord.ImageFormatAuto, 1024)
	if err != nil {
		return
	}

	fmt.Fprintf(a.out, "%s (%s)\n", ul, ul.ID())
	fmt.Fprintf(a.out, "  mention:  %s\n", ul.Mention())
	fmt.Fprintf(a.out, "  created:  %s\n", ul.CreatedAt().UTC().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(a.out, "  bot:      %t\n", u.Bot)
	fmt.Fprintf(a.out, "  webhook:  %t\n", ul.IsWebhook())
	fmt.Fprintf(a.out, "  avatar:   %s\n", avatar)

	if banner != "" {
		fmt.Fprintf(a.out, "  banner:   %s\n", banner)
	}
	if u.AccentColor != nil {
		fmt.Fprintf(a.out, "  accent:   %s\n", u.AccentColor)
	}
	if u.PublicFlags != nil {
		fmt.Fprintf(a.out, "  flags:    %d\n", *u.PublicFlags)
	}

	return
}
