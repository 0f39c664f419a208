// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the Sandwich configuration. Values come from a
// JSON file first and are then overridden by SANDWICH_ prefixed
// environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "SANDWICH_"

// Configuration stores everything needed to start sandwich.
type Configuration struct {
	Token string `json:"token" env:"TOKEN"`

	// Requests per second allowed through the REST client.
	RateLimit float64 `json:"rate_limit" env:"RATE_LIMIT"`

	// How often a ratelimited request is retried.
	MaxRestRetries int `json:"max_rest_retries" env:"MAX_REST_RETRIES"`

	Debug     bool   `json:"debug" env:"DEBUG"`
	SentryDSN string `json:"sentry_dsn" env:"SENTRY_DSN"`

	// An empty address disables the component.
	Redis RedisConfiguration `json:"redis" envPrefix:"REDIS_"`
	Nats  NatsConfiguration  `json:"nats" envPrefix:"NATS_"`
}

// RedisConfiguration is used by the state.
type RedisConfiguration struct {
	Address  string `json:"address" env:"ADDRESS"`
	Password string `json:"password" env:"PASSWORD"`
	Database int    `json:"database" env:"DATABASE"`

	// Prefix represents what keys will be prepended with when keys are constructed
	Prefix string `json:"prefix" env:"PREFIX"`
}

// NatsConfiguration is used by the producer.
type NatsConfiguration struct {
	Address   string `json:"address" env:"ADDRESS"`
	Channel   string `json:"channel" env:"CHANNEL"`
	ClusterID string `json:"cluster" env:"CLUSTER"`
	ClientID  string `json:"client" env:"CLIENT"`
}

// Default returns the configuration used when nothing is set.
func Default() Configuration {
	return Configuration{
		RateLimit:      50,
		MaxRestRetries: 3,
		Redis: RedisConfiguration{
			Prefix: "sandwich",
		},
		Nats: NatsConfiguration{
			Channel:   "sandwich",
			ClusterID: "cluster",
			ClientID:  "sandwich-users",
		},
	}
}

// Load reads the configuration at path on top of the defaults, then
// applies the environment. A missing file is not an error.
func Load(path string) (c Configuration, err error) {
	c = Default()

	if path != "" {
		var data []byte
		data, err = os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			err = nil
		case err != nil:
			return c, fmt.Errorf("read config: %w", err)
		default:
			if err = json.Unmarshal(data, &c); err != nil {
				return c, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err = env.ParseWithOptions(&c, env.Options{Prefix: EnvPrefix}); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}

	if c.MaxRestRetries < 0 {
		c.MaxRestRetries = 0
	}
	if c.RateLimit <= 0 {
		c.RateLimit = Default().RateLimit
	}

	return
}
