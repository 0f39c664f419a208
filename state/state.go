// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state stores user snapshots in redis. Snapshots live in the
// hash {prefix}:user keyed by user id, encoded with msgpack.
package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/TheRockettek/Sandwich-Users/discord"
	"github.com/TheRockettek/Sandwich-Users/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack"
)

// ErrNilState is returned when the state is nil.
var ErrNilState = errors.New("state not instantiated, please use state.NewState()")

// ErrStateNotFound is returned when the state cache
// requested is not found
var ErrStateNotFound = errors.New("state cache not found")

// A State contains the current known user snapshots.
type State struct {
	// Store the Redis Instance
	Redis       *redis.Client
	RedisPrefix string

	log zerolog.Logger
}

// NewState creates a state on top of an existing redis client.
func NewState(client *redis.Client, prefix string, log zerolog.Logger) *State {
	return &State{
		Redis:       client,
		RedisPrefix: prefix,
		log:         log,
	}
}

func (s *State) usersKey() string {
	return fmt.Sprintf("%s:user", s.RedisPrefix)
}

// UserSave stores the snapshot, replacing any existing one.
func (s *State) UserSave(ctx context.Context, u discord.Userlike) (err error) {
	if s == nil {
		return ErrNilState
	}

	ma, err := msgpack.Marshal(u.Marshaled())
	if err != nil {
		return fmt.Errorf("failed to marshal user %s: %w", u.ID(), err)
	}

	err = s.Redis.HSet(ctx, s.usersKey(), u.ID().String(), ma).Err()
	if err != nil {
		s.log.Error().Err(err).Str("user", u.ID().String()).Msg("failed to save user")
	}
	return
}

// User gets a user snapshot by ID.
func (s *State) User(ctx context.Context, userID snowflake.ID) (u discord.Userlike, err error) {
	if s == nil {
		return nil, ErrNilState
	}

	data, err := s.Redis.HGet(ctx, s.usersKey(), userID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStateNotFound
		}
		return nil, err
	}

	ma := discord.MarshalUser{}
	if err = msgpack.Unmarshal(data, &ma); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user %s: %w", userID, err)
	}

	return discord.FromMarshaled(ma), nil
}

// UserUpdate merges the payload into the stored snapshot, creating one
// if it is not in state yet, and saves the result.
func (s *State) UserUpdate(ctx context.Context, p *events.UserPayload) (u discord.Userlike, err error) {
	u, err = s.User(ctx, p.ID)
	switch {
	case errors.Is(err, ErrStateNotFound):
		s.log.Debug().Str("user", p.ID.String()).Msg("user not in state, creating")
		u = discord.NewUser(p.ID)
	case err != nil:
		return nil, err
	}

	if err = u.Update(p); err != nil {
		return nil, err
	}

	if err = s.UserSave(ctx, u); err != nil {
		return nil, err
	}
	return
}

// UserRemove removes a user from state.
func (s *State) UserRemove(ctx context.Context, userID snowflake.ID) (err error) {
	if s == nil {
		return ErrNilState
	}

	removed, err := s.Redis.HDel(ctx, s.usersKey(), userID.String()).Result()
	if err != nil {
		return
	}
	if removed == 0 {
		return ErrStateNotFound
	}
	return
}

// ClearKeys allows for you to clear redis keys based off of a pattern.
// It scans in batches inside a script so large states are not pulled
// over the wire.
func (s *State) ClearKeys(ctx context.Context, pattern string) (result int64, err error) {
	if s == nil {
		return 0, ErrNilState
	}

	res, err := s.Redis.Eval(
		ctx,
		`local count, cursor = 0, "0"
		while true do
			local req = redis.call("SCAN", cursor, "MATCH", ARGV[1], "COUNT", ARGV[2])
			if #req[2] > 0 then redis.call("DEL", unpack(req[2])) end
			count, cursor = count + #req[2], req[1]
			if cursor == "0" then break end
		end
		return count`,
		[]string{},
		pattern,
		64,
	).Result()
	if err != nil {
		return
	}

	result, _ = res.(int64)
	s.log.Info().Int64("count", result).Str("pattern", pattern).Msg("removed keys")
	return
}
