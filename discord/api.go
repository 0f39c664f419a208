// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discord

import (
	"context"

	"github.com/TheRockettek/Sandwich-Users/events"
	"github.com/disgoorg/snowflake/v2"
)

// API is the REST surface user snapshots talk to. *client.Client
// implements it.
type API interface {
	// FetchUser retrieves the user object of userID.
	FetchUser(ctx context.Context, userID snowflake.ID) (*events.UserPayload, error)

	// CreateDMChannel opens, or returns the existing, direct message
	// channel with userID.
	CreateDMChannel(ctx context.Context, userID snowflake.ID) (*events.Channel, error)
}
