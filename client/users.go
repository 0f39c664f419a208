// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import (
	"context"
	"net/http"

	"github.com/TheRockettek/Sandwich-Users/discord"
	"github.com/TheRockettek/Sandwich-Users/events"
	"github.com/disgoorg/snowflake/v2"
)

var _ discord.API = (*Client)(nil)

// FetchUser returns the user object of userID.
func (c *Client) FetchUser(ctx context.Context, userID snowflake.ID) (user *events.UserPayload, err error) {
	user = &events.UserPayload{}
	if err = c.FetchJSON(ctx, http.MethodGet, EndpointUser(userID), nil, user); err != nil {
		return nil, err
	}
	return
}

// CreateDMChannel opens a direct message channel with userID. Discord
// returns the existing channel if one is already open.
func (c *Client) CreateDMChannel(ctx context.Context, userID snowflake.ID) (channel *events.Channel, err error) {
	channel = &events.Channel{}
	body := events.CreateDMChannel{RecipientID: userID}
	if err = c.FetchJSON(ctx, http.MethodPost, EndpointUserChannels, body, channel); err != nil {
		return nil, err
	}
	return
}
