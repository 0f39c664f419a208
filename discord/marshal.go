// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discord

import (
	"github.com/disgoorg/snowflake/v2"
)

// A MarshalUser holds all data of a user snapshot that is stored in
// cache and sent to consumers.
type MarshalUser struct {
	// The ID of the user.
	ID uint64 `msgpack:"id" json:"id,string"`

	// The user's username.
	Username string `msgpack:"username" json:"username"`

	// The discriminator of the user.
	Discriminator uint16 `msgpack:"discriminator" json:"discriminator"`

	// The hash of the user's avatar.
	Avatar *string `msgpack:"avatar" json:"avatar"`

	// The hash of the user's banner.
	Banner *string `msgpack:"banner" json:"banner"`

	// The banner colour of the user.
	AccentColor *uint32 `msgpack:"accent_color" json:"accent_color"`

	// The public flags on the user's account.
	PublicFlags *uint32 `msgpack:"public_flags" json:"public_flags"`

	// Whether the user is a bot.
	Bot bool `msgpack:"bot" json:"bot"`

	// Set for authors of webhook messages. A zero WebhookID means a
	// plain user.
	WebhookID uint64 `msgpack:"webhook_id,omitempty" json:"webhook_id,string,omitempty"`
	GuildID   uint64 `msgpack:"guild_id,omitempty" json:"guild_id,string,omitempty"`
}

// Marshaled returns the snapshot in its stored form.
func (u *User) Marshaled() (ma MarshalUser) {
	ma = MarshalUser{
		ID:            uint64(u.id),
		Username:      u.Username,
		Discriminator: u.Discriminator,
		Avatar:        u.Avatar,
		Banner:        u.Banner,
		Bot:           u.Bot,
	}

	if u.AccentColor != nil {
		c := uint32(*u.AccentColor)
		ma.AccentColor = &c
	}

	if u.PublicFlags != nil {
		f := uint32(*u.PublicFlags)
		ma.PublicFlags = &f
	}

	return
}

// FromMarshaled restores a snapshot from its stored form.
func FromMarshaled(ma MarshalUser) Userlike {
	var u *User
	var ul Userlike

	if ma.WebhookID != 0 {
		w := NewWebhookUser(snowflake.ID(ma.ID), snowflake.ID(ma.WebhookID), snowflake.ID(ma.GuildID))
		u, ul = w.User, w
	} else {
		u = NewUser(snowflake.ID(ma.ID))
		ul = u
	}

	u.Username = ma.Username
	u.Discriminator = ma.Discriminator
	u.Avatar = ma.Avatar
	u.Banner = ma.Banner
	u.Bot = ma.Bot

	if ma.AccentColor != nil {
		c := Color(*ma.AccentColor)
		u.AccentColor = &c
	}

	if ma.PublicFlags != nil {
		f := UserFlags(*ma.PublicFlags)
		u.PublicFlags = &f
	}

	return ul
}
