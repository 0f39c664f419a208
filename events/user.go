// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"github.com/disgoorg/snowflake/v2"
)

// UserPayload is a user object as returned by the REST API or embedded
// in other payloads. Only the ID is guaranteed, every other field may be
// left out of partial objects.
type UserPayload struct {
	// The ID of the user.
	ID snowflake.ID `json:"id"`

	// The user's username.
	Username Optional[string] `json:"username,omitzero"`

	// The discriminator of the user (4 numbers after name), as text.
	Discriminator Optional[string] `json:"discriminator,omitzero"`

	// The hash of the user's avatar.
	Avatar Optional[string] `json:"avatar,omitzero"`

	// The hash of the user's banner.
	Banner Optional[string] `json:"banner,omitzero"`

	// Whether the user is a bot.
	Bot Optional[bool] `json:"bot,omitzero"`

	// The public flags on the user's account.
	PublicFlags Optional[uint32] `json:"public_flags,omitzero"`

	// The user's banner colour as an integer RGB value.
	AccentColor Optional[int] `json:"accent_color,omitzero"`
}

// UserUpdate is the data for a USER_UPDATE stream event.
type UserUpdate struct {
	*UserPayload
}
