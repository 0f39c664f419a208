// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discord

import (
	"github.com/disgoorg/snowflake/v2"
)

// A WebhookUser is the author of a message sent through a webhook.
type WebhookUser struct {
	*User

	// The ID of the webhook that sent the message.
	WebhookID snowflake.ID

	// The guild the webhook belongs to.
	GuildID snowflake.ID
}

// NewWebhookUser creates a webhook author snapshot that only knows its IDs.
func NewWebhookUser(id, webhookID, guildID snowflake.ID) *WebhookUser {
	return &WebhookUser{
		User:      NewUser(id),
		WebhookID: webhookID,
		GuildID:   guildID,
	}
}

// IsWebhook is always true.
func (w *WebhookUser) IsWebhook() bool {
	return true
}

// Marshaled returns the snapshot in its stored form.
func (w *WebhookUser) Marshaled() (ma MarshalUser) {
	ma = w.User.Marshaled()
	ma.WebhookID = uint64(w.WebhookID)
	ma.GuildID = uint64(w.GuildID)
	return
}
