// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events holds the payloads exchanged with the Discord REST API
// and the events produced to consumers.
package events

import (
	"github.com/disgoorg/snowflake/v2"
)

// Stream event types.
const (
	StreamUserUpdate = "USER_UPDATE"
	StreamUserRemove = "USER_REMOVE"
)

// StreamEvent provides the struct for events that are sent over STAN/NATS
type StreamEvent struct {
	Type string      `msgpack:"i"`
	Data interface{} `msgpack:"d"`
}

// ChannelType is the type of a channel.
type ChannelType int

// Block contains known ChannelType values
const (
	ChannelTypeGuildText ChannelType = iota
	ChannelTypeDM
	ChannelTypeGuildVoice
	ChannelTypeGroupDM
	ChannelTypeGuildCategory
)

// Channel is the subset of a channel object returned when opening a
// direct message.
type Channel struct {
	// The ID of the channel.
	ID snowflake.ID `json:"id"`

	// The type of the channel.
	Type ChannelType `json:"type"`

	// The ID of the last message sent in the channel.
	LastMessageID *snowflake.ID `json:"last_message_id"`

	// The recipients of the channel.
	Recipients []*UserPayload `json:"recipients"`
}

// CreateDMChannel is the body sent when opening a direct message.
type CreateDMChannel struct {
	RecipientID snowflake.ID `json:"recipient_id"`
}

// TooManyRequests is the body of a 429 response.
type TooManyRequests struct {
	Message    string  `json:"message"`
	RetryAfter float64 `json:"retry_after"`
	Global     bool    `json:"global"`
}

// ErrorBody is the body of any other failed REST response.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
