// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package discord contains the user snapshots kept by Sandwich and the
// helpers that build on their fields.
package discord

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/TheRockettek/Sandwich-Users/events"
	"github.com/disgoorg/snowflake/v2"
)

// Userlike is implemented by every kind of user snapshot, *User and
// *WebhookUser.
type Userlike interface {
	ID() snowflake.ID
	CreatedAt() time.Time

	// Base returns the underlying snapshot fields.
	Base() *User

	Update(p *events.UserPayload) error
	Refresh(ctx context.Context, api API) error
	CreateDM(ctx context.Context, api API) (*events.Channel, error)

	IsWebhook() bool
	Status() Status
	Activity() *Activity
	Activities() []Activity
	ClientStatus() ClientStatus

	Mention() string
	String() string

	Marshaled() MarshalUser

	userlike()
}

// A User stores the last known state of an individual Discord user.
// It is not safe for concurrent use; callers serialize updates.
type User struct {
	id snowflake.ID

	// Whether the user is a bot.
	Bot bool

	// The user's username.
	Username string

	// The discriminator of the user (4 numbers after name).
	Discriminator uint16

	// The hash of the user's avatar, nil if they use a default one.
	// Use AvatarURL to build the link.
	Avatar *string

	// The hash of the user's banner, nil if they have none.
	Banner *string

	// The banner colour, nil when the last payload carried none.
	AccentColor *Color

	// The public flags on the user's account, nil until known.
	PublicFlags *UserFlags
}

// WebhookOrigin marks a user payload as the author of a webhook message.
type WebhookOrigin struct {
	WebhookID snowflake.ID
	GuildID   snowflake.ID
}

// NewUser creates a snapshot that only knows its ID.
func NewUser(id snowflake.ID) *User {
	return &User{id: id}
}

// FromPayload creates the snapshot matching the payload. When origin is
// not nil, the payload was the author of a webhook message and a
// *WebhookUser is returned.
func FromPayload(p *events.UserPayload, origin *WebhookOrigin) (u Userlike, err error) {
	if origin != nil {
		u = NewWebhookUser(p.ID, origin.WebhookID, origin.GuildID)
	} else {
		u = NewUser(p.ID)
	}

	if err = u.Update(p); err != nil {
		return nil, err
	}
	return
}

// ParseDiscriminator parses the decimal discriminator sent by the API.
func ParseDiscriminator(s string) (uint16, error) {
	d, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid discriminator %q: %w", s, err)
	}
	return uint16(d), nil
}

// Update merges a payload into the snapshot. Fields the payload does not
// carry are left as they are, apart from the accent colour which always
// follows the latest payload. A malformed discriminator is reported
// before anything is written.
func (u *User) Update(p *events.UserPayload) (err error) {
	var discriminator uint16
	if d, ok := p.Discriminator.Get(); ok {
		if discriminator, err = ParseDiscriminator(d); err != nil {
			return
		}
	}

	if p.Avatar.Specified() {
		u.Avatar = p.Avatar.Ptr()
	}

	if p.Banner.Specified() {
		u.Banner = p.Banner.Ptr()
	}

	if p.Discriminator.Specified() {
		u.Discriminator = discriminator
	}

	if p.Bot.Specified() {
		u.Bot = p.Bot.Or(false)
	}

	if p.Username.Specified() {
		u.Username = p.Username.Or("")
	}

	if p.PublicFlags.Specified() {
		u.PublicFlags = nil
		if f, ok := p.PublicFlags.Get(); ok {
			flags := UserFlags(f)
			u.PublicFlags = &flags
		}
	}

	u.AccentColor = nil
	if c, ok := p.AccentColor.Get(); ok {
		color := Color(c)
		u.AccentColor = &color
	}

	return
}

// Refresh fetches the user from the API and merges the result. Errors
// from the API are returned untouched.
func (u *User) Refresh(ctx context.Context, api API) (err error) {
	p, err := api.FetchUser(ctx, u.id)
	if err != nil {
		return
	}
	return u.Update(p)
}

// CreateDM opens a direct message channel with the user.
func (u *User) CreateDM(ctx context.Context, api API) (*events.Channel, error) {
	return api.CreateDMChannel(ctx, u.id)
}

// ID returns the snowflake of the user.
func (u *User) ID() snowflake.ID {
	return u.id
}

// CreatedAt returns when the account was created.
func (u *User) CreatedAt() time.Time {
	return u.id.Time()
}

// Base returns u.
func (u *User) Base() *User {
	return u
}

// DiscriminatorString returns the discriminator padded to 4 digits.
func (u *User) DiscriminatorString() string {
	return fmt.Sprintf("%04d", u.Discriminator)
}

// Mention returns a string which mentions the user.
func (u *User) Mention() string {
	return "<@" + u.id.String() + ">"
}

// String returns a unique identifier of the form username#discriminator
func (u *User) String() string {
	return u.Username + "#" + u.DiscriminatorString()
}

// AvatarURL returns the URL of the user's avatar, or of their default
// avatar when they have not set one.
func (u *User) AvatarURL(format ImageFormat, size int) (string, error) {
	if u.Avatar == nil {
		return u.DefaultAvatarURL(), nil
	}
	return AvatarURL(u.id, *u.Avatar, format, size)
}

// DefaultAvatarURL returns the URL of the avatar Discord shows when no
// custom avatar is set.
func (u *User) DefaultAvatarURL() string {
	return DefaultAvatarURL(u.id, u.Discriminator)
}

// BannerURL returns the URL of the user's banner. It is empty when the
// user has no banner.
func (u *User) BannerURL(format ImageFormat, size int) (string, error) {
	if u.Banner == nil {
		return "", nil
	}
	return BannerURL(u.id, *u.Banner, format, size)
}

// IsWebhook is false for plain users.
func (u *User) IsWebhook() bool {
	return false
}

// Status is always offline as the REST API carries no presence.
func (u *User) Status() Status {
	return StatusOffline
}

// Activity returns the primary activity, always nil.
func (u *User) Activity() *Activity {
	return nil
}

// Activities returns every activity, always empty.
func (u *User) Activities() []Activity {
	return nil
}

// ClientStatus reports offline on every platform.
func (u *User) ClientStatus() ClientStatus {
	return offlineClientStatus
}

func (u *User) userlike() {}
