// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discord

// Status type definition
type Status string

// Constants for Status with the different current available status
const (
	StatusOnline       Status = "online"
	StatusIdle         Status = "idle"
	StatusDoNotDisturb Status = "dnd"
	StatusInvisible    Status = "invisible"
	StatusOffline      Status = "offline"
)

// ActivityType is the type of "game" (see ActivityType* consts) in the Activity struct
type ActivityType int

// Valid ActivityType values
const (
	ActivityTypeGame ActivityType = iota
	ActivityTypeStreaming
	ActivityTypeListening
	ActivityTypeWatching
	ActivityTypeCustom
	ActivityTypeCompeting
)

// An Activity is a single entry of a user's presence.
type Activity struct {
	// The name of the activity.
	Name string `json:"name" msgpack:"name"`

	// The type of activity.
	Type ActivityType `json:"type" msgpack:"type"`

	// The stream url, only set for streaming activities.
	URL string `json:"url,omitempty" msgpack:"url,omitempty"`

	// What the user is currently doing.
	State string `json:"state,omitempty" msgpack:"state,omitempty"`
}

// ClientStatus holds the status a user has on each platform.
type ClientStatus struct {
	Desktop Status `json:"desktop" msgpack:"desktop"`
	Mobile  Status `json:"mobile" msgpack:"mobile"`
	Web     Status `json:"web" msgpack:"web"`
}

// offlineClientStatus is reported by snapshots that are not backed by a
// gateway connection.
var offlineClientStatus = ClientStatus{
	Desktop: StatusOffline,
	Mobile:  StatusOffline,
	Web:     StatusOffline,
}
