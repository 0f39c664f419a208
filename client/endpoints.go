// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package client

import "github.com/disgoorg/snowflake/v2"

const (
	// APIVersion we will use from discord
	APIVersion = "10"

	// VERSION of sandwich library
	VERSION = "0.2"

	// EndpointDiscord denotes the base URL for all api requests
	EndpointDiscord = "https://discord.com/"

	// EndpointAPI is the url subset for getting the actual API base url
	EndpointAPI = EndpointDiscord + "api/v" + APIVersion + "/"

	// EndpointUserChannels is the path for opening direct messages
	EndpointUserChannels = "users/@me/channels"
)

// EndpointUser is the path of a single user object
func EndpointUser(userID snowflake.ID) string {
	return "users/" + userID.String()
}
