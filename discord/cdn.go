// Sandwich
// Available at https://github.com/TheRockettek/Sandwich-Users

// Copyright 2020 TheRockettek.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package discord

import (
	"errors"
	"strconv"
	"strings"

	"github.com/disgoorg/snowflake/v2"
)

// EndpointCDN denotes the base URL for all user assets
const EndpointCDN = "https://cdn.discordapp.com/"

// Image size bounds accepted by the CDN.
const (
	MinImageSize = 16
	MaxImageSize = 4096
)

// ErrInvalidImageSize is returned when the size is not a power of two
// between MinImageSize and MaxImageSize.
var ErrInvalidImageSize = errors.New("image size must be a power of 2 between 16 and 4096")

// ErrInvalidImageFormat is returned for unknown formats, or when gif is
// requested for an asset that is not animated.
var ErrInvalidImageFormat = errors.New("invalid image format")

// ImageFormat is the file extension an asset is requested as. The empty
// format picks gif for animated assets and png for everything else.
type ImageFormat string

// Supported image formats
const (
	ImageFormatAuto ImageFormat = ""
	ImageFormatPNG  ImageFormat = "png"
	ImageFormatJPG  ImageFormat = "jpg"
	ImageFormatJPEG ImageFormat = "jpeg"
	ImageFormatWebP ImageFormat = "webp"
	ImageFormatGIF  ImageFormat = "gif"
)

// IsAnimated returns true if the asset hash belongs to an animated asset.
func IsAnimated(hash string) bool {
	return strings.HasPrefix(hash, "a_")
}

// AvatarURL returns the URL of a custom avatar.
func AvatarURL(userID snowflake.ID, hash string, format ImageFormat, size int) (string, error) {
	return assetURL("avatars/"+userID.String()+"/"+hash, hash, format, size)
}

// BannerURL returns the URL of a profile banner.
func BannerURL(userID snowflake.ID, hash string, format ImageFormat, size int) (string, error) {
	return assetURL("banners/"+userID.String()+"/"+hash, hash, format, size)
}

// DefaultAvatarURL returns the URL of the avatar shown for users without
// a custom one. Users on the new username system have a discriminator of
// 0 and get their avatar picked from their ID instead.
func DefaultAvatarURL(userID snowflake.ID, discriminator uint16) string {
	var index uint64
	if discriminator == 0 {
		index = (uint64(userID) >> 22) % 6
	} else {
		index = uint64(discriminator) % 5
	}

	return EndpointCDN + "embed/avatars/" + strconv.FormatUint(index, 10) + ".png"
}

func assetURL(path, hash string, format ImageFormat, size int) (string, error) {
	switch format {
	case ImageFormatAuto:
		format = ImageFormatPNG
		if IsAnimated(hash) {
			format = ImageFormatGIF
		}
	case ImageFormatGIF:
		if !IsAnimated(hash) {
			return "", ErrInvalidImageFormat
		}
	case ImageFormatPNG, ImageFormatJPG, ImageFormatJPEG, ImageFormatWebP:
	default:
		return "", ErrInvalidImageFormat
	}

	url := EndpointCDN + path + "." + string(format)

	if size == 0 {
		return url, nil
	}
	if size < MinImageSize || size > MaxImageSize || size&(size-1) != 0 {
		return "", ErrInvalidImageSize
	}

	return url + "?size=" + strconv.Itoa(size), nil
}
