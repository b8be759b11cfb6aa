package dto

import (
	"yospace/config"
	"yospace/feeder"
)

// ProfileDTO is the site owner profile plus the friend links page.
type ProfileDTO struct {
	Profile config.Profile      `json:"profile"`
	Links   []config.FriendLink `json:"links"`
}

type FriendFeedsDTO struct {
	Items []feeder.FriendFeed `json:"items"`
}
