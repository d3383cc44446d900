package socialnetwork

import (
	"strconv"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

// Storage key layout. Posts are implicit: a post exists as soon as its first
// message or like lands, so there is no post record, only the tables below.
const (
	configKey   = "cfg"
	settingsKey = "settings"
)

func messagesCountKey(postID string) string {
	return "mc:" + postID
}

func messageKey(postID string, idx uint64) string {
	return "msg:" + postID + ":" + strconv.FormatUint(idx, 10)
}

func postLikesKey(postID string) string {
	return "pl:" + postID
}

func messageLikesKey(postID string, idx uint64) string {
	return "ml:" + postID + ":" + strconv.FormatUint(idx, 10)
}

func friendsKey(addr sdk.Address) string {
	return "fr:" + addr.String()
}

func profileKey(addr sdk.Address) string {
	return "prof:" + addr.String()
}

func recentLikesKey(addr sdk.Address) string {
	return "rl:" + addr.String()
}
