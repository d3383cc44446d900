package socialnetwork

import (
	"strconv"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

func isInitialized() bool {
	ptr := sdk.StateGetObject(configKey)
	return ptr != nil && *ptr != ""
}

func loadConfig() *Config {
	ptr := sdk.StateGetObject(configKey)
	if ptr == nil || *ptr == "" {
		sdk.Abort("contract is not initialized")
	}
	return sdk.FromJSON[Config](*ptr, "config")
}

func saveConfig(cfg *Config) {
	sdk.StateSetObject(configKey, sdk.ToJSON(cfg, "config"))
}

func loadSettings() *AdminSettings {
	ptr := sdk.StateGetObject(settingsKey)
	if ptr == nil {
		sdk.Abort("admin settings are not set")
	}
	return sdk.FromJSON[AdminSettings](*ptr, "admin settings")
}

func saveSettings(s *AdminSettings) {
	sdk.StateSetObject(settingsKey, sdk.ToJSON(s, "admin settings"))
}

func messagesCount(postID string) uint64 {
	ptr := sdk.StateGetObject(messagesCountKey(postID))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func setMessagesCount(postID string, n uint64) {
	sdk.StateSetObject(messagesCountKey(postID), strconv.FormatUint(n, 10))
}

func loadMessage(postID string, idx uint64) *Message {
	ptr := sdk.StateGetObject(messageKey(postID, idx))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return sdk.FromJSON[Message](*ptr, "message")
}

func saveMessage(postID string, msg *Message) {
	sdk.StateSetObject(messageKey(postID, uint64(msg.MsgIdx)), sdk.ToJSON(msg, "message"))
}

// likeList reads an insertion-ordered liker list from an arbitrary key, which
// serves both post and message like tables.
func likeList(key string) []sdk.Address {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return *sdk.FromJSON[[]sdk.Address](*ptr, "like list")
}

func saveLikeList(key string, likers []sdk.Address) {
	if len(likers) == 0 {
		sdk.StateDeleteObject(key)
		return
	}
	sdk.StateSetObject(key, sdk.ToJSON(likers, "like list"))
}

func friends(addr sdk.Address) []sdk.Address {
	ptr := sdk.StateGetObject(friendsKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return *sdk.FromJSON[[]sdk.Address](*ptr, "friend list")
}

func saveFriends(addr sdk.Address, list []sdk.Address) {
	sdk.StateSetObject(friendsKey(addr), sdk.ToJSON(list, "friend list"))
}

func loadProfile(addr sdk.Address) *Profile {
	ptr := sdk.StateGetObject(profileKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return sdk.FromJSON[Profile](*ptr, "profile")
}

func saveProfile(addr sdk.Address, p *Profile) {
	sdk.StateSetObject(profileKey(addr), sdk.ToJSON(p, "profile"))
}

func recentLikes(addr sdk.Address) []RecentLike {
	ptr := sdk.StateGetObject(recentLikesKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return *sdk.FromJSON[[]RecentLike](*ptr, "recent likes")
}

func saveRecentLikes(addr sdk.Address, ring []RecentLike) {
	if len(ring) == 0 {
		sdk.StateDeleteObject(recentLikesKey(addr))
		return
	}
	sdk.StateSetObject(recentLikesKey(addr), sdk.ToJSON(ring, "recent likes"))
}

// pushRecentLike appends the newest entry and evicts from the front until the
// ring fits the current limit, so a lowered limit takes effect on the next
// push.
func pushRecentLike(addr sdk.Address, entry RecentLike, limit uint64) {
	if limit == 0 {
		saveRecentLikes(addr, nil)
		return
	}
	ring := append(recentLikes(addr), entry)
	if over := uint64(len(ring)); over > limit {
		ring = ring[over-limit:]
	}
	saveRecentLikes(addr, ring)
}

// dropRecentLike removes the ring entry matching the unliked target, if the
// like was still recent enough to be in the ring.
func dropRecentLike(addr sdk.Address, postID string, msgIdx *uint64) {
	ring := recentLikes(addr)
	for i, e := range ring {
		if e.PostID != postID {
			continue
		}
		if (e.MsgIdx == nil) != (msgIdx == nil) {
			continue
		}
		if msgIdx != nil && uint64(*e.MsgIdx) != *msgIdx {
			continue
		}
		saveRecentLikes(addr, append(ring[:i], ring[i+1:]...))
		return
	}
}

// paginate applies the shared (from_index, limit) window. Out-of-range
// from_index and zero limit both yield the empty page.
func paginate[T any](items []T, from, limit uint64) []T {
	out := []T{}
	for i := from; i < uint64(len(items)) && uint64(len(out)) < limit; i++ {
		out = append(out, items[i])
	}
	return out
}

func containsAddress(list []sdk.Address, addr sdk.Address) bool {
	for _, a := range list {
		if a == addr {
			return true
		}
	}
	return false
}

func removeAddress(list []sdk.Address, addr sdk.Address) ([]sdk.Address, bool) {
	for i, a := range list {
		if a == addr {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}
