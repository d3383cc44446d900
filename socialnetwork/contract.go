// Package socialnetwork is the social ledger: posts, nested messages, likes,
// friends and profiles, with a network fee charged on every mutating action
// through the activity token's fee-collector primitive.
//
// Every fee-bearing action validates first, mutates second and charges last.
// The charge is an asynchronous cross-contract call, so a failed charge
// cannot undo the committed mutation; the callback records the anomaly
// instead.
package socialnetwork

import (
	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

func New(payload *string) *string {
	if isInitialized() {
		sdk.Revert("already initialized", sdk.ErrAlreadyInitialized)
	}
	args := unwrap[NewArgs](payload, "init args")
	if !args.Owner.IsValid() {
		sdk.Revert("malformed owner account id", sdk.ErrInvalidArgument)
	}
	if !args.FeeFt.IsValid() {
		sdk.Revert("malformed fee ft account id", sdk.ErrInvalidArgument)
	}
	validateSettings(&args.Settings)
	saveConfig(&Config{Owner: args.Owner, FeeFt: args.FeeFt})
	saveSettings(&args.Settings)
	return sdk.Strptr("initialized")
}

// -----------------------------------------------------------------------------
// Fee-bearing actions
// -----------------------------------------------------------------------------

// AddMessageToPost appends a post-level message. The post comes into
// existence with its first message, indices are dense from 0.
func AddMessageToPost(payload *string) *string {
	cfg := loadConfig()
	args := unwrap[AddMessageToPostArgs](payload, "add message args")
	validatePostID(args.PostID)
	validateText(args.Text)
	idx := appendMessage(args.PostID, nil, args.Text)
	chargeFee(cfg, loadSettings(), actionAddMessage)
	return sdk.Strptr(sdk.ToJSON(sdk.U64(idx), "message index"))
}

// AddMessageToMessage appends a reply to an existing message of the post.
func AddMessageToMessage(payload *string) *string {
	cfg := loadConfig()
	args := unwrap[AddMessageToMessageArgs](payload, "add reply args")
	validatePostID(args.PostID)
	validateText(args.Text)
	parent := uint64(args.ParentIdx)
	if parent >= messagesCount(args.PostID) {
		sdk.Revert("message is not found", sdk.ErrNotFound)
	}
	idx := appendMessage(args.PostID, &parent, args.Text)
	chargeFee(cfg, loadSettings(), actionAddMessage)
	return sdk.Strptr(sdk.ToJSON(sdk.U64(idx), "message index"))
}

// LikePost records the caller's like on a post. A second like on the same
// post without an unlike in between is rejected.
func LikePost(payload *string) *string {
	cfg := loadConfig()
	args := unwrap[PostArgs](payload, "like post args")
	validatePostID(args.PostID)
	liker := sdk.PredecessorAccountID()
	key := postLikesKey(args.PostID)
	likers := likeList(key)
	if containsAddress(likers, liker) {
		sdk.Revert("post is liked already", sdk.ErrAlreadyExists)
	}
	saveLikeList(key, append(likers, liker))
	settings := loadSettings()
	pushRecentLike(liker, RecentLike{
		PostID:    args.PostID,
		Timestamp: sdk.U64(sdk.BlockTimestamp()),
	}, uint64(settings.AccountRecentLikesLimit))
	emitLike(args.PostID, nil, liker)
	chargeFee(cfg, settings, actionLikePost)
	return nil
}

// UnlikePost removes the caller's like. Free of charge.
func UnlikePost(payload *string) *string {
	loadConfig() // init guard
	args := unwrap[PostArgs](payload, "unlike post args")
	liker := sdk.PredecessorAccountID()
	key := postLikesKey(args.PostID)
	likers, ok := removeAddress(likeList(key), liker)
	if !ok {
		sdk.Revert("post is not liked", sdk.ErrNotFound)
	}
	saveLikeList(key, likers)
	dropRecentLike(liker, args.PostID, nil)
	emitUnlike(args.PostID, nil, liker)
	return nil
}

// LikeMessage records the caller's like on an existing message.
func LikeMessage(payload *string) *string {
	cfg := loadConfig()
	args := unwrap[MessageArgs](payload, "like message args")
	validatePostID(args.PostID)
	idx := uint64(args.MsgIdx)
	if idx >= messagesCount(args.PostID) {
		sdk.Revert("message is not found", sdk.ErrNotFound)
	}
	liker := sdk.PredecessorAccountID()
	key := messageLikesKey(args.PostID, idx)
	likers := likeList(key)
	if containsAddress(likers, liker) {
		sdk.Revert("message is liked already", sdk.ErrAlreadyExists)
	}
	saveLikeList(key, append(likers, liker))
	settings := loadSettings()
	pushRecentLike(liker, RecentLike{
		PostID:    args.PostID,
		MsgIdx:    &args.MsgIdx,
		Timestamp: sdk.U64(sdk.BlockTimestamp()),
	}, uint64(settings.AccountRecentLikesLimit))
	emitLike(args.PostID, &idx, liker)
	chargeFee(cfg, settings, actionLikeMessage)
	return nil
}

func UnlikeMessage(payload *string) *string {
	loadConfig() // init guard
	args := unwrap[MessageArgs](payload, "unlike message args")
	liker := sdk.PredecessorAccountID()
	idx := uint64(args.MsgIdx)
	key := messageLikesKey(args.PostID, idx)
	likers, ok := removeAddress(likeList(key), liker)
	if !ok {
		sdk.Revert("message is not liked", sdk.ErrNotFound)
	}
	saveLikeList(key, likers)
	dropRecentLike(liker, args.PostID, &idx)
	emitUnlike(args.PostID, &idx, liker)
	return nil
}

// AddFriend appends to the caller's friend list. One-directional.
func AddFriend(payload *string) *string {
	cfg := loadConfig()
	args := unwrap[AddFriendArgs](payload, "add friend args")
	if !args.FriendID.IsValid() {
		sdk.Revert("malformed friend account id", sdk.ErrInvalidArgument)
	}
	caller := sdk.PredecessorAccountID()
	if caller == args.FriendID {
		sdk.Revert("an account cannot befriend itself", sdk.ErrInvalidArgument)
	}
	list := friends(caller)
	if containsAddress(list, args.FriendID) {
		sdk.Revert("friend is added already", sdk.ErrAlreadyExists)
	}
	saveFriends(caller, append(list, args.FriendID))
	emitFriend(caller, args.FriendID)
	chargeFee(cfg, loadSettings(), actionAddFriend)
	return nil
}

// UpdateProfile merges the given fields into the caller's profile.
func UpdateProfile(payload *string) *string {
	cfg := loadConfig()
	args := unwrap[UpdateProfileArgs](payload, "update profile args")
	if args.JSONMetadata == nil && args.ImageURL == nil {
		sdk.Revert("profile update is empty", sdk.ErrInvalidArgument)
	}
	caller := sdk.PredecessorAccountID()
	profile := loadProfile(caller)
	if profile == nil {
		profile = &Profile{}
	}
	if args.JSONMetadata != nil {
		profile.JSONMetadata = *args.JSONMetadata
	}
	if args.ImageURL != nil {
		profile.ImageURL = *args.ImageURL
	}
	saveProfile(caller, profile)
	emitProfileUpdate(caller)
	chargeFee(cfg, loadSettings(), actionUpdateProfile)
	return nil
}

// OnFeeCollected resumes a fee-bearing action once the charge settled. The
// mutation is already committed either way, so a failed charge is only
// logged.
func OnFeeCollected(payload *string) *string {
	sdk.RequirePrivate()
	args := unwrap[OnFeeCollectedArgs](payload, "fee callback args")
	emitFeeOutcome(args.Account, args.Action, uint64(args.Fee), sdk.PromiseSuccess())
	return nil
}

// -----------------------------------------------------------------------------
// Admin
// -----------------------------------------------------------------------------

// UpdateAdminSettings applies a partial settings update. Owner-only; actions
// already submitted keep the fee they were computed with.
func UpdateAdminSettings(payload *string) *string {
	cfg := loadConfig()
	if sdk.PredecessorAccountID() != cfg.Owner {
		sdk.Revert("this operation is restricted to the contract owner", sdk.ErrUnauthorized)
	}
	args := unwrap[UpdateAdminSettingsArgs](payload, "admin settings args")
	settings := loadSettings()
	applyPercent(&settings.AddMessageExtraFeePercent, args.Settings.AddMessageExtraFeePercent)
	applyPercent(&settings.LikePostExtraFeePercent, args.Settings.LikePostExtraFeePercent)
	applyPercent(&settings.LikeMessageExtraFeePercent, args.Settings.LikeMessageExtraFeePercent)
	applyPercent(&settings.AddFriendExtraFeePercent, args.Settings.AddFriendExtraFeePercent)
	applyPercent(&settings.UpdateProfileExtraFeePercent, args.Settings.UpdateProfileExtraFeePercent)
	if args.Settings.AccountRecentLikesLimit != nil {
		settings.AccountRecentLikesLimit = *args.Settings.AccountRecentLikesLimit
	}
	saveSettings(settings)
	return nil
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

func GetPostMessages(payload *string) *string {
	args := unwrap[PostPageArgs](payload, "post messages args")
	count := messagesCount(args.PostID)
	out := []*Message{}
	from := uint64(args.FromIndex)
	limit := uint64(args.Limit)
	for i := from; i < count && uint64(len(out)) < limit; i++ {
		out = append(out, loadMessage(args.PostID, i))
	}
	return sdk.Strptr(sdk.ToJSON(out, "message list"))
}

func GetPostMessage(payload *string) *string {
	args := unwrap[MessageArgs](payload, "post message args")
	msg := loadMessage(args.PostID, uint64(args.MsgIdx))
	if msg == nil {
		sdk.Revert("message is not found", sdk.ErrNotFound)
	}
	return sdk.Strptr(sdk.ToJSON(msg, "message"))
}

func GetPostLikes(payload *string) *string {
	args := unwrap[PostPageArgs](payload, "post likes args")
	likers := likeList(postLikesKey(args.PostID))
	page := paginate(likers, uint64(args.FromIndex), uint64(args.Limit))
	return sdk.Strptr(sdk.ToJSON(page, "like list"))
}

func GetPostLikesInfo(payload *string) *string {
	args := unwrap[PostLikesInfoArgs](payload, "post likes info args")
	likers := likeList(postLikesKey(args.PostID))
	info := LikesInfo{
		Count:   sdk.U64(uint64(len(likers))),
		IsLiked: containsAddress(likers, args.AccountID),
	}
	return sdk.Strptr(sdk.ToJSON(info, "likes info"))
}

func GetMessageLikes(payload *string) *string {
	args := unwrap[MessagePageArgs](payload, "message likes args")
	likers := likeList(messageLikesKey(args.PostID, uint64(args.MsgIdx)))
	page := paginate(likers, uint64(args.FromIndex), uint64(args.Limit))
	return sdk.Strptr(sdk.ToJSON(page, "like list"))
}

func GetMessageLikesInfo(payload *string) *string {
	args := unwrap[MessageLikesInfoArgs](payload, "message likes info args")
	likers := likeList(messageLikesKey(args.PostID, uint64(args.MsgIdx)))
	info := LikesInfo{
		Count:   sdk.U64(uint64(len(likers))),
		IsLiked: containsAddress(likers, args.AccountID),
	}
	return sdk.Strptr(sdk.ToJSON(info, "likes info"))
}

func GetAccountFriends(payload *string) *string {
	args := unwrap[AccountPageArgs](payload, "account friends args")
	page := paginate(friends(args.AccountID), uint64(args.FromIndex), uint64(args.Limit))
	return sdk.Strptr(sdk.ToJSON(page, "friend list"))
}

// GetAccountLastLikes pages through the recent-likes ring newest-first.
func GetAccountLastLikes(payload *string) *string {
	args := unwrap[AccountPageArgs](payload, "account last likes args")
	ring := recentLikes(args.AccountID)
	newestFirst := make([]RecentLike, 0, len(ring))
	for i := len(ring) - 1; i >= 0; i-- {
		newestFirst = append(newestFirst, ring[i])
	}
	page := paginate(newestFirst, uint64(args.FromIndex), uint64(args.Limit))
	return sdk.Strptr(sdk.ToJSON(page, "recent like list"))
}

func GetProfile(payload *string) *string {
	args := unwrap[AccountArgs](payload, "profile args")
	profile := loadProfile(args.AccountID)
	if profile == nil {
		return sdk.Strptr("null")
	}
	return sdk.Strptr(sdk.ToJSON(profile, "profile"))
}

func GetAdminSettings(payload *string) *string {
	return sdk.Strptr(sdk.ToJSON(loadSettings(), "admin settings"))
}

func Methods() map[string]sdk.MethodFunc {
	return map[string]sdk.MethodFunc{
		"new":                    New,
		"add_message_to_post":    AddMessageToPost,
		"add_message_to_message": AddMessageToMessage,
		"like_post":              LikePost,
		"unlike_post":            UnlikePost,
		"like_message":           LikeMessage,
		"unlike_message":         UnlikeMessage,
		"add_friend":             AddFriend,
		"update_profile":         UpdateProfile,
		"on_fee_collected":       OnFeeCollected,
		"update_admin_settings":  UpdateAdminSettings,
		"get_post_messages":      GetPostMessages,
		"get_post_message":       GetPostMessage,
		"get_post_likes":         GetPostLikes,
		"get_post_likes_info":    GetPostLikesInfo,
		"get_message_likes":      GetMessageLikes,
		"get_message_likes_info": GetMessageLikesInfo,
		"get_account_friends":    GetAccountFriends,
		"get_account_last_likes": GetAccountLastLikes,
		"get_profile":            GetProfile,
		"get_admin_settings":     GetAdminSettings,
	}
}

// appendMessage assigns the next dense index of the post and stores the
// record.
func appendMessage(postID string, parentIdx *uint64, text string) uint64 {
	idx := messagesCount(postID)
	msg := &Message{
		MsgIdx:    sdk.U64(idx),
		Account:   sdk.PredecessorAccountID(),
		Text:      text,
		Timestamp: sdk.U64(sdk.BlockTimestamp()),
	}
	if parentIdx != nil {
		p := sdk.U64(*parentIdx)
		msg.ParentIdx = &p
	}
	saveMessage(postID, msg)
	setMessagesCount(postID, idx+1)
	emitMessage(postID, idx, parentIdx, msg.Account)
	return idx
}

func validatePostID(postID string) {
	if postID == "" {
		sdk.Revert("post id must not be empty", sdk.ErrInvalidArgument)
	}
}

func validateText(text string) {
	if text == "" {
		sdk.Revert("message text must not be empty", sdk.ErrInvalidArgument)
	}
}

func validateSettings(s *AdminSettings) {
	for _, p := range []uint8{
		s.AddMessageExtraFeePercent,
		s.LikePostExtraFeePercent,
		s.LikeMessageExtraFeePercent,
		s.AddFriendExtraFeePercent,
		s.UpdateProfileExtraFeePercent,
	} {
		if p > 100 {
			sdk.Revert("extra fee percent must be in [0,100]", sdk.ErrInvalidArgument)
		}
	}
}

func applyPercent(dst *uint8, src *uint8) {
	if src == nil {
		return
	}
	if *src > 100 {
		sdk.Revert("extra fee percent must be in [0,100]", sdk.ErrInvalidArgument)
	}
	*dst = *src
}

func unwrap[T any](payload *string, objectType string) *T {
	if payload == nil || *payload == "" {
		sdk.Revert(objectType+" payload is missing", sdk.ErrInvalidArgument)
	}
	return sdk.FromJSON[T](*payload, objectType)
}
