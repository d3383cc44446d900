package socialnetwork

import "github.com/egortsaryk9/artfans-near-contracts/sdk"

type Config struct {
	Owner sdk.Address `json:"owner"`
	// FeeFt is the fungible ledger the network fee is collected on.
	FeeFt sdk.Address `json:"fee_ft"`
}

// AdminSettings drives the fee computation and the recent-likes bound.
// Percentages are the extra fee on top of each action's base cost, in [0,100].
type AdminSettings struct {
	AddMessageExtraFeePercent    uint8   `json:"add_message_extra_fee_percent"`
	LikePostExtraFeePercent      uint8   `json:"like_post_extra_fee_percent"`
	LikeMessageExtraFeePercent   uint8   `json:"like_message_extra_fee_percent"`
	AddFriendExtraFeePercent     uint8   `json:"add_friend_extra_fee_percent"`
	UpdateProfileExtraFeePercent uint8   `json:"update_profile_extra_fee_percent"`
	AccountRecentLikesLimit      sdk.U64 `json:"account_recent_likes_limit"`
}

// AdminSettingsUpdate is the partial-update shape: absent fields keep their
// stored value.
type AdminSettingsUpdate struct {
	AddMessageExtraFeePercent    *uint8   `json:"add_message_extra_fee_percent,omitempty"`
	LikePostExtraFeePercent      *uint8   `json:"like_post_extra_fee_percent,omitempty"`
	LikeMessageExtraFeePercent   *uint8   `json:"like_message_extra_fee_percent,omitempty"`
	AddFriendExtraFeePercent     *uint8   `json:"add_friend_extra_fee_percent,omitempty"`
	UpdateProfileExtraFeePercent *uint8   `json:"update_profile_extra_fee_percent,omitempty"`
	AccountRecentLikesLimit      *sdk.U64 `json:"account_recent_likes_limit,omitempty"`
}

// Message is one comment in a post's dense index space. ParentIdx is nil for
// post-level messages and points at the replied-to message otherwise.
type Message struct {
	MsgIdx    sdk.U64     `json:"msg_idx"`
	ParentIdx *sdk.U64    `json:"parent_idx,omitempty"`
	Account   sdk.Address `json:"account"`
	Text      string      `json:"text"`
	Timestamp sdk.U64     `json:"timestamp"`
}

type Profile struct {
	JSONMetadata string `json:"json_metadata"`
	ImageURL     string `json:"image_url"`
}

// RecentLike is one ring entry; MsgIdx is nil when the target was a post.
type RecentLike struct {
	PostID    string   `json:"post_id"`
	MsgIdx    *sdk.U64 `json:"msg_idx,omitempty"`
	Timestamp sdk.U64  `json:"timestamp"`
}

// LikesInfo is the compact like summary relative to one viewer account.
type LikesInfo struct {
	Count   sdk.U64 `json:"count"`
	IsLiked bool    `json:"is_liked"`
}

type NewArgs struct {
	Owner    sdk.Address   `json:"owner"`
	FeeFt    sdk.Address   `json:"fee_ft"`
	Settings AdminSettings `json:"settings"`
}

type AddMessageToPostArgs struct {
	PostID string `json:"post_id"`
	Text   string `json:"text"`
}

type AddMessageToMessageArgs struct {
	PostID    string  `json:"post_id"`
	ParentIdx sdk.U64 `json:"parent_msg_idx"`
	Text      string  `json:"text"`
}

type PostArgs struct {
	PostID string `json:"post_id"`
}

type MessageArgs struct {
	PostID string  `json:"post_id"`
	MsgIdx sdk.U64 `json:"msg_idx"`
}

type AddFriendArgs struct {
	FriendID sdk.Address `json:"friend_id"`
}

type UpdateProfileArgs struct {
	JSONMetadata *string `json:"json_metadata,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
}

type UpdateAdminSettingsArgs struct {
	Settings AdminSettingsUpdate `json:"settings"`
}

// OnFeeCollectedArgs travels from the fee-bearing action into its callback.
type OnFeeCollectedArgs struct {
	Account sdk.Address `json:"account"`
	Action  string      `json:"action"`
	Fee     sdk.U64     `json:"fee"`
}

type PostPageArgs struct {
	PostID    string  `json:"post_id"`
	FromIndex sdk.U64 `json:"from_index"`
	Limit     sdk.U64 `json:"limit"`
}

type MessagePageArgs struct {
	PostID    string  `json:"post_id"`
	MsgIdx    sdk.U64 `json:"msg_idx"`
	FromIndex sdk.U64 `json:"from_index"`
	Limit     sdk.U64 `json:"limit"`
}

type AccountPageArgs struct {
	AccountID sdk.Address `json:"account_id"`
	FromIndex sdk.U64     `json:"from_index"`
	Limit     sdk.U64     `json:"limit"`
}

type PostLikesInfoArgs struct {
	PostID    string      `json:"post_id"`
	AccountID sdk.Address `json:"account_id"`
}

type MessageLikesInfoArgs struct {
	PostID    string      `json:"post_id"`
	MsgIdx    sdk.U64     `json:"msg_idx"`
	AccountID sdk.Address `json:"account_id"`
}

type AccountArgs struct {
	AccountID sdk.Address `json:"account_id"`
}
