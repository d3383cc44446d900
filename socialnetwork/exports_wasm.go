//go:build wasm

package socialnetwork

//go:wasmexport new
func wasmNew(payload *string) *string { return New(payload) }

//go:wasmexport add_message_to_post
func wasmAddMessageToPost(payload *string) *string { return AddMessageToPost(payload) }

//go:wasmexport add_message_to_message
func wasmAddMessageToMessage(payload *string) *string { return AddMessageToMessage(payload) }

//go:wasmexport like_post
func wasmLikePost(payload *string) *string { return LikePost(payload) }

//go:wasmexport unlike_post
func wasmUnlikePost(payload *string) *string { return UnlikePost(payload) }

//go:wasmexport like_message
func wasmLikeMessage(payload *string) *string { return LikeMessage(payload) }

//go:wasmexport unlike_message
func wasmUnlikeMessage(payload *string) *string { return UnlikeMessage(payload) }

//go:wasmexport add_friend
func wasmAddFriend(payload *string) *string { return AddFriend(payload) }

//go:wasmexport update_profile
func wasmUpdateProfile(payload *string) *string { return UpdateProfile(payload) }

//go:wasmexport on_fee_collected
func wasmOnFeeCollected(payload *string) *string { return OnFeeCollected(payload) }

//go:wasmexport update_admin_settings
func wasmUpdateAdminSettings(payload *string) *string { return UpdateAdminSettings(payload) }

//go:wasmexport get_post_messages
func wasmGetPostMessages(payload *string) *string { return GetPostMessages(payload) }

//go:wasmexport get_post_message
func wasmGetPostMessage(payload *string) *string { return GetPostMessage(payload) }

//go:wasmexport get_post_likes
func wasmGetPostLikes(payload *string) *string { return GetPostLikes(payload) }

//go:wasmexport get_post_likes_info
func wasmGetPostLikesInfo(payload *string) *string { return GetPostLikesInfo(payload) }

//go:wasmexport get_message_likes
func wasmGetMessageLikes(payload *string) *string { return GetMessageLikes(payload) }

//go:wasmexport get_message_likes_info
func wasmGetMessageLikesInfo(payload *string) *string { return GetMessageLikesInfo(payload) }

//go:wasmexport get_account_friends
func wasmGetAccountFriends(payload *string) *string { return GetAccountFriends(payload) }

//go:wasmexport get_account_last_likes
func wasmGetAccountLastLikes(payload *string) *string { return GetAccountLastLikes(payload) }

//go:wasmexport get_profile
func wasmGetProfile(payload *string) *string { return GetProfile(payload) }

//go:wasmexport get_admin_settings
func wasmGetAdminSettings(payload *string) *string { return GetAdminSettings(payload) }
