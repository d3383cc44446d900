package socialnetwork_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
	"github.com/egortsaryk9/artfans-near-contracts/socialnetwork"
)

func TestLikePostOnlyOnce(t *testing.T) {
	deploySocial(t)

	res := likePost(t, alice, "post-a")
	require.True(t, res.Success, res.ErrMsg)

	res = likePost(t, alice, "post-a")
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrAlreadyExists, res.ErrSym)

	// base cost 5 with a 20 percent extra fee, charged once
	assert.Equal(t, uint64(1000-6), ftBalance(t, alice))
}

func TestUnlikePost(t *testing.T) {
	deploySocial(t)

	res := sdk.CallContract(alice, socialAccount, "unlike_post", `{"post_id":"post-a"}`, 0)
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrNotFound, res.ErrSym)

	res = likePost(t, alice, "post-a")
	require.True(t, res.Success, res.ErrMsg)
	balanceAfterLike := ftBalance(t, alice)

	res = sdk.CallContract(alice, socialAccount, "unlike_post", `{"post_id":"post-a"}`, 0)
	require.True(t, res.Success, res.ErrMsg)

	// unlike is free and clears the recent-likes entry
	assert.Equal(t, balanceAfterLike, ftBalance(t, alice))
	assert.Empty(t, lastLikes(t, alice, 0, 10))

	// the like can be placed again afterwards
	res = likePost(t, alice, "post-a")
	require.True(t, res.Success, res.ErrMsg)
}

func TestLikeMessage(t *testing.T) {
	deploySocial(t)

	res := likePost(t, alice, "post-a")
	require.True(t, res.Success, res.ErrMsg)

	// liking a message that does not exist fails, the implicit post is not enough
	res = sdk.CallContract(bob, socialAccount, "like_message", `{"post_id":"post-a","msg_idx":"0"}`, 0)
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrNotFound, res.ErrSym)

	res = addMessage(t, alice, "post-a", "hello")
	require.True(t, res.Success, res.ErrMsg)

	res = sdk.CallContract(bob, socialAccount, "like_message", `{"post_id":"post-a","msg_idx":"0"}`, 0)
	require.True(t, res.Success, res.ErrMsg)

	res = sdk.CallContract(bob, socialAccount, "like_message", `{"post_id":"post-a","msg_idx":"0"}`, 0)
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrAlreadyExists, res.ErrSym)

	info := sdk.ViewCall(socialAccount, "get_message_likes_info",
		fmt.Sprintf(`{"post_id":"post-a","msg_idx":"0","account_id":"%s"}`, bob))
	require.True(t, info.Success, info.ErrMsg)
	li := sdk.FromJSON[socialnetwork.LikesInfo](info.Ret, "likes info")
	assert.Equal(t, sdk.U64(1), li.Count)
	assert.True(t, li.IsLiked)

	res = sdk.CallContract(bob, socialAccount, "unlike_message", `{"post_id":"post-a","msg_idx":"0"}`, 0)
	require.True(t, res.Success, res.ErrMsg)
	res = sdk.CallContract(bob, socialAccount, "unlike_message", `{"post_id":"post-a","msg_idx":"0"}`, 0)
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrNotFound, res.ErrSym)
}

func TestRecentLikesRingEvictsOldest(t *testing.T) {
	deploySocial(t)

	// limit is 2; liking P1, P2, P3 in order leaves [P3, P2] newest-first
	for _, post := range []string{"P1", "P2", "P3"} {
		res := likePost(t, bob, post)
		require.True(t, res.Success, res.ErrMsg)
	}

	ring := lastLikes(t, bob, 0, 10)
	require.Len(t, ring, 2)
	assert.Equal(t, "P3", ring[0].PostID)
	assert.Equal(t, "P2", ring[1].PostID)
}

func TestRecentLikesTracksMessageTargets(t *testing.T) {
	deploySocial(t)

	res := addMessage(t, alice, "post-a", "hello")
	require.True(t, res.Success, res.ErrMsg)
	res = sdk.CallContract(bob, socialAccount, "like_message", `{"post_id":"post-a","msg_idx":"0"}`, 0)
	require.True(t, res.Success, res.ErrMsg)
	res = likePost(t, bob, "post-a")
	require.True(t, res.Success, res.ErrMsg)

	ring := lastLikes(t, bob, 0, 10)
	require.Len(t, ring, 2)
	assert.Equal(t, "post-a", ring[0].PostID)
	assert.Nil(t, ring[0].MsgIdx)
	require.NotNil(t, ring[1].MsgIdx)
	assert.Equal(t, sdk.U64(0), *ring[1].MsgIdx)

	// unliking the message drops only its own ring entry
	res = sdk.CallContract(bob, socialAccount, "unlike_message", `{"post_id":"post-a","msg_idx":"0"}`, 0)
	require.True(t, res.Success, res.ErrMsg)
	ring = lastLikes(t, bob, 0, 10)
	require.Len(t, ring, 1)
	assert.Nil(t, ring[0].MsgIdx)
}

func TestPostLikesInfo(t *testing.T) {
	deploySocial(t)

	res := likePost(t, alice, "post-a")
	require.True(t, res.Success, res.ErrMsg)
	res = likePost(t, bob, "post-a")
	require.True(t, res.Success, res.ErrMsg)

	info := sdk.ViewCall(socialAccount, "get_post_likes_info",
		fmt.Sprintf(`{"post_id":"post-a","account_id":"%s"}`, carol))
	require.True(t, info.Success, info.ErrMsg)
	li := sdk.FromJSON[socialnetwork.LikesInfo](info.Ret, "likes info")
	assert.Equal(t, sdk.U64(2), li.Count)
	assert.False(t, li.IsLiked)
}
