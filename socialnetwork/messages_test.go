package socialnetwork_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
	"github.com/egortsaryk9/artfans-near-contracts/socialnetwork"
)

func TestAddMessageAssignsDenseIndices(t *testing.T) {
	deploySocial(t)

	// interleave two posts, each keeps its own dense index space
	res := addMessage(t, alice, "post-a", "a0")
	require.True(t, res.Success, res.ErrMsg)
	assert.Equal(t, `"0"`, res.Ret)

	res = addMessage(t, bob, "post-b", "b0")
	require.True(t, res.Success, res.ErrMsg)
	assert.Equal(t, `"0"`, res.Ret)

	res = addMessage(t, bob, "post-a", "a1")
	require.True(t, res.Success, res.ErrMsg)
	assert.Equal(t, `"1"`, res.Ret)

	res = addMessage(t, alice, "post-a", "a2")
	require.True(t, res.Success, res.ErrMsg)
	assert.Equal(t, `"2"`, res.Ret)
}

func TestAddMessageChargesFee(t *testing.T) {
	deploySocial(t)

	res := addMessage(t, alice, "post_number_one", "hi")
	require.True(t, res.Success, res.ErrMsg)

	view := sdk.ViewCall(socialAccount, "get_post_message", `{"post_id":"post_number_one","msg_idx":"0"}`)
	require.True(t, view.Success, view.ErrMsg)
	msg := sdk.FromJSON[socialnetwork.Message](view.Ret, "message")
	assert.Equal(t, sdk.U64(0), msg.MsgIdx)
	assert.Equal(t, alice, msg.Account)
	assert.Equal(t, "hi", msg.Text)
	assert.Nil(t, msg.ParentIdx)

	// base cost 10 with a 10 percent extra fee
	assert.Equal(t, uint64(1000-11), ftBalance(t, alice))
	assert.Equal(t, uint64(11), ftBalance(t, socialAccount))
}

func TestReplyToMessage(t *testing.T) {
	deploySocial(t)

	res := addMessage(t, alice, "post-a", "root")
	require.True(t, res.Success, res.ErrMsg)

	res = sdk.CallContract(bob, socialAccount, "add_message_to_message",
		`{"post_id":"post-a","parent_msg_idx":"0","text":"reply"}`, 0)
	require.True(t, res.Success, res.ErrMsg)
	assert.Equal(t, `"1"`, res.Ret)

	view := sdk.ViewCall(socialAccount, "get_post_message", `{"post_id":"post-a","msg_idx":"1"}`)
	require.True(t, view.Success, view.ErrMsg)
	msg := sdk.FromJSON[socialnetwork.Message](view.Ret, "message")
	require.NotNil(t, msg.ParentIdx)
	assert.Equal(t, sdk.U64(0), *msg.ParentIdx)

	// a reply to a message that does not exist fails before any mutation
	res = sdk.CallContract(bob, socialAccount, "add_message_to_message",
		`{"post_id":"post-a","parent_msg_idx":"7","text":"dangling"}`, 0)
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrNotFound, res.ErrSym)

	view = sdk.ViewCall(socialAccount, "get_post_messages", `{"post_id":"post-a","from_index":"0","limit":"10"}`)
	msgs := *sdk.FromJSON[[]socialnetwork.Message](view.Ret, "message list")
	assert.Len(t, msgs, 2)
}

func TestEmptyTextRejectedWithoutFee(t *testing.T) {
	deploySocial(t)

	res := addMessage(t, alice, "post-a", "")
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrInvalidArgument, res.ErrSym)
	assert.Equal(t, uint64(1000), ftBalance(t, alice))
}

func TestFailedFeeChargeKeepsMutation(t *testing.T) {
	deploySocial(t)

	// drain carol's balance so the fee charge has nothing to take
	res := sdk.CallContract(owner, ftAccount, "burn", fmt.Sprintf(`{"account_id":"%s","amount":"1000"}`, carol), 0)
	require.True(t, res.Success, res.ErrMsg)

	res = addMessage(t, carol, "post-a", "broke but chatty")
	require.True(t, res.Success, res.ErrMsg)

	// the message stays even though the charge failed
	view := sdk.ViewCall(socialAccount, "get_post_message", `{"post_id":"post-a","msg_idx":"0"}`)
	require.True(t, view.Success, view.ErrMsg)
	assert.Equal(t, uint64(0), ftBalance(t, carol))
	assert.Equal(t, uint64(0), ftBalance(t, socialAccount))

	logs := strings.Join(sdk.ChainLogs(), "\n")
	assert.Contains(t, logs, "fee|by:carol.testnet|act:add_message|am:11|ok:0")
}
