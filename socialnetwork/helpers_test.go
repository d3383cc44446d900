package socialnetwork_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/egortsaryk9/artfans-near-contracts/activityft"
	"github.com/egortsaryk9/artfans-near-contracts/sdk"
	"github.com/egortsaryk9/artfans-near-contracts/socialnetwork"
)

const (
	ftAccount     = sdk.Address("activity-ft.testnet")
	socialAccount = sdk.Address("social.testnet")
	owner         = sdk.Address("owner.testnet")
	alice         = sdk.Address("alice.testnet")
	bob           = sdk.Address("bob.testnet")
	carol         = sdk.Address("carol.testnet")
)

// deploySocial brings up the fungible ledger and the social network wired
// together: the social account is a registered fee collector and every actor
// starts with a token balance that covers plenty of actions.
func deploySocial(t *testing.T) {
	t.Helper()
	sdk.ResetChain()
	sdk.RegisterContract(ftAccount, activityft.Methods())
	sdk.RegisterContract(socialAccount, socialnetwork.Methods())

	res := sdk.CallContract(owner, ftAccount, "new",
		fmt.Sprintf(`{"owner":"%s","total_supply":"0","metadata":{"name":"Artfans Activity Token","symbol":"ACT","decimals":0}}`, owner), 0)
	require.True(t, res.Success, res.ErrMsg)
	res = sdk.CallContract(owner, ftAccount, "add_fee_collector",
		fmt.Sprintf(`{"account_id":"%s"}`, socialAccount), 0)
	require.True(t, res.Success, res.ErrMsg)

	res = sdk.CallContract(owner, socialAccount, "new",
		fmt.Sprintf(`{"owner":"%s","fee_ft":"%s","settings":{"add_message_extra_fee_percent":10,"like_post_extra_fee_percent":20,"like_message_extra_fee_percent":0,"add_friend_extra_fee_percent":0,"update_profile_extra_fee_percent":50,"account_recent_likes_limit":"2"}}`,
			owner, ftAccount), 0)
	require.True(t, res.Success, res.ErrMsg)

	for _, acct := range []sdk.Address{alice, bob, carol} {
		res = sdk.CallContract(owner, ftAccount, "mint",
			fmt.Sprintf(`{"account_id":"%s","amount":"1000"}`, acct), 0)
		require.True(t, res.Success, res.ErrMsg)
	}
}

func ftBalance(t *testing.T, addr sdk.Address) uint64 {
	t.Helper()
	res := sdk.ViewCall(ftAccount, "ft_balance_of", fmt.Sprintf(`{"account_id":"%s"}`, addr))
	require.True(t, res.Success, res.ErrMsg)
	var out sdk.U64
	require.NoError(t, out.UnmarshalJSON([]byte(res.Ret)))
	return uint64(out)
}

func addMessage(t *testing.T, by sdk.Address, postID, text string) sdk.CallResult {
	t.Helper()
	return sdk.CallContract(by, socialAccount, "add_message_to_post",
		fmt.Sprintf(`{"post_id":"%s","text":"%s"}`, postID, text), 0)
}

func likePost(t *testing.T, by sdk.Address, postID string) sdk.CallResult {
	t.Helper()
	return sdk.CallContract(by, socialAccount, "like_post",
		fmt.Sprintf(`{"post_id":"%s"}`, postID), 0)
}

func lastLikes(t *testing.T, addr sdk.Address, from, limit uint64) []socialnetwork.RecentLike {
	t.Helper()
	res := sdk.ViewCall(socialAccount, "get_account_last_likes",
		fmt.Sprintf(`{"account_id":"%s","from_index":"%d","limit":"%d"}`, addr, from, limit))
	require.True(t, res.Success, res.ErrMsg)
	return *sdk.FromJSON[[]socialnetwork.RecentLike](res.Ret, "recent like list")
}
