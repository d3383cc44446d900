package nftregistry_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egortsaryk9/artfans-near-contracts/nftregistry"
	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

const (
	nftAccount = sdk.Address("artfans-nft.testnet")
	owner      = sdk.Address("owner.testnet")
	minter     = sdk.Address("marketplace.testnet")
	alice      = sdk.Address("alice.testnet")
	bob        = sdk.Address("bob.testnet")
)

func deployNft(t *testing.T, withDefault bool) {
	t.Helper()
	sdk.ResetChain()
	sdk.RegisterContract(nftAccount, nftregistry.Methods())
	payload := fmt.Sprintf(`{"owner":"%s","metadata":{"name":"Artfans NFT","symbol":"AFANS"}}`, owner)
	if withDefault {
		payload = fmt.Sprintf(
			`{"owner":"%s","metadata":{"name":"Artfans NFT","symbol":"AFANS"},"default_token_metadata":{"title":"Artfans Membership","media":"ipfs://artfans/default.png"}}`,
			owner)
	}
	res := sdk.CallContract(owner, nftAccount, "new", payload, 0)
	require.True(t, res.Success, res.ErrMsg)
	res = sdk.CallContract(owner, nftAccount, "add_minter", fmt.Sprintf(`{"account_id":"%s"}`, minter), 0)
	require.True(t, res.Success, res.ErrMsg)
}

func mint(t *testing.T, caller sdk.Address, tokenID string, receiver sdk.Address) sdk.CallResult {
	t.Helper()
	return sdk.CallContract(caller, nftAccount, "nft_mint",
		fmt.Sprintf(`{"token_id":"%s","receiver_id":"%s"}`, tokenID, receiver), 0)
}

func token(t *testing.T, tokenID string) nftregistry.Token {
	t.Helper()
	res := sdk.ViewCall(nftAccount, "nft_token", fmt.Sprintf(`{"token_id":"%s"}`, tokenID))
	require.True(t, res.Success, res.ErrMsg)
	require.NotEqual(t, "null", res.Ret)
	return *sdk.FromJSON[nftregistry.Token](res.Ret, "token")
}

func TestMintRequiresMinterRole(t *testing.T) {
	deployNft(t, false)

	res := mint(t, alice, "tok-1", alice)
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrUnauthorized, res.ErrSym)

	res = mint(t, minter, "tok-1", alice)
	require.True(t, res.Success, res.ErrMsg)
	tok := token(t, "tok-1")
	assert.Equal(t, alice, tok.OwnerID)
	assert.Nil(t, tok.Metadata)

	supply := sdk.ViewCall(nftAccount, "nft_total_supply", "")
	assert.Equal(t, `"1"`, supply.Ret)
}

func TestMintDuplicateTokenID(t *testing.T) {
	deployNft(t, false)

	res := mint(t, minter, "tok-1", alice)
	require.True(t, res.Success, res.ErrMsg)

	res = mint(t, minter, "tok-1", bob)
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrAlreadyExists, res.ErrSym)

	// the first owner keeps the token
	assert.Equal(t, alice, token(t, "tok-1").OwnerID)
	supply := sdk.ViewCall(nftAccount, "nft_total_supply", "")
	assert.Equal(t, `"1"`, supply.Ret)
}

func TestMintFallsBackToDefaultMetadata(t *testing.T) {
	deployNft(t, true)

	res := mint(t, minter, "tok-1", alice)
	require.True(t, res.Success, res.ErrMsg)
	tok := token(t, "tok-1")
	require.NotNil(t, tok.Metadata)
	assert.Equal(t, "Artfans Membership", *tok.Metadata.Title)

	// explicit metadata wins over the default
	res = sdk.CallContract(minter, nftAccount, "nft_mint",
		fmt.Sprintf(`{"token_id":"tok-2","receiver_id":"%s","metadata":{"title":"Special"}}`, alice), 0)
	require.True(t, res.Success, res.ErrMsg)
	assert.Equal(t, "Special", *token(t, "tok-2").Metadata.Title)

	// changing the default only affects future mints
	res = sdk.CallContract(owner, nftAccount, "set_default_token_metadata",
		`{"metadata":{"title":"Season Two"}}`, 0)
	require.True(t, res.Success, res.ErrMsg)
	res = mint(t, minter, "tok-3", alice)
	require.True(t, res.Success, res.ErrMsg)
	assert.Equal(t, "Season Two", *token(t, "tok-3").Metadata.Title)
	assert.Equal(t, "Artfans Membership", *token(t, "tok-1").Metadata.Title)
}

func TestTransfer(t *testing.T) {
	deployNft(t, false)
	res := mint(t, minter, "tok-1", alice)
	require.True(t, res.Success, res.ErrMsg)

	// only the token owner may transfer
	res = sdk.CallContract(bob, nftAccount, "nft_transfer", `{"receiver_id":"bob.testnet","token_id":"tok-1"}`, 0)
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrUnauthorized, res.ErrSym)

	res = sdk.CallContract(alice, nftAccount, "nft_transfer", `{"receiver_id":"bob.testnet","token_id":"tok-1"}`, 0)
	require.True(t, res.Success, res.ErrMsg)
	assert.Equal(t, bob, token(t, "tok-1").OwnerID)

	res = sdk.CallContract(alice, nftAccount, "nft_transfer", `{"receiver_id":"bob.testnet","token_id":"missing"}`, 0)
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrNotFound, res.ErrSym)
}

func TestTokensForOwnerPagination(t *testing.T) {
	deployNft(t, false)
	for i := 1; i <= 5; i++ {
		res := mint(t, minter, fmt.Sprintf("tok-%d", i), alice)
		require.True(t, res.Success, res.ErrMsg)
	}
	res := sdk.CallContract(alice, nftAccount, "nft_transfer", `{"receiver_id":"bob.testnet","token_id":"tok-3"}`, 0)
	require.True(t, res.Success, res.ErrMsg)

	page := func(from, limit uint64) []string {
		res := sdk.ViewCall(nftAccount, "nft_tokens_for_owner",
			fmt.Sprintf(`{"account_id":"%s","from_index":"%d","limit":"%d"}`, alice, from, limit))
		require.True(t, res.Success, res.ErrMsg)
		toks := *sdk.FromJSON[[]nftregistry.Token](res.Ret, "token list")
		ids := make([]string, 0, len(toks))
		for _, tok := range toks {
			ids = append(ids, tok.TokenID)
		}
		return ids
	}

	assert.Equal(t, []string{"tok-1", "tok-2", "tok-4", "tok-5"}, page(0, 10))
	assert.Equal(t, []string{"tok-2", "tok-4"}, page(1, 2))
	assert.Empty(t, page(10, 5))
	assert.Empty(t, page(0, 0))
}

func TestSetTokenMetadataRequiresAdmin(t *testing.T) {
	deployNft(t, false)
	res := mint(t, minter, "tok-1", alice)
	require.True(t, res.Success, res.ErrMsg)

	res = sdk.CallContract(alice, nftAccount, "set_token_metadata",
		`{"token_id":"tok-1","metadata":{"title":"Renamed"}}`, 0)
	require.False(t, res.Success)
	assert.Equal(t, sdk.ErrUnauthorized, res.ErrSym)

	res = sdk.CallContract(owner, nftAccount, "add_token_metadata_admin", fmt.Sprintf(`{"account_id":"%s"}`, bob), 0)
	require.True(t, res.Success, res.ErrMsg)

	res = sdk.CallContract(bob, nftAccount, "set_token_metadata",
		`{"token_id":"tok-1","metadata":{"title":"Renamed"}}`, 0)
	require.True(t, res.Success, res.ErrMsg)
	assert.Equal(t, "Renamed", *token(t, "tok-1").Metadata.Title)

	check := sdk.ViewCall(nftAccount, "is_token_metadata_admin", fmt.Sprintf(`{"account_id":"%s"}`, bob))
	assert.Equal(t, "true", check.Ret)
}
