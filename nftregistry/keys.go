package nftregistry

import "github.com/egortsaryk9/artfans-near-contracts/sdk"

const (
	configKey      = "cfg"
	metadataKey    = "meta"
	defaultMetaKey = "defmeta"
	totalSupplyKey = "supply"

	minterRole        = "minter"
	metadataAdminRole = "metadata_admin"
)

func tokenKey(tokenID string) string {
	return "tok:" + tokenID
}

// ownerTokensKey holds the insertion-ordered token id list of one account.
func ownerTokensKey(addr sdk.Address) string {
	return "own:" + addr.String()
}
