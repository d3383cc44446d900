package activityft

import "github.com/egortsaryk9/artfans-near-contracts/sdk"

// Storage key layout. Balances get one key per account; everything else is a
// singleton blob.
const (
	configKey      = "cfg"
	metadataKey    = "meta"
	totalSupplyKey = "supply"

	minterRole       = "minter"
	feeCollectorRole = "fee_collector"
)

func balanceKey(addr sdk.Address) string {
	return "bal:" + addr.String()
}
