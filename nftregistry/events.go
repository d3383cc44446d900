package nftregistry

import (
	"fmt"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

// Example payload: nm|id:fan-membership-1|to:alice.testnet
func emitMint(tokenID string, to sdk.Address) {
	sdk.Log(fmt.Sprintf("nm|id:%s|to:%s", tokenID, to))
}

func emitTransfer(tokenID string, from, to sdk.Address) {
	sdk.Log(fmt.Sprintf("nt|id:%s|from:%s|to:%s", tokenID, from, to))
}
