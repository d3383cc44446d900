package activityft

import (
	"fmt"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

// Example payload: ftm|to:alice.testnet|am:500|memo:initial token supply is minted
func emitMint(to sdk.Address, amount uint64, memo string) {
	if memo != "" {
		sdk.Log(fmt.Sprintf("ftm|to:%s|am:%d|memo:%s", to, amount, memo))
		return
	}
	sdk.Log(fmt.Sprintf("ftm|to:%s|am:%d", to, amount))
}

func emitBurn(from sdk.Address, amount uint64) {
	sdk.Log(fmt.Sprintf("ftb|from:%s|am:%d", from, amount))
}

func emitTransfer(from, to sdk.Address, amount uint64) {
	sdk.Log(fmt.Sprintf("ftt|from:%s|to:%s|am:%d", from, to, amount))
}

// Example payload: ftf|payer:alice.testnet|col:social.testnet|am:6
func emitFeeCollected(payer, collector sdk.Address, amount uint64) {
	sdk.Log(fmt.Sprintf("ftf|payer:%s|col:%s|am:%d", payer, collector, amount))
}
