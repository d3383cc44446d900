package marketplace

import (
	"fmt"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

// Example payload: mps|k:activity_ft|by:alice.testnet|dep:5
func emitPurchaseStarted(kind string, buyer sdk.Address, deposit uint64) {
	sdk.Log(fmt.Sprintf("mps|k:%s|by:%s|dep:%d", kind, buyer, deposit))
}

func emitPurchaseSettled(p *PendingPurchase, beneficiary sdk.Address) {
	sdk.Log(fmt.Sprintf("mpd|k:%s|by:%s|dep:%d|ben:%s", p.Kind, p.Buyer, uint64(p.Deposit), beneficiary))
}

func emitPurchaseRefunded(p *PendingPurchase) {
	sdk.Log(fmt.Sprintf("mpr|k:%s|by:%s|dep:%d", p.Kind, p.Buyer, uint64(p.Deposit)))
}
