package socialnetwork

import (
	"fmt"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

// Example payload: sm|p:post_number_one|i:0|by:alice.testnet
func emitMessage(postID string, idx uint64, parentIdx *uint64, by sdk.Address) {
	if parentIdx != nil {
		sdk.Log(fmt.Sprintf("sm|p:%s|i:%d|re:%d|by:%s", postID, idx, *parentIdx, by))
		return
	}
	sdk.Log(fmt.Sprintf("sm|p:%s|i:%d|by:%s", postID, idx, by))
}

func emitLike(postID string, msgIdx *uint64, by sdk.Address) {
	if msgIdx != nil {
		sdk.Log(fmt.Sprintf("sl|p:%s|i:%d|by:%s", postID, *msgIdx, by))
		return
	}
	sdk.Log(fmt.Sprintf("sl|p:%s|by:%s", postID, by))
}

func emitUnlike(postID string, msgIdx *uint64, by sdk.Address) {
	if msgIdx != nil {
		sdk.Log(fmt.Sprintf("su|p:%s|i:%d|by:%s", postID, *msgIdx, by))
		return
	}
	sdk.Log(fmt.Sprintf("su|p:%s|by:%s", postID, by))
}

func emitFriend(by, friend sdk.Address) {
	sdk.Log(fmt.Sprintf("sf|by:%s|f:%s", by, friend))
}

func emitProfileUpdate(by sdk.Address) {
	sdk.Log(fmt.Sprintf("sp|by:%s", by))
}

// Example payload: fee|by:alice.testnet|act:add_message|am:11|ok:1
func emitFeeOutcome(by sdk.Address, action string, fee uint64, ok bool) {
	flag := 0
	if ok {
		flag = 1
	}
	sdk.Log(fmt.Sprintf("fee|by:%s|act:%s|am:%d|ok:%d", by, action, fee, flag))
}
