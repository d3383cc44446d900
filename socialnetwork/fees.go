package socialnetwork

import (
	"fmt"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

// Action kinds as they appear in fee events and callback payloads.
const (
	actionAddMessage    = "add_message"
	actionLikePost      = "like_post"
	actionLikeMessage   = "like_message"
	actionAddFriend     = "add_friend"
	actionUpdateProfile = "update_profile"
)

// Base costs per action in the smallest activity-token unit. The admin
// settings add a percentage on top of these.
const (
	addMessageBaseCost    uint64 = 10
	likePostBaseCost      uint64 = 5
	likeMessageBaseCost   uint64 = 5
	addFriendBaseCost     uint64 = 2
	updateProfileBaseCost uint64 = 4
)

// calcFee returns base_cost * (100 + extra_fee_percent) / 100, rounded down.
func calcFee(baseCost uint64, extraFeePercent uint8) uint64 {
	return baseCost * (100 + uint64(extraFeePercent)) / 100
}

func actionFee(action string, s *AdminSettings) uint64 {
	switch action {
	case actionAddMessage:
		return calcFee(addMessageBaseCost, s.AddMessageExtraFeePercent)
	case actionLikePost:
		return calcFee(likePostBaseCost, s.LikePostExtraFeePercent)
	case actionLikeMessage:
		return calcFee(likeMessageBaseCost, s.LikeMessageExtraFeePercent)
	case actionAddFriend:
		return calcFee(addFriendBaseCost, s.AddFriendExtraFeePercent)
	case actionUpdateProfile:
		return calcFee(updateProfileBaseCost, s.UpdateProfileExtraFeePercent)
	}
	sdk.Abort("unknown fee action " + action)
	return 0
}

// chargeFee runs after the action's mutation is committed. It debits the
// transaction signer on the fungible ledger and resumes in OnFeeCollected
// once the charge settles. A failed charge never rolls the action back.
func chargeFee(cfg *Config, settings *AdminSettings, action string) {
	fee := actionFee(action, settings)
	caller := sdk.PredecessorAccountID()
	promiseID := sdk.PromiseCall(cfg.FeeFt, "ft_collect_fee",
		fmt.Sprintf(`{"amount":"%d"}`, fee), 0)
	callbackArgs := sdk.ToJSON(OnFeeCollectedArgs{
		Account: caller,
		Action:  action,
		Fee:     sdk.U64(fee),
	}, "fee callback args")
	sdk.PromiseThen(promiseID, "on_fee_collected", callbackArgs)
}
