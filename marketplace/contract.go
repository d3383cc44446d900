// Package marketplace orchestrates native-currency purchases across the
// fungible ledger and the nft registry. The runtime offers no cross-contract
// transaction, so every purchase is a small state machine: record the
// deposit, fire the remote mint, and settle or refund in the callback.
// Payment never reaches a beneficiary before the mint confirmed.
package marketplace

import (
	"fmt"
	"math"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

// ExchangeRate is the activity tokens minted per unit of attached native
// currency.
const ExchangeRate uint64 = 100

func New(payload *string) *string {
	if isInitialized() {
		sdk.Revert("already initialized", sdk.ErrAlreadyInitialized)
	}
	args := unwrap[NewArgs](payload, "init args")
	for _, addr := range []sdk.Address{
		args.Owner,
		args.ActivityFt, args.ActivityFtBeneficiary,
		args.ArtfansNft, args.ArtfansNftBeneficiary,
	} {
		if !addr.IsValid() {
			sdk.Revert("malformed account id "+addr.String(), sdk.ErrInvalidArgument)
		}
	}
	saveConfig(&Config{
		Owner:                 args.Owner,
		ActivityFt:            args.ActivityFt,
		ActivityFtBeneficiary: args.ActivityFtBeneficiary,
		ArtfansNft:            args.ArtfansNft,
		ArtfansNftBeneficiary: args.ArtfansNftBeneficiary,
	})
	return sdk.Strptr("initialized")
}

// BuyActivityFt exchanges the attached deposit for activity tokens at
// ExchangeRate. The mint is asynchronous; until OnActivityFtPurchased fires,
// the deposit sits on this contract correlated by a PendingPurchase.
func BuyActivityFt(payload *string) *string {
	cfg := loadConfig()
	buyer := sdk.PredecessorAccountID()
	deposit := sdk.AttachedDeposit()
	if deposit == 0 {
		sdk.Revert("attached deposit is required", sdk.ErrInvalidArgument)
	}
	if deposit > math.MaxUint64/ExchangeRate {
		sdk.Revert("attached deposit is too large", sdk.ErrInvalidArgument)
	}
	amount := deposit * ExchangeRate

	promiseID := sdk.PromiseCall(cfg.ActivityFt, "mint",
		fmt.Sprintf(`{"account_id":"%s","amount":"%d"}`, buyer, amount), 0)
	savePending(promiseID, &PendingPurchase{
		Buyer:    buyer,
		Deposit:  sdk.U64(deposit),
		Kind:     purchaseActivityFt,
		FtAmount: sdk.U64(amount),
	})
	sdk.PromiseThen(promiseID, "on_activity_ft_purchased",
		sdk.ToJSON(PurchaseCallbackArgs{PromiseID: sdk.U64(promiseID)}, "purchase callback args"))
	emitPurchaseStarted(purchaseActivityFt, buyer, deposit)
	return nil
}

// MintArtfansNft exchanges the attached deposit for one freshly-minted nft.
// The token id is drawn from the marketplace counter before the remote call,
// so a failed mint burns the id but never reuses one.
func MintArtfansNft(payload *string) *string {
	cfg := loadConfig()
	buyer := sdk.PredecessorAccountID()
	deposit := sdk.AttachedDeposit()
	if deposit == 0 {
		sdk.Revert("attached deposit is required", sdk.ErrInvalidArgument)
	}
	tokenID := nextTokenID()

	promiseID := sdk.PromiseCall(cfg.ArtfansNft, "nft_mint",
		fmt.Sprintf(`{"token_id":"%s","receiver_id":"%s"}`, tokenID, buyer), 0)
	savePending(promiseID, &PendingPurchase{
		Buyer:   buyer,
		Deposit: sdk.U64(deposit),
		Kind:    purchaseArtfansNft,
		TokenID: tokenID,
	})
	sdk.PromiseThen(promiseID, "on_artfans_nft_purchased",
		sdk.ToJSON(PurchaseCallbackArgs{PromiseID: sdk.U64(promiseID)}, "purchase callback args"))
	emitPurchaseStarted(purchaseArtfansNft, buyer, deposit)
	return nil
}

// OnActivityFtPurchased settles a token purchase: forward the deposit to the
// beneficiary on mint success, refund the buyer on failure.
func OnActivityFtPurchased(payload *string) *string {
	sdk.RequirePrivate()
	cfg := loadConfig()
	args := unwrap[PurchaseCallbackArgs](payload, "purchase callback args")
	resolvePurchase(uint64(args.PromiseID), cfg.ActivityFtBeneficiary)
	return nil
}

// OnArtfansNftPurchased is the nft counterpart of OnActivityFtPurchased.
func OnArtfansNftPurchased(payload *string) *string {
	sdk.RequirePrivate()
	cfg := loadConfig()
	args := unwrap[PurchaseCallbackArgs](payload, "purchase callback args")
	resolvePurchase(uint64(args.PromiseID), cfg.ArtfansNftBeneficiary)
	return nil
}

// resolvePurchase is the single settlement path of both flows. The pending
// record is destroyed before any money moves, which makes resolution
// exactly-once. The refund branch is unconditional; a refund the host cannot
// perform aborts the callback, there is no further recovery path.
func resolvePurchase(promiseID uint64, beneficiary sdk.Address) {
	pending := takePending(promiseID)
	if pending == nil {
		sdk.Log(fmt.Sprintf("purchase callback for unknown promise %d", promiseID))
		return
	}
	deposit := uint64(pending.Deposit)
	if sdk.PromiseSuccess() {
		sdk.Transfer(beneficiary, deposit)
		emitPurchaseSettled(pending, beneficiary)
		return
	}
	sdk.Transfer(pending.Buyer, deposit)
	emitPurchaseRefunded(pending)
}

func GetConfig(payload *string) *string {
	return sdk.Strptr(sdk.ToJSON(loadConfig(), "config"))
}

func Methods() map[string]sdk.MethodFunc {
	return map[string]sdk.MethodFunc{
		"new":                      New,
		"buy_activity_ft":          BuyActivityFt,
		"mint_artfans_nft":         MintArtfansNft,
		"on_activity_ft_purchased": OnActivityFtPurchased,
		"on_artfans_nft_purchased": OnArtfansNftPurchased,
		"get_config":               GetConfig,
	}
}

func unwrap[T any](payload *string, objectType string) *T {
	if payload == nil || *payload == "" {
		sdk.Revert(objectType+" payload is missing", sdk.ErrInvalidArgument)
	}
	return sdk.FromJSON[T](*payload, objectType)
}
