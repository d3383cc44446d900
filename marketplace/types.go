package marketplace

import "github.com/egortsaryk9/artfans-near-contracts/sdk"

type Config struct {
	Owner sdk.Address `json:"owner"`
	// ActivityFt is minted on token purchases, proceeds go to its beneficiary.
	ActivityFt            sdk.Address `json:"activity_ft"`
	ActivityFtBeneficiary sdk.Address `json:"activity_ft_beneficiary"`
	// ArtfansNft is minted on nft purchases, proceeds go to its beneficiary.
	ArtfansNft            sdk.Address `json:"artfans_nft"`
	ArtfansNftBeneficiary sdk.Address `json:"artfans_nft_beneficiary"`
}

// Purchase kinds stored on a PendingPurchase.
const (
	purchaseActivityFt = "activity_ft"
	purchaseArtfansNft = "artfans_nft"
)

// PendingPurchase correlates an in-flight deposit with its outbound mint
// call. It lives from the moment the call is issued until the callback
// resolves it, settled or refunded, exactly once.
type PendingPurchase struct {
	Buyer    sdk.Address `json:"buyer"`
	Deposit  sdk.U64     `json:"deposit"`
	Kind     string      `json:"kind"`
	FtAmount sdk.U64     `json:"ft_amount,omitempty"`
	TokenID  string      `json:"token_id,omitempty"`
}

type NewArgs struct {
	Owner                 sdk.Address `json:"owner"`
	ActivityFt            sdk.Address `json:"activity_ft"`
	ActivityFtBeneficiary sdk.Address `json:"activity_ft_beneficiary"`
	ArtfansNft            sdk.Address `json:"artfans_nft"`
	ArtfansNftBeneficiary sdk.Address `json:"artfans_nft_beneficiary"`
}

// PurchaseCallbackArgs carries the pending-purchase key into the callback.
type PurchaseCallbackArgs struct {
	PromiseID sdk.U64 `json:"promise_id"`
}
