//go:build wasm

package marketplace

//go:wasmexport new
func wasmNew(payload *string) *string { return New(payload) }

//go:wasmexport buy_activity_ft
func wasmBuyActivityFt(payload *string) *string { return BuyActivityFt(payload) }

//go:wasmexport mint_artfans_nft
func wasmMintArtfansNft(payload *string) *string { return MintArtfansNft(payload) }

//go:wasmexport on_activity_ft_purchased
func wasmOnActivityFtPurchased(payload *string) *string { return OnActivityFtPurchased(payload) }

//go:wasmexport on_artfans_nft_purchased
func wasmOnArtfansNftPurchased(payload *string) *string { return OnArtfansNftPurchased(payload) }

//go:wasmexport get_config
func wasmGetConfig(payload *string) *string { return GetConfig(payload) }
