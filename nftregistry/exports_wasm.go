//go:build wasm

package nftregistry

//go:wasmexport new
func wasmNew(payload *string) *string { return New(payload) }

//go:wasmexport nft_mint
func wasmNftMint(payload *string) *string { return NftMint(payload) }

//go:wasmexport nft_transfer
func wasmNftTransfer(payload *string) *string { return NftTransfer(payload) }

//go:wasmexport set_token_metadata
func wasmSetTokenMetadata(payload *string) *string { return SetTokenMetadata(payload) }

//go:wasmexport set_default_token_metadata
func wasmSetDefaultTokenMetadata(payload *string) *string { return SetDefaultTokenMetadata(payload) }

//go:wasmexport add_minter
func wasmAddMinter(payload *string) *string { return AddMinter(payload) }

//go:wasmexport remove_minter
func wasmRemoveMinter(payload *string) *string { return RemoveMinter(payload) }

//go:wasmexport add_token_metadata_admin
func wasmAddTokenMetadataAdmin(payload *string) *string { return AddTokenMetadataAdmin(payload) }

//go:wasmexport remove_token_metadata_admin
func wasmRemoveTokenMetadataAdmin(payload *string) *string { return RemoveTokenMetadataAdmin(payload) }

//go:wasmexport nft_token
func wasmNftToken(payload *string) *string { return NftToken(payload) }

//go:wasmexport nft_total_supply
func wasmNftTotalSupply(payload *string) *string { return NftTotalSupply(payload) }

//go:wasmexport nft_tokens_for_owner
func wasmNftTokensForOwner(payload *string) *string { return NftTokensForOwner(payload) }

//go:wasmexport nft_metadata
func wasmNftMetadata(payload *string) *string { return NftMetadata(payload) }

//go:wasmexport is_minter
func wasmIsMinter(payload *string) *string { return IsMinter(payload) }

//go:wasmexport is_token_metadata_admin
func wasmIsTokenMetadataAdmin(payload *string) *string { return IsTokenMetadataAdmin(payload) }
