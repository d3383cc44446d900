//go:build wasm

package activityft

//go:wasmexport new
func wasmNew(payload *string) *string { return New(payload) }

//go:wasmexport mint
func wasmMint(payload *string) *string { return Mint(payload) }

//go:wasmexport burn
func wasmBurn(payload *string) *string { return Burn(payload) }

//go:wasmexport ft_transfer
func wasmFtTransfer(payload *string) *string { return FtTransfer(payload) }

//go:wasmexport ft_collect_fee
func wasmFtCollectFee(payload *string) *string { return FtCollectFee(payload) }

//go:wasmexport add_minter
func wasmAddMinter(payload *string) *string { return AddMinter(payload) }

//go:wasmexport remove_minter
func wasmRemoveMinter(payload *string) *string { return RemoveMinter(payload) }

//go:wasmexport add_fee_collector
func wasmAddFeeCollector(payload *string) *string { return AddFeeCollector(payload) }

//go:wasmexport remove_fee_collector
func wasmRemoveFeeCollector(payload *string) *string { return RemoveFeeCollector(payload) }

//go:wasmexport ft_balance_of
func wasmFtBalanceOf(payload *string) *string { return FtBalanceOf(payload) }

//go:wasmexport ft_total_supply
func wasmFtTotalSupply(payload *string) *string { return FtTotalSupply(payload) }

//go:wasmexport ft_metadata
func wasmFtMetadata(payload *string) *string { return FtMetadata(payload) }

//go:wasmexport is_minter
func wasmIsMinter(payload *string) *string { return IsMinter(payload) }

//go:wasmexport is_fee_collector
func wasmIsFeeCollector(payload *string) *string { return IsFeeCollector(payload) }
