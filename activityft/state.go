package activityft

import (
	"math"
	"strconv"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

// -----------------------------------------------------------------------------
// Contract State Persistence helpers
// -----------------------------------------------------------------------------

func isInitialized() bool {
	ptr := sdk.StateGetObject(configKey)
	return ptr != nil && *ptr != ""
}

func loadConfig() *Config {
	ptr := sdk.StateGetObject(configKey)
	if ptr == nil || *ptr == "" {
		sdk.Abort("contract is not initialized")
	}
	return sdk.FromJSON[Config](*ptr, "config")
}

func saveConfig(cfg *Config) {
	sdk.StateSetObject(configKey, sdk.ToJSON(cfg, "config"))
}

func loadMetadata() *Metadata {
	ptr := sdk.StateGetObject(metadataKey)
	if ptr == nil {
		sdk.Abort("token metadata is not set")
	}
	return sdk.FromJSON[Metadata](*ptr, "token metadata")
}

func saveMetadata(meta *Metadata) {
	sdk.StateSetObject(metadataKey, sdk.ToJSON(meta, "token metadata"))
}

func balanceOf(addr sdk.Address) uint64 {
	ptr := sdk.StateGetObject(balanceKey(addr))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func setBalance(addr sdk.Address, amount uint64) {
	sdk.StateSetObject(balanceKey(addr), strconv.FormatUint(amount, 10))
}

func totalSupply() uint64 {
	ptr := sdk.StateGetObject(totalSupplyKey)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func setTotalSupply(amount uint64) {
	sdk.StateSetObject(totalSupplyKey, strconv.FormatUint(amount, 10))
}

// credit adds to a balance with an explicit overflow guard; overflowing a
// uint64 of the smallest token unit means something upstream went very wrong.
func credit(addr sdk.Address, amount uint64) {
	bal := balanceOf(addr)
	if bal > math.MaxUint64-amount {
		sdk.Abort("balance overflow for " + addr.String())
	}
	setBalance(addr, bal+amount)
}

// debit removes from a balance, reverting with insufficient_balance before
// any write when funds do not cover the amount.
func debit(addr sdk.Address, amount uint64) {
	bal := balanceOf(addr)
	if bal < amount {
		sdk.Revert("account "+addr.String()+" does not have enough balance", sdk.ErrInsufficientBalance)
	}
	setBalance(addr, bal-amount)
}

func growSupply(amount uint64) {
	supply := totalSupply()
	if supply > math.MaxUint64-amount {
		sdk.Abort("total supply overflow")
	}
	setTotalSupply(supply + amount)
}

func shrinkSupply(amount uint64) {
	supply := totalSupply()
	if supply < amount {
		sdk.Abort("total supply underflow")
	}
	setTotalSupply(supply - amount)
}
