// Package activityft is the fungible ledger of the activity token. It keeps
// per-account balances, a minter role for the marketplace and a fee collector
// role for the social network's fee-charge primitive.
package activityft

import (
	"github.com/egortsaryk9/artfans-near-contracts/roleset"
	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

// New initializes the contract and mints the initial supply to the owner.
// Must be called before any other function; calling it twice fails.
func New(payload *string) *string {
	if isInitialized() {
		sdk.Revert("already initialized", sdk.ErrAlreadyInitialized)
	}
	args := unwrap[NewArgs](payload, "init args")
	if !args.Owner.IsValid() {
		sdk.Revert("malformed owner account id", sdk.ErrInvalidArgument)
	}
	saveConfig(&Config{Owner: args.Owner})
	saveMetadata(&args.Metadata)
	if uint64(args.TotalSupply) > 0 {
		credit(args.Owner, uint64(args.TotalSupply))
		growSupply(uint64(args.TotalSupply))
		emitMint(args.Owner, uint64(args.TotalSupply), "initial token supply is minted")
	}
	return sdk.Strptr("initialized")
}

// Mint creates tokens on the target account. Restricted to the minter role
// (the marketplace) and the owner.
func Mint(payload *string) *string {
	cfg := loadConfig()
	minters(cfg).Require(sdk.PredecessorAccountID())
	args := unwrap[MintArgs](payload, "mint args")
	if uint64(args.Amount) == 0 {
		sdk.Revert("mint amount must be positive", sdk.ErrInvalidArgument)
	}
	credit(args.AccountID, uint64(args.Amount))
	growSupply(uint64(args.Amount))
	emitMint(args.AccountID, uint64(args.Amount), "")
	return nil
}

// Burn destroys tokens on the target account. Owner-only; an amount above
// the account's balance fails with insufficient_balance and has no effect.
func Burn(payload *string) *string {
	cfg := loadConfig()
	requireOwner(cfg)
	args := unwrap[BurnArgs](payload, "burn args")
	debit(args.AccountID, uint64(args.Amount))
	shrinkSupply(uint64(args.Amount))
	emitBurn(args.AccountID, uint64(args.Amount))
	return nil
}

// FtTransfer moves tokens from the caller to the receiver.
func FtTransfer(payload *string) *string {
	loadConfig() // init guard
	sender := sdk.PredecessorAccountID()
	args := unwrap[TransferArgs](payload, "transfer args")
	if !args.ReceiverID.IsValid() {
		sdk.Revert("malformed receiver account id", sdk.ErrInvalidArgument)
	}
	if sender == args.ReceiverID {
		sdk.Revert("sender and receiver are the same account", sdk.ErrInvalidArgument)
	}
	debit(sender, uint64(args.Amount))
	credit(args.ReceiverID, uint64(args.Amount))
	emitTransfer(sender, args.ReceiverID, uint64(args.Amount))
	return nil
}

// FtCollectFee is the network-fee primitive: a registered fee collector (the
// social network contract) debits the transaction signer and keeps the
// amount on its own balance. A signer without funds fails the charge with no
// effect, which the collector observes through its callback.
func FtCollectFee(payload *string) *string {
	cfg := loadConfig()
	collector := sdk.PredecessorAccountID()
	feeCollectors(cfg).Require(collector)
	args := unwrap[CollectFeeArgs](payload, "collect fee args")
	payer := sdk.SignerAccountID()
	debit(payer, uint64(args.Amount))
	credit(collector, uint64(args.Amount))
	emitFeeCollected(payer, collector, uint64(args.Amount))
	return nil
}

// -----------------------------------------------------------------------------
// Role management (owner-only)
// -----------------------------------------------------------------------------

func AddMinter(payload *string) *string {
	cfg := loadConfig()
	requireOwner(cfg)
	args := unwrap[AccountArgs](payload, "account args")
	minters(cfg).Add(args.AccountID)
	return nil
}

func RemoveMinter(payload *string) *string {
	cfg := loadConfig()
	requireOwner(cfg)
	args := unwrap[AccountArgs](payload, "account args")
	minters(cfg).Remove(args.AccountID)
	return nil
}

func AddFeeCollector(payload *string) *string {
	cfg := loadConfig()
	requireOwner(cfg)
	args := unwrap[AccountArgs](payload, "account args")
	feeCollectors(cfg).Add(args.AccountID)
	return nil
}

func RemoveFeeCollector(payload *string) *string {
	cfg := loadConfig()
	requireOwner(cfg)
	args := unwrap[AccountArgs](payload, "account args")
	feeCollectors(cfg).Remove(args.AccountID)
	return nil
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

func FtBalanceOf(payload *string) *string {
	args := unwrap[AccountArgs](payload, "account args")
	return sdk.Strptr(sdk.ToJSON(sdk.U64(balanceOf(args.AccountID)), "balance"))
}

func FtTotalSupply(payload *string) *string {
	return sdk.Strptr(sdk.ToJSON(sdk.U64(totalSupply()), "total supply"))
}

func FtMetadata(payload *string) *string {
	return sdk.Strptr(sdk.ToJSON(loadMetadata(), "token metadata"))
}

func IsMinter(payload *string) *string {
	cfg := loadConfig()
	args := unwrap[AccountArgs](payload, "account args")
	return sdk.Strptr(sdk.ToJSON(minters(cfg).Contains(args.AccountID), "is minter"))
}

func IsFeeCollector(payload *string) *string {
	cfg := loadConfig()
	args := unwrap[AccountArgs](payload, "account args")
	return sdk.Strptr(sdk.ToJSON(feeCollectors(cfg).Contains(args.AccountID), "is fee collector"))
}

// Methods maps wire method names onto handlers; the simulator registers this
// table and the wasm exports mirror it one to one.
func Methods() map[string]sdk.MethodFunc {
	return map[string]sdk.MethodFunc{
		"new":                  New,
		"mint":                 Mint,
		"burn":                 Burn,
		"ft_transfer":          FtTransfer,
		"ft_collect_fee":       FtCollectFee,
		"add_minter":           AddMinter,
		"remove_minter":        RemoveMinter,
		"add_fee_collector":    AddFeeCollector,
		"remove_fee_collector": RemoveFeeCollector,
		"ft_balance_of":        FtBalanceOf,
		"ft_total_supply":      FtTotalSupply,
		"ft_metadata":          FtMetadata,
		"is_minter":            IsMinter,
		"is_fee_collector":     IsFeeCollector,
	}
}

func minters(cfg *Config) roleset.Set {
	return roleset.New(minterRole, cfg.Owner)
}

func feeCollectors(cfg *Config) roleset.Set {
	return roleset.New(feeCollectorRole, cfg.Owner)
}

func requireOwner(cfg *Config) {
	if sdk.PredecessorAccountID() != cfg.Owner {
		sdk.Revert("this operation is restricted to the contract owner", sdk.ErrUnauthorized)
	}
}

// unwrap guards against an empty payload before handing off to FromJSON.
func unwrap[T any](payload *string, objectType string) *T {
	if payload == nil || *payload == "" {
		sdk.Revert(objectType+" payload is missing", sdk.ErrInvalidArgument)
	}
	return sdk.FromJSON[T](*payload, objectType)
}
