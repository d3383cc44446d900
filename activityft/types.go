package activityft

import "github.com/egortsaryk9/artfans-near-contracts/sdk"

// Config is the persistent contract configuration written once at init.
type Config struct {
	Owner sdk.Address `json:"owner"`
}

// Metadata describes the token for wallets and explorers.
type Metadata struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

type NewArgs struct {
	Owner       sdk.Address `json:"owner"`
	TotalSupply sdk.U64     `json:"total_supply"`
	Metadata    Metadata    `json:"metadata"`
}

type MintArgs struct {
	AccountID sdk.Address `json:"account_id"`
	Amount    sdk.U64     `json:"amount"`
}

type BurnArgs struct {
	AccountID sdk.Address `json:"account_id"`
	Amount    sdk.U64     `json:"amount"`
}

type TransferArgs struct {
	ReceiverID sdk.Address `json:"receiver_id"`
	Amount     sdk.U64     `json:"amount"`
}

type CollectFeeArgs struct {
	Amount sdk.U64 `json:"amount"`
}

// AccountArgs is the shared shape of every call that names one account.
type AccountArgs struct {
	AccountID sdk.Address `json:"account_id"`
}
