package nftregistry

import "github.com/egortsaryk9/artfans-near-contracts/sdk"

type Config struct {
	Owner sdk.Address `json:"owner"`
}

// ContractMetadata describes the whole collection.
type ContractMetadata struct {
	Name    string  `json:"name"`
	Symbol  string  `json:"symbol"`
	Icon    *string `json:"icon,omitempty"`
	BaseURI *string `json:"base_uri,omitempty"`
}

// TokenMetadata describes a single token. Every field is optional so a
// partial default can be stamped onto minted tokens.
type TokenMetadata struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Media       *string `json:"media,omitempty"`
	Extra       *string `json:"extra,omitempty"`
}

// Token is the persistent record and the wire shape of every token view.
type Token struct {
	TokenID  string         `json:"token_id"`
	OwnerID  sdk.Address    `json:"owner_id"`
	Metadata *TokenMetadata `json:"metadata,omitempty"`
}

type NewArgs struct {
	Owner                sdk.Address      `json:"owner"`
	Metadata             ContractMetadata `json:"metadata"`
	DefaultTokenMetadata *TokenMetadata   `json:"default_token_metadata,omitempty"`
}

type MintArgs struct {
	TokenID    string         `json:"token_id"`
	ReceiverID sdk.Address    `json:"receiver_id"`
	Metadata   *TokenMetadata `json:"metadata,omitempty"`
}

type TransferArgs struct {
	ReceiverID sdk.Address `json:"receiver_id"`
	TokenID    string      `json:"token_id"`
}

type TokenArgs struct {
	TokenID string `json:"token_id"`
}

type SetTokenMetadataArgs struct {
	TokenID  string        `json:"token_id"`
	Metadata TokenMetadata `json:"metadata"`
}

type SetDefaultTokenMetadataArgs struct {
	Metadata TokenMetadata `json:"metadata"`
}

type TokensForOwnerArgs struct {
	AccountID sdk.Address `json:"account_id"`
	FromIndex sdk.U64     `json:"from_index"`
	Limit     sdk.U64     `json:"limit"`
}

type AccountArgs struct {
	AccountID sdk.Address `json:"account_id"`
}
