// Package nftregistry is the non-fungible token registry behind the
// marketplace's nft purchases. Token ids are caller supplied, minting is
// role-gated and tokens missing their own metadata fall back to a
// collection-wide default.
package nftregistry

import (
	"github.com/egortsaryk9/artfans-near-contracts/roleset"
	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

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
	if args.DefaultTokenMetadata != nil {
		saveDefaultTokenMetadata(args.DefaultTokenMetadata)
	}
	return sdk.Strptr("initialized")
}

// NftMint registers a new token under a caller-supplied id. Restricted to
// the minter role; a taken id fails with already_exists. A mint without
// metadata stamps the collection default onto the token.
func NftMint(payload *string) *string {
	cfg := loadConfig()
	minters(cfg).Require(sdk.PredecessorAccountID())
	args := unwrap[MintArgs](payload, "mint args")
	if args.TokenID == "" {
		sdk.Revert("token id must not be empty", sdk.ErrInvalidArgument)
	}
	if !args.ReceiverID.IsValid() {
		sdk.Revert("malformed receiver account id", sdk.ErrInvalidArgument)
	}
	if loadToken(args.TokenID) != nil {
		sdk.Revert("token "+args.TokenID+" already exists", sdk.ErrAlreadyExists)
	}
	meta := args.Metadata
	if meta == nil {
		meta = loadDefaultTokenMetadata()
	}
	tok := &Token{TokenID: args.TokenID, OwnerID: args.ReceiverID, Metadata: meta}
	saveToken(tok)
	addOwnerToken(args.ReceiverID, args.TokenID)
	bumpTotalSupply()
	emitMint(args.TokenID, args.ReceiverID)
	return sdk.Strptr(sdk.ToJSON(tok, "token"))
}

// NftTransfer moves a token to the receiver. Only the current token owner
// may transfer it.
func NftTransfer(payload *string) *string {
	loadConfig() // init guard
	args := unwrap[TransferArgs](payload, "transfer args")
	if !args.ReceiverID.IsValid() {
		sdk.Revert("malformed receiver account id", sdk.ErrInvalidArgument)
	}
	tok := loadToken(args.TokenID)
	if tok == nil {
		sdk.Revert("token "+args.TokenID+" is not found", sdk.ErrNotFound)
	}
	sender := sdk.PredecessorAccountID()
	if tok.OwnerID != sender {
		sdk.Revert("only the token owner can transfer it", sdk.ErrUnauthorized)
	}
	if tok.OwnerID == args.ReceiverID {
		sdk.Revert("the token already belongs to "+args.ReceiverID.String(), sdk.ErrInvalidArgument)
	}
	removeOwnerToken(tok.OwnerID, tok.TokenID)
	tok.OwnerID = args.ReceiverID
	saveToken(tok)
	addOwnerToken(args.ReceiverID, tok.TokenID)
	emitTransfer(tok.TokenID, sender, args.ReceiverID)
	return nil
}

// SetTokenMetadata overwrites one token's metadata. Restricted to the
// metadata admin role.
func SetTokenMetadata(payload *string) *string {
	cfg := loadConfig()
	metadataAdmins(cfg).Require(sdk.PredecessorAccountID())
	args := unwrap[SetTokenMetadataArgs](payload, "token metadata args")
	tok := loadToken(args.TokenID)
	if tok == nil {
		sdk.Revert("token "+args.TokenID+" is not found", sdk.ErrNotFound)
	}
	meta := args.Metadata
	tok.Metadata = &meta
	saveToken(tok)
	return nil
}

// SetDefaultTokenMetadata replaces the default stamped onto future mints.
// Already minted tokens keep whatever they were minted with.
func SetDefaultTokenMetadata(payload *string) *string {
	cfg := loadConfig()
	metadataAdmins(cfg).Require(sdk.PredecessorAccountID())
	args := unwrap[SetDefaultTokenMetadataArgs](payload, "default token metadata args")
	saveDefaultTokenMetadata(&args.Metadata)
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

func AddTokenMetadataAdmin(payload *string) *string {
	cfg := loadConfig()
	requireOwner(cfg)
	args := unwrap[AccountArgs](payload, "account args")
	metadataAdmins(cfg).Add(args.AccountID)
	return nil
}

func RemoveTokenMetadataAdmin(payload *string) *string {
	cfg := loadConfig()
	requireOwner(cfg)
	args := unwrap[AccountArgs](payload, "account args")
	metadataAdmins(cfg).Remove(args.AccountID)
	return nil
}

// -----------------------------------------------------------------------------
// Views
// -----------------------------------------------------------------------------

func NftToken(payload *string) *string {
	args := unwrap[TokenArgs](payload, "token args")
	tok := loadToken(args.TokenID)
	if tok == nil {
		return sdk.Strptr("null")
	}
	return sdk.Strptr(sdk.ToJSON(tok, "token"))
}

func NftTotalSupply(payload *string) *string {
	return sdk.Strptr(sdk.ToJSON(sdk.U64(totalSupply()), "total supply"))
}

// NftTokensForOwner pages through one account's tokens in mint order.
func NftTokensForOwner(payload *string) *string {
	args := unwrap[TokensForOwnerArgs](payload, "tokens for owner args")
	ids := ownerTokens(args.AccountID)
	out := make([]*Token, 0, len(ids))
	from := uint64(args.FromIndex)
	limit := uint64(args.Limit)
	for i := from; i < uint64(len(ids)) && uint64(len(out)) < limit; i++ {
		out = append(out, loadToken(ids[i]))
	}
	return sdk.Strptr(sdk.ToJSON(out, "token list"))
}

func NftMetadata(payload *string) *string {
	return sdk.Strptr(sdk.ToJSON(loadMetadata(), "contract metadata"))
}

func IsMinter(payload *string) *string {
	cfg := loadConfig()
	args := unwrap[AccountArgs](payload, "account args")
	return sdk.Strptr(sdk.ToJSON(minters(cfg).Contains(args.AccountID), "is minter"))
}

func IsTokenMetadataAdmin(payload *string) *string {
	cfg := loadConfig()
	args := unwrap[AccountArgs](payload, "account args")
	return sdk.Strptr(sdk.ToJSON(metadataAdmins(cfg).Contains(args.AccountID), "is token metadata admin"))
}

func Methods() map[string]sdk.MethodFunc {
	return map[string]sdk.MethodFunc{
		"new":                         New,
		"nft_mint":                    NftMint,
		"nft_transfer":                NftTransfer,
		"set_token_metadata":          SetTokenMetadata,
		"set_default_token_metadata":  SetDefaultTokenMetadata,
		"add_minter":                  AddMinter,
		"remove_minter":               RemoveMinter,
		"add_token_metadata_admin":    AddTokenMetadataAdmin,
		"remove_token_metadata_admin": RemoveTokenMetadataAdmin,
		"nft_token":                   NftToken,
		"nft_total_supply":            NftTotalSupply,
		"nft_tokens_for_owner":        NftTokensForOwner,
		"nft_metadata":                NftMetadata,
		"is_minter":                   IsMinter,
		"is_token_metadata_admin":     IsTokenMetadataAdmin,
	}
}

func minters(cfg *Config) roleset.Set {
	return roleset.New(minterRole, cfg.Owner)
}

func metadataAdmins(cfg *Config) roleset.Set {
	return roleset.New(metadataAdminRole, cfg.Owner)
}

func requireOwner(cfg *Config) {
	if sdk.PredecessorAccountID() != cfg.Owner {
		sdk.Revert("this operation is restricted to the contract owner", sdk.ErrUnauthorized)
	}
}

func unwrap[T any](payload *string, objectType string) *T {
	if payload == nil || *payload == "" {
		sdk.Revert(objectType+" payload is missing", sdk.ErrInvalidArgument)
	}
	return sdk.FromJSON[T](*payload, objectType)
}
