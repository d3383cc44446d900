package nftregistry

import (
	"strconv"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

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

func loadMetadata() *ContractMetadata {
	ptr := sdk.StateGetObject(metadataKey)
	if ptr == nil {
		sdk.Abort("contract metadata is not set")
	}
	return sdk.FromJSON[ContractMetadata](*ptr, "contract metadata")
}

func saveMetadata(meta *ContractMetadata) {
	sdk.StateSetObject(metadataKey, sdk.ToJSON(meta, "contract metadata"))
}

func loadDefaultTokenMetadata() *TokenMetadata {
	ptr := sdk.StateGetObject(defaultMetaKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return sdk.FromJSON[TokenMetadata](*ptr, "default token metadata")
}

func saveDefaultTokenMetadata(meta *TokenMetadata) {
	sdk.StateSetObject(defaultMetaKey, sdk.ToJSON(meta, "default token metadata"))
}

func loadToken(tokenID string) *Token {
	ptr := sdk.StateGetObject(tokenKey(tokenID))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return sdk.FromJSON[Token](*ptr, "token")
}

func saveToken(tok *Token) {
	sdk.StateSetObject(tokenKey(tok.TokenID), sdk.ToJSON(tok, "token"))
}

func totalSupply() uint64 {
	ptr := sdk.StateGetObject(totalSupplyKey)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func bumpTotalSupply() {
	sdk.StateSetObject(totalSupplyKey, strconv.FormatUint(totalSupply()+1, 10))
}

func ownerTokens(addr sdk.Address) []string {
	ptr := sdk.StateGetObject(ownerTokensKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	return *sdk.FromJSON[[]string](*ptr, "owner token list")
}

func saveOwnerTokens(addr sdk.Address, ids []string) {
	if len(ids) == 0 {
		sdk.StateDeleteObject(ownerTokensKey(addr))
		return
	}
	sdk.StateSetObject(ownerTokensKey(addr), sdk.ToJSON(ids, "owner token list"))
}

func addOwnerToken(addr sdk.Address, tokenID string) {
	saveOwnerTokens(addr, append(ownerTokens(addr), tokenID))
}

func removeOwnerToken(addr sdk.Address, tokenID string) {
	ids := ownerTokens(addr)
	for i, id := range ids {
		if id == tokenID {
			saveOwnerTokens(addr, append(ids[:i], ids[i+1:]...))
			return
		}
	}
}
