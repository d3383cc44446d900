package sdk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

func TestAddressIsValid(t *testing.T) {
	for _, ok := range []string{"alice.testnet", "a1", "sub.main.near", "with-dash_and_underscore.near"} {
		assert.True(t, sdk.Address(ok).IsValid(), ok)
	}
	for _, bad := range []string{"", "a", "Alice.testnet", ".start", "end.", "dou..ble", "spa ce", "über.near"} {
		assert.False(t, sdk.Address(bad).IsValid(), bad)
	}
}

func TestAddressIsSubAccountOf(t *testing.T) {
	assert.True(t, sdk.Address("ft.artfans.near").IsSubAccountOf("artfans.near"))
	assert.False(t, sdk.Address("artfans.near").IsSubAccountOf("ft.artfans.near"))
	assert.False(t, sdk.Address("notartfans.near").IsSubAccountOf("artfans.near"))
}
