// Package roleset provides the membership sets that gate privileged contract
// operations (minters, fee collectors, metadata admins). The contract owner
// is an implicit member of every set and can never be removed.
package roleset

import "github.com/egortsaryk9/artfans-near-contracts/sdk"

// Set is a named role backed by contract kv storage. Each member sits under
// its own key so membership checks stay O(1) no matter how many accounts
// hold the role.
type Set struct {
	name  string
	owner sdk.Address
}

// New binds a role set to its storage prefix and the owning account.
func New(name string, owner sdk.Address) Set {
	return Set{name: name, owner: owner}
}

func (s Set) memberKey(addr sdk.Address) string {
	return "role:" + s.name + ":" + addr.String()
}

// Contains reports membership, with the owner bypassing the stored set.
func (s Set) Contains(addr sdk.Address) bool {
	if addr == s.owner {
		return true
	}
	return sdk.StateGetObject(s.memberKey(addr)) != nil
}

// Add registers an account; registering a present member (the owner
// included) fails with already_exists.
func (s Set) Add(addr sdk.Address) {
	if !addr.IsValid() {
		sdk.Revert("malformed account id: "+addr.String(), sdk.ErrInvalidArgument)
	}
	if s.Contains(addr) {
		sdk.Revert("the account is already registered as "+s.name, sdk.ErrAlreadyExists)
	}
	sdk.StateSetObject(s.memberKey(addr), "1")
	emitRoleGranted(s.name, addr)
}

// Remove drops an account from the set. Removing the owner is always
// rejected since its membership is implicit, and removing an account that
// never held the role fails with not_found.
func (s Set) Remove(addr sdk.Address) {
	if addr == s.owner {
		sdk.Revert("the owner cannot be removed from "+s.name, sdk.ErrInvalidArgument)
	}
	if sdk.StateGetObject(s.memberKey(addr)) == nil {
		sdk.Revert("the account is not registered as "+s.name, sdk.ErrNotFound)
	}
	sdk.StateDeleteObject(s.memberKey(addr))
	emitRoleRevoked(s.name, addr)
}

// Require reverts with unauthorized unless the account holds the role.
func (s Set) Require(addr sdk.Address) {
	if !s.Contains(addr) {
		sdk.Revert("this operation is restricted to "+s.name, sdk.ErrUnauthorized)
	}
}
