package roleset

import (
	"fmt"

	"github.com/egortsaryk9/artfans-near-contracts/sdk"
)

// emitRoleGranted leaves a short rg line so indexers can track privileged
// accounts without diffing storage.
func emitRoleGranted(role string, addr sdk.Address) {
	sdk.Log(fmt.Sprintf("rg|r:%s|a:%s", role, addr))
}

// emitRoleRevoked mirrors the grant ping for removals.
func emitRoleRevoked(role string, addr sdk.Address) {
	sdk.Log(fmt.Sprintf("rr|r:%s|a:%s", role, addr))
}
