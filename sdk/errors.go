package sdk

// Error symbols attached to reverts. Contracts pick the symbol that matches
// the failure class so callers and indexers can branch without parsing text.
const (
	ErrUnauthorized        = "unauthorized"
	ErrNotFound            = "not_found"
	ErrAlreadyExists       = "already_exists"
	ErrInsufficientBalance = "insufficient_balance"
	ErrInvalidArgument     = "invalid_argument"
	ErrAlreadyInitialized  = "already_initialized"
)

// revertError carries a revert through the Go panic machinery. On chain the
// host traps before this is ever observed; the simulator recovers it and
// turns it into a failed call result.
type revertError struct {
	msg    string
	symbol string
}

func (e *revertError) Error() string {
	return e.symbol + ": " + e.msg
}
