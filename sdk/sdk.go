// Package sdk wraps the host functions of the contract runtime behind a
// typed Go surface. Contracts never talk to the host directly; everything
// funnels through here so the off-chain build can swap in the simulator.
package sdk

import "strconv"

// MethodFunc is the uniform entry point shape of every exported contract
// method: one JSON payload in, one JSON (or plain text) payload out.
type MethodFunc func(payload *string) *string

// Log writes a message to the runtime console so we can trace contract steps.
// Example payload: sdk.Log("minting token 42")
func Log(msg string) {
	hostLog(&msg)
}

// Abort stops execution immediately and surfaces the message to the chain,
// reverting every state change of the current receipt. Use for states that
// should be impossible rather than for caller mistakes.
func Abort(msg string) {
	hostAbort(&msg)
	// the host traps above; the panic drives the off-chain simulator
	panic(&revertError{msg: msg, symbol: "abort"})
}

// Revert throws a named error back to the caller with a short machine
// readable symbol, like revert in solidity.
// Example payload: sdk.Revert("post is liked already", sdk.ErrAlreadyExists)
func Revert(msg string, symbol string) {
	hostRevert(&msg, &symbol)
	panic(&revertError{msg: msg, symbol: symbol})
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	hostStateSet(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return hostStateGet(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	hostStateDelete(&key)
}

// CurrentAccountID returns the account the contract itself is deployed to.
func CurrentAccountID() Address {
	return Address(envString("current_account_id"))
}

// PredecessorAccountID returns the account that invoked the current method,
// which for a cross-contract call is the calling contract, not the user.
func PredecessorAccountID() Address {
	return Address(envString("predecessor_account_id"))
}

// SignerAccountID returns the account that signed the original transaction,
// no matter how many contract hops sit in between.
func SignerAccountID() Address {
	return Address(envString("signer_account_id"))
}

// AttachedDeposit returns the native currency attached to the current call,
// in the smallest unit.
func AttachedDeposit() uint64 {
	return envUint("attached_deposit")
}

// BlockTimestamp returns the current block time as unix seconds.
func BlockTimestamp() uint64 {
	return envUint("block_timestamp")
}

// Transfer sends native currency from the contract account to the target.
// There is no failure callback for plain transfers on this runtime, so only
// move funds the contract is known to hold.
func Transfer(to Address, amount uint64) {
	toStr := to.String()
	amt := strconv.FormatUint(amount, 10)
	hostTransfer(&toStr, &amt)
}

// PromiseCall issues an asynchronous call into another contract and returns
// the promise id. The current method keeps executing; the remote result is
// only observable from a callback attached via PromiseThen. State written
// before the call is committed regardless of the remote outcome.
func PromiseCall(contract Address, method string, argsJSON string, deposit uint64) uint64 {
	contractStr := contract.String()
	dep := strconv.FormatUint(deposit, 10)
	idPtr := hostPromiseCall(&contractStr, &method, &argsJSON, &dep)
	if idPtr == nil {
		Abort("promise.call returned no id")
	}
	id, err := strconv.ParseUint(*idPtr, 10, 64)
	if err != nil {
		Abort("promise.call returned malformed id: " + *idPtr)
	}
	return id
}

// PromiseThen schedules a callback on the current contract once the given
// promise settles, success or failure. The callback runs as a private call
// with the contract itself as predecessor.
func PromiseThen(promiseID uint64, method string, argsJSON string) {
	id := strconv.FormatUint(promiseID, 10)
	hostPromiseThen(&id, &method, &argsJSON)
}

// PromiseSuccess reports whether the awaited promise succeeded. Only valid
// inside a callback scheduled with PromiseThen.
func PromiseSuccess() bool {
	ptr := hostPromiseSuccess()
	return ptr != nil && *ptr == "1"
}

// RequirePrivate guards callback methods: nobody but the contract itself may
// invoke them directly.
func RequirePrivate() {
	if PredecessorAccountID() != CurrentAccountID() {
		Revert("this method is private", ErrUnauthorized)
	}
}

func envString(key string) string {
	ptr := hostEnvKey(&key)
	if ptr == nil {
		Abort("missing env key: " + key)
	}
	return *ptr
}

func envUint(key string) uint64 {
	raw := envString(key)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		Abort("malformed env value for " + key + ": " + raw)
	}
	return v
}
