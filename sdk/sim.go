//go:build !wasm

package sdk

import (
	"fmt"
	"strconv"
)

// The off-chain build runs contracts against an in-memory chain simulator
// instead of the wasm host. It reproduces the runtime semantics the
// contracts depend on: serialized execution, per-receipt state rollback on
// revert, asynchronous promise receipts drained in FIFO order, and callbacks
// that observe the settled promise outcome. Tests register contract method
// tables, fund accounts and drive calls through CallContract.

// CallResult reports the outcome of a top-level contract call after the
// whole receipt cascade (promises and callbacks included) has been drained.
type CallResult struct {
	Success bool
	Ret     string
	ErrMsg  string
	ErrSym  string
}

type frame struct {
	contract    Address
	predecessor Address
	signer      Address
	deposit     uint64
	isCallback  bool
	promiseOK   bool
	issued      []*receipt
}

type receipt struct {
	contract Address
	method   string
	args     string
	deposit  uint64
	from     Address // pays the attached deposit, refunded on failure
	signer   Address
	callback *receipt
	// callback-only fields
	isCallback bool
	promiseOK  bool
}

type chain struct {
	contracts   map[Address]map[string]MethodFunc
	state       map[Address]map[string]string
	balances    map[Address]uint64
	timestamp   uint64
	nextPromise uint64
	byPromise   map[uint64]*receipt
	frames      []*frame
	queue       []*receipt
	logs        []string
}

var sim = newChain()

func newChain() *chain {
	return &chain{
		contracts: map[Address]map[string]MethodFunc{},
		state:     map[Address]map[string]string{},
		balances:  map[Address]uint64{},
		timestamp: 1_700_000_000,
		byPromise: map[uint64]*receipt{},
	}
}

// ResetChain wipes the simulated chain so sequential tests never leak state
// into each other.
func ResetChain() {
	sim = newChain()
}

// RegisterContract deploys a method table at the given account.
func RegisterContract(addr Address, methods map[string]MethodFunc) {
	sim.contracts[addr] = methods
}

// FundAccount credits native currency to an account, the simulator's stand-in
// for genesis balances and faucets.
func FundAccount(addr Address, amount uint64) {
	sim.balances[addr] += amount
}

// NativeBalance reads an account's native currency balance.
func NativeBalance(addr Address) uint64 {
	return sim.balances[addr]
}

// SetBlockTimestamp pins the simulated block time (unix seconds).
func SetBlockTimestamp(ts uint64) {
	sim.timestamp = ts
}

// StateGet peeks at raw contract storage, mirroring the explorer-style
// inspection the chain offers.
func StateGet(contract Address, key string) *string {
	m, ok := sim.state[contract]
	if !ok {
		return nil
	}
	v, ok := m[key]
	if !ok {
		return nil
	}
	return &v
}

// ChainLogs returns every console line emitted since the last reset.
func ChainLogs() []string {
	return sim.logs
}

// CallContract executes a signed call and drains all receipts it spawns
// before returning, so asynchronous effects are settled when it comes back.
func CallContract(caller Address, contract Address, method string, payload string, deposit uint64) CallResult {
	top := &receipt{
		contract: contract,
		method:   method,
		args:     payload,
		deposit:  deposit,
		from:     caller,
		signer:   caller,
	}
	result := sim.exec(top)
	sim.drain()
	return result
}

// ViewCall invokes a read-only method with no caller identity attached.
func ViewCall(contract Address, method string, payload string) CallResult {
	return CallContract("", contract, method, payload, 0)
}

func (c *chain) drain() {
	for len(c.queue) > 0 {
		r := c.queue[0]
		c.queue = c.queue[1:]
		c.exec(r)
	}
}

// exec runs one receipt with snapshot semantics: a revert restores the
// contract's storage and returns the attached deposit to the sender, exactly
// like a failed receipt on chain. The receipt's callback (if any) is enqueued
// afterwards carrying the outcome.
func (c *chain) exec(r *receipt) (result CallResult) {
	snapshot := c.snapshotState(r.contract)
	depositTaken := false
	if r.deposit > 0 {
		if c.balances[r.from] < r.deposit {
			return c.settle(r, CallResult{ErrMsg: "insufficient balance for attached deposit", ErrSym: ErrInsufficientBalance})
		}
		c.balances[r.from] -= r.deposit
		c.balances[r.contract] += r.deposit
		depositTaken = true
	}

	f := &frame{
		contract:    r.contract,
		predecessor: r.from,
		signer:      r.signer,
		deposit:     r.deposit,
		isCallback:  r.isCallback,
		promiseOK:   r.promiseOK,
	}
	c.frames = append(c.frames, f)

	defer func() {
		c.frames = c.frames[:len(c.frames)-1]
		if rec := recover(); rec != nil {
			re, ok := rec.(*revertError)
			if !ok {
				panic(rec)
			}
			c.state[r.contract] = snapshot
			if depositTaken {
				c.balances[r.contract] -= r.deposit
				c.balances[r.from] += r.deposit
			}
			result = c.settle(r, CallResult{ErrMsg: re.msg, ErrSym: re.symbol})
			return
		}
		// receipts issued by a successful method run; a reverted one
		// never spawns them
		c.queue = append(c.queue, f.issued...)
		result = c.settle(r, result)
	}()

	methods, ok := c.contracts[r.contract]
	if !ok {
		Revert(fmt.Sprintf("contract %s is not deployed", r.contract), ErrNotFound)
	}
	fn, ok := methods[r.method]
	if !ok {
		Revert(fmt.Sprintf("method %s is not found on %s", r.method, r.contract), ErrNotFound)
	}
	ret := fn(&r.args)
	if ret != nil {
		result.Ret = *ret
	}
	result.Success = true
	return result
}

// settle enqueues the receipt's callback with the final outcome attached.
func (c *chain) settle(r *receipt, result CallResult) CallResult {
	if r.callback != nil {
		r.callback.promiseOK = result.Success
		c.queue = append(c.queue, r.callback)
	}
	return result
}

func (c *chain) snapshotState(contract Address) map[string]string {
	cp := make(map[string]string, len(c.state[contract]))
	for k, v := range c.state[contract] {
		cp[k] = v
	}
	return cp
}

func (c *chain) currentFrame() *frame {
	if len(c.frames) == 0 {
		panic("sdk call outside of contract execution")
	}
	return c.frames[len(c.frames)-1]
}

// --- host function implementations backing sdk.go ---

func hostLog(s *string) {
	line := fmt.Sprintf("[%s] %s", sim.currentFrame().contract, *s)
	fmt.Println("SDK log:", line)
	sim.logs = append(sim.logs, line)
}

func hostAbort(msg *string) {
	// the panic raised by sdk.Abort does the unwinding off chain
}

func hostRevert(msg *string, symbol *string) {
	// as above, sdk.Revert panics right after this returns
}

func hostStateSet(key *string, value *string) {
	f := sim.currentFrame()
	m, ok := sim.state[f.contract]
	if !ok {
		m = map[string]string{}
		sim.state[f.contract] = m
	}
	m[*key] = *value
}

func hostStateGet(key *string) *string {
	f := sim.currentFrame()
	v, ok := sim.state[f.contract][*key]
	if !ok {
		return nil
	}
	return &v
}

func hostStateDelete(key *string) {
	f := sim.currentFrame()
	delete(sim.state[f.contract], *key)
}

func hostEnvKey(key *string) *string {
	f := sim.currentFrame()
	var v string
	switch *key {
	case "current_account_id":
		v = f.contract.String()
	case "predecessor_account_id":
		v = f.predecessor.String()
	case "signer_account_id":
		v = f.signer.String()
	case "attached_deposit":
		v = strconv.FormatUint(f.deposit, 10)
	case "block_timestamp":
		v = strconv.FormatUint(sim.timestamp, 10)
	default:
		return nil
	}
	return &v
}

func hostTransfer(to *string, amount *string) {
	f := sim.currentFrame()
	amt, err := strconv.ParseUint(*amount, 10, 64)
	if err != nil {
		Abort("malformed transfer amount: " + *amount)
	}
	if sim.balances[f.contract] < amt {
		Abort(fmt.Sprintf("transfer of %d exceeds balance of %s", amt, f.contract))
	}
	sim.balances[f.contract] -= amt
	sim.balances[Address(*to)] += amt
}

func hostPromiseCall(contract *string, method *string, args *string, deposit *string) *string {
	f := sim.currentFrame()
	dep, err := strconv.ParseUint(*deposit, 10, 64)
	if err != nil {
		Abort("malformed promise deposit: " + *deposit)
	}
	sim.nextPromise++
	id := sim.nextPromise
	r := &receipt{
		contract: Address(*contract),
		method:   *method,
		args:     *args,
		deposit:  dep,
		from:     f.contract,
		signer:   f.signer,
	}
	f.issued = append(f.issued, r)
	sim.byPromise[id] = r
	out := strconv.FormatUint(id, 10)
	return &out
}

func hostPromiseThen(promiseID *string, method *string, args *string) {
	f := sim.currentFrame()
	id, err := strconv.ParseUint(*promiseID, 10, 64)
	if err != nil {
		Abort("malformed promise id: " + *promiseID)
	}
	r, ok := sim.byPromise[id]
	if !ok {
		Abort("promise.then on unknown promise " + *promiseID)
	}
	r.callback = &receipt{
		contract:   f.contract,
		method:     *method,
		args:       *args,
		from:       f.contract, // callbacks arrive as private self-calls
		signer:     f.signer,
		isCallback: true,
	}
}

func hostPromiseSuccess() *string {
	f := sim.currentFrame()
	if !f.isCallback {
		Abort("promise result is only available inside a callback")
	}
	v := "0"
	if f.promiseOK {
		v = "1"
	}
	return &v
}
