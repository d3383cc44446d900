//go:build wasm

package sdk

// Host bindings for the on-chain build. Signatures follow the runtime ABI:
// strings cross the boundary as pointers, numbers ride as decimal strings.

//go:wasmimport env console.log
func hostLog(s *string)

//go:wasmimport env abort
func hostAbort(msg *string)

//go:wasmimport env revert
func hostRevert(msg *string, symbol *string)

//go:wasmimport env state.set
func hostStateSet(key *string, value *string)

//go:wasmimport env state.get
func hostStateGet(key *string) *string

//go:wasmimport env state.delete
func hostStateDelete(key *string)

//go:wasmimport env env.get
func hostEnvKey(key *string) *string

//go:wasmimport env native.transfer
func hostTransfer(to *string, amount *string)

//go:wasmimport env promise.call
func hostPromiseCall(contract *string, method *string, args *string, deposit *string) *string

//go:wasmimport env promise.then
func hostPromiseThen(promiseID *string, method *string, args *string)

//go:wasmimport env promise.result
func hostPromiseSuccess() *string
