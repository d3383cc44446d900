package marketplace

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

func savePending(promiseID uint64, p *PendingPurchase) {
	sdk.StateSetObject(pendingKey(promiseID), sdk.ToJSON(p, "pending purchase"))
}

// takePending resolves the record: it is read and destroyed in one step so a
// replayed callback finds nothing to act on.
func takePending(promiseID uint64) *PendingPurchase {
	key := pendingKey(promiseID)
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return nil
	}
	sdk.StateDeleteObject(key)
	return sdk.FromJSON[PendingPurchase](*ptr, "pending purchase")
}

// nextTokenID draws the next id from the marketplace-wide counter.
func nextTokenID() string {
	var n uint64
	if ptr := sdk.StateGetObject(tokenCounterKey); ptr != nil && *ptr != "" {
		n, _ = strconv.ParseUint(*ptr, 10, 64)
	}
	n++
	sdk.StateSetObject(tokenCounterKey, strconv.FormatUint(n, 10))
	return "artfans-" + strconv.FormatUint(n, 10)
}
