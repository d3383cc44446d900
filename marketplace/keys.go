package marketplace

import "strconv"

const (
	configKey       = "cfg"
	tokenCounterKey = "nft_counter"
)

func pendingKey(promiseID uint64) string {
	return "pending:" + strconv.FormatUint(promiseID, 10)
}
