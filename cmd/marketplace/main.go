////////////////////////////////////////////////////////////////////////////////
// Artfans Marketplace: native-currency purchases of activity tokens and nfts
////////////////////////////////////////////////////////////////////////////////

package main

import (
	_ "github.com/egortsaryk9/artfans-near-contracts/marketplace"
)

func main() {}
