////////////////////////////////////////////////////////////////////////////////
// Artfans NFT: the non-fungible token registry of the artfans network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	_ "github.com/egortsaryk9/artfans-near-contracts/nftregistry"
)

func main() {}
