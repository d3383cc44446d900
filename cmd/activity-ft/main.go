////////////////////////////////////////////////////////////////////////////////
// Artfans Activity FT: the fungible activity token of the artfans network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	_ "github.com/egortsaryk9/artfans-near-contracts/activityft"
)

func main() {}
