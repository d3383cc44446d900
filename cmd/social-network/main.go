////////////////////////////////////////////////////////////////////////////////
// Artfans Social Network: posts, messages, likes, friends and profiles
////////////////////////////////////////////////////////////////////////////////

package main

import (
	_ "github.com/egortsaryk9/artfans-near-contracts/socialnetwork"
)

func main() {}
