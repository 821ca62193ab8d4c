// Command arreplay checks an overlay asset directory and replays scripted
// tracking sessions against it without a camera.
//
// Usage:
//
//	arreplay check ./assets
//	arreplay replay ./assets session.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "arreplay:", err)
		os.Exit(1)
	}
}
