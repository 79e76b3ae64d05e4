// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// BitcoinNet represents which network a message belongs to.
type BitcoinNet uint32

// Constants used to indicate the message network. They can also be used to
// seek to the next message when a stream's state is unknown.
const (
	// MainNet represents the main network.
	MainNet BitcoinNet = 0xd9b4bef9

	// TestNet represents the public test network.
	TestNet BitcoinNet = 0x0709110b

	// RegTest represents the regression test network.
	RegTest BitcoinNet = 0xdab5bffa
)

// bnStrings is a map of networks back to their constant names for pretty
// printing.
var bnStrings = map[BitcoinNet]string{
	MainNet: "MainNet",
	TestNet: "TestNet",
	RegTest: "RegTest",
}

// String returns the BitcoinNet in human-readable form.
func (n BitcoinNet) String() string {
	if s, ok := bnStrings[n]; ok {
		return s
	}

	return fmt.Sprintf("Unknown BitcoinNet (%d)", uint32(n))
}
