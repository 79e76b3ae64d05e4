// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/viacoin/viautil/util/chainhash"
	"github.com/viacoin/viautil/util/uint256"
	"github.com/viacoin/viautil/wire"
)

// These variables are the proof-of-work limit parameters for each default
// network.
var (
	// mainPowLimit is the highest proof of work value a block can have
	// for the main network. It is the value 2^224 - 1.
	mainPowLimit = uint256.MustFromHex("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	// regressionPowLimit is the highest proof of work value a block can
	// have for the regression test network. It is the value 2^255 - 1.
	regressionPowLimit = uint256.MustFromHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	// testNetPowLimit is the highest proof of work value a block can have
	// for the test network. It is the value 2^224 - 1.
	testNetPowLimit = uint256.MustFromHex("00000000ffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
)

// Params defines a network by its parameters. These parameters may be used
// to differentiate networks as well as addresses and keys for one network
// from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit uint256.Uint256

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// Human-readable part for Bech32 encoded segwit addresses.
	Bech32HRPSegwit string

	// Address encoding magics
	PubKeyHashAddrID byte // First byte of a P2PKH address
	ScriptHashAddrID byte // First byte of a P2SH address
	PrivateKeyID     byte // First byte of a WIF private key

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID [4]byte
	HDPublicKeyID  [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name: "mainnet",
	Net:  wire.MainNet,

	// Chain parameters
	GenesisBlock: &genesisBlock,
	GenesisHash:  genesisHash,
	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1d00ffff,

	// Human-readable part for Bech32 encoded segwit addresses
	Bech32HRPSegwit: "via",

	// Address encoding magics
	PubKeyHashAddrID: 0x47, // starts with V
	ScriptHashAddrID: 0x21, // starts with E
	PrivateKeyID:     0xc7, // starts with 7 (uncompressed) or W (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
	HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType: 14,
}

// RegressionNetParams defines the network parameters for the regression test
// network. Not to be confused with the test network, this network is
// sometimes simply called "regtest".
var RegressionNetParams = Params{
	Name: "regtest",
	Net:  wire.RegTest,

	// Chain parameters
	GenesisBlock: &regTestGenesisBlock,
	GenesisHash:  regTestGenesisHash,
	PowLimit:     regressionPowLimit,
	PowLimitBits: 0x207fffff,

	// Human-readable part for Bech32 encoded segwit addresses
	Bech32HRPSegwit: "bcrt",

	// Address encoding magics
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType: 1,
}

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name: "testnet",
	Net:  wire.TestNet,

	// Chain parameters
	GenesisBlock: &testNetGenesisBlock,
	GenesisHash:  testNetGenesisHash,
	PowLimit:     testNetPowLimit,
	PowLimitBits: 0x1d00ffff,

	// Human-readable part for Bech32 encoded segwit addresses
	Bech32HRPSegwit: "tvia",

	// Address encoding magics
	PubKeyHashAddrID: 0x6f, // starts with m or n
	ScriptHashAddrID: 0xc4, // starts with 2
	PrivateKeyID:     0xef, // starts with 9 (uncompressed) or c (compressed)

	// BIP32 hierarchical deterministic extended key magics
	HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
	HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType: 1,
}

var (
	// ErrDuplicateNet describes an error where the parameters for a network
	// could not be set due to the network already being a standard network
	// or previously-registered into this package.
	ErrDuplicateNet = errors.New("duplicate network")

	// ErrUnknownHDKeyID describes an error where the provided id which
	// is intended to identify the network for a hierarchical deterministic
	// private extended key is not registered.
	ErrUnknownHDKeyID = errors.New("unknown hd private extended key bytes")

	// ErrUnknownNet describes an error where no registered network goes by
	// the requested name.
	ErrUnknownNet = errors.New("unknown network")
)

// The registry is written by Register and read by the lookup functions, which
// may run on any goroutine.
var (
	registryLock   sync.RWMutex
	registeredNets = make(map[wire.BitcoinNet]*Params)
	namedNets      = make(map[string]*Params)
	hdPrivToPubMap = make(map[[4]byte][]byte)
)

// Register registers the network parameters for a network. This may error
// with ErrDuplicateNet if the network is already registered (either due to a
// previous Register call, or the network being one of the default networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible. Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	registryLock.Lock()
	defer registryLock.Unlock()

	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	if _, ok := namedNets[params.Name]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = params
	namedNets[params.Name] = params
	hdPrivToPubMap[params.HDPrivateKeyID] = params.HDPublicKeyID[:]

	return nil
}

// mustRegister performs the same function as Register except it panics if there
// is an error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// ParamsByName returns the registered network parameters going by name.
func ParamsByName(name string) (*Params, error) {
	registryLock.RLock()
	defer registryLock.RUnlock()

	params, ok := namedNets[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNet, "network %q", name)
	}
	return params, nil
}

// HDPrivateKeyToPublicKeyID accepts a private hierarchical deterministic
// extended key id and returns the associated public key id. When the provided
// id is not registered, the ErrUnknownHDKeyID error will be returned.
func HDPrivateKeyToPublicKeyID(id []byte) ([]byte, error) {
	if len(id) != 4 {
		return nil, ErrUnknownHDKeyID
	}

	var key [4]byte
	copy(key[:], id)

	registryLock.RLock()
	defer registryLock.RUnlock()

	pubBytes, ok := hdPrivToPubMap[key]
	if !ok {
		return nil, ErrUnknownHDKeyID
	}

	return pubBytes, nil
}

// IsForNet returns whether the given magic identifies the network the
// parameters describe.
func (p *Params) IsForNet(net wire.BitcoinNet) bool {
	return p.Net == net
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash. It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		// Ordinarily I don't like panics in library code since it
		// can take applications down without them having a chance to
		// recover which is extremely annoying, however an exception is
		// being made in this case because the only way this can panic
		// is if there is an error in the hard-coded hashes. Thus it
		// will only ever potentially panic on init and therefore is
		// 100% predictable.
		panic(err)
	}
	return hash
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNetParams)
	mustRegister(&RegressionNetParams)
}
