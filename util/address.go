// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/viacoin/viautil/chaincfg"
	"github.com/viacoin/viautil/util/base58"
	"github.com/viacoin/viautil/util/bech32"
	"github.com/viacoin/viautil/util/chainhash"
)

var (
	// ErrUnknownAddressType describes an error where an address can not
	// decoded as a specific address type due to the string encoding
	// beginning with an identifier byte unknown to any standard or
	// registered (via chaincfg.Register) network.
	ErrUnknownAddressType = errors.New("unknown address type")

	// ErrAddressNetworkMismatch describes an error where an address is
	// well formed but belongs to a network other than the one it was
	// decoded for.
	ErrAddressNetworkMismatch = errors.New("address is for the wrong network")
)

const (
	// witnessV0PubKeyHashLen is the length of a version 0 witness public
	// key hash program.
	witnessV0PubKeyHashLen = chainhash.Hash160Size

	// witnessV0ScriptHashLen is the length of a version 0 witness script
	// hash program.
	witnessV0ScriptHashLen = chainhash.HashSize
)

// Address is an interface type for any type of destination a transaction
// output may spend to. This includes pay-to-pubkey-hash (P2PKH),
// pay-to-script-hash (P2SH) and the version 0 witness programs (P2WPKH and
// P2WSH). Address is designed to be generic enough that other kinds of
// addresses may be added in the future without changing the decoding and
// encoding API.
type Address interface {
	// String returns the string encoding of the transaction output
	// destination.
	//
	// Please note that String differs subtly from EncodeAddress: String
	// will return the value as a string without any conversion, while
	// EncodeAddress may convert destination types (for example,
	// converting pubkeys to P2PKH addresses) before encoding as a
	// payment address string.
	String() string

	// EncodeAddress returns the string encoding of the payment address
	// associated with the Address value. See the comment on String
	// for how this method differs from String.
	EncodeAddress() string

	// ScriptAddress returns the raw bytes of the address to be used
	// when inserting the address into a txout's script.
	ScriptAddress() []byte

	// IsForNet returns whether or not the address is associated with the
	// passed network.
	IsForNet(*chaincfg.Params) bool
}

// DecodeAddress decodes the string encoding of an address and returns
// the Address if addr is a valid encoding for a known address type.
//
// The network the address is associated with is extracted if possible.
// Addresses that are well formed but belong to another network fail with
// ErrAddressNetworkMismatch.
func DecodeAddress(addr string, params *chaincfg.Params) (Address, error) {
	// Bech32 encoded segwit addresses are a human-readable part (hrp), a
	// '1' separator and a checksummed data part. Only an address that
	// decodes as bech32 is treated as segwit, so a Base58 address which
	// happens to contain the hrp followed by '1' still decodes as Base58.
	hrp, _, bech32Err := bech32.Decode(addr)
	if bech32Err == nil {
		if hrp != params.Bech32HRPSegwit {
			return nil, errors.Wrapf(ErrAddressNetworkMismatch,
				"address prefix %q, expected %q", hrp, params.Bech32HRPSegwit)
		}
		return decodeSegWitAddress(addr, params)
	}

	decoded, netID, err := base58.CheckDecode(addr)
	if err != nil {
		// Neither encoding fits. An address under this network's hrp,
		// written all lower or all upper case, reports why it isn't
		// valid bech32.
		oneIndex := strings.LastIndexByte(addr, '1')
		if oneIndex > 0 {
			prefix := addr[:oneIndex]
			netHRP := params.Bech32HRPSegwit
			if prefix == netHRP || prefix == strings.ToUpper(netHRP) {
				return nil, bech32Err
			}
		}
		return nil, err
	}
	if len(decoded) != chainhash.Hash160Size {
		return nil, errors.Wrapf(ErrUnknownAddressType,
			"decoded address is of unknown size %d", len(decoded))
	}

	switch netID {
	case params.PubKeyHashAddrID:
		return newAddressPubKeyHash(decoded, netID)
	case params.ScriptHashAddrID:
		return newAddressScriptHashFromHash(decoded, netID)
	default:
		return nil, errors.Wrapf(ErrAddressNetworkMismatch,
			"version byte %#02x is not known to network %s", netID, params.Name)
	}
}

// decodeSegWitAddress decodes a segwit address for the network params and
// returns the matching witness address type.
func decodeSegWitAddress(addr string, params *chaincfg.Params) (Address, error) {
	version, program, err := bech32.DecodeSegWitAddress(params.Bech32HRPSegwit, addr)
	if err != nil {
		return nil, err
	}

	switch len(program) {
	case witnessV0PubKeyHashLen:
		return newAddressWitnessPubKeyHash(params.Bech32HRPSegwit, version, program)
	case witnessV0ScriptHashLen:
		return newAddressWitnessScriptHash(params.Bech32HRPSegwit, version, program)
	default:
		return nil, errors.Wrapf(ErrUnknownAddressType,
			"witness program of %d bytes", len(program))
	}
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (P2PKH)
// transaction.
type AddressPubKeyHash struct {
	hash  [chainhash.Hash160Size]byte
	netID byte
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash. pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte, params *chaincfg.Params) (*AddressPubKeyHash, error) {
	return newAddressPubKeyHash(pkHash, params.PubKeyHashAddrID)
}

// NewAddressPubKeyHashFromPublicKey returns a new AddressPubKeyHash for the
// hash160 of the serialized public key.
func NewAddressPubKeyHashFromPublicKey(serializedPubKey []byte, params *chaincfg.Params) (*AddressPubKeyHash, error) {
	return NewAddressPubKeyHash(Hash160(serializedPubKey), params)
}

// newAddressPubKeyHash is the internal API to create a pubkey hash address
// with a known leading identifier byte for a network, rather than looking
// it up through its parameters. This is useful when creating a new address
// structure from a string encoding where the identifer byte is already
// known.
func newAddressPubKeyHash(pkHash []byte, netID byte) (*AddressPubKeyHash, error) {
	// Check for a valid pubkey hash length.
	if len(pkHash) != chainhash.Hash160Size {
		return nil, errors.Errorf("pkHash must be %d bytes", chainhash.Hash160Size)
	}

	addr := &AddressPubKeyHash{netID: netID}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// EncodeAddress returns the string encoding of a pay-to-pubkey-hash
// address. Part of the Address interface.
func (a *AddressPubKeyHash) EncodeAddress() string {
	return base58.CheckEncode(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a pubkey hash. Part of the Address interface.
func (a *AddressPubKeyHash) ScriptAddress() []byte {
	return a.hash[:]
}

// IsForNet returns whether or not the pay-to-pubkey-hash address is associated
// with the passed network.
func (a *AddressPubKeyHash) IsForNet(params *chaincfg.Params) bool {
	return a.netID == params.PubKeyHashAddrID
}

// String returns a human-readable string for the pay-to-pubkey-hash address.
// This is equivalent to calling EncodeAddress, but is provided so the type can
// be used as a fmt.Stringer.
func (a *AddressPubKeyHash) String() string {
	return a.EncodeAddress()
}

// Hash160 returns the underlying array of the pubkey hash. This can be useful
// when an array is more appropiate than a slice (for example, when used as map
// keys).
func (a *AddressPubKeyHash) Hash160() *[chainhash.Hash160Size]byte {
	return &a.hash
}

// AddressScriptHash is an Address for a pay-to-script-hash (P2SH)
// transaction.
type AddressScriptHash struct {
	hash  [chainhash.Hash160Size]byte
	netID byte
}

// NewAddressScriptHash returns a new AddressScriptHash.
func NewAddressScriptHash(serializedScript []byte, params *chaincfg.Params) (*AddressScriptHash, error) {
	scriptHash := Hash160(serializedScript)
	return newAddressScriptHashFromHash(scriptHash, params.ScriptHashAddrID)
}

// NewAddressScriptHashFromHash returns a new AddressScriptHash. scriptHash
// must be 20 bytes.
func NewAddressScriptHashFromHash(scriptHash []byte, params *chaincfg.Params) (*AddressScriptHash, error) {
	return newAddressScriptHashFromHash(scriptHash, params.ScriptHashAddrID)
}

// newAddressScriptHashFromHash is the internal API to create a script hash
// address with a known leading identifier byte for a network, rather than
// looking it up through its parameters. This is useful when creating a new
// address structure from a string encoding where the identifer byte is already
// known.
func newAddressScriptHashFromHash(scriptHash []byte, netID byte) (*AddressScriptHash, error) {
	// Check for a valid script hash length.
	if len(scriptHash) != chainhash.Hash160Size {
		return nil, errors.Errorf("scriptHash must be %d bytes", chainhash.Hash160Size)
	}

	addr := &AddressScriptHash{netID: netID}
	copy(addr.hash[:], scriptHash)
	return addr, nil
}

// EncodeAddress returns the string encoding of a pay-to-script-hash
// address. Part of the Address interface.
func (a *AddressScriptHash) EncodeAddress() string {
	return base58.CheckEncode(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to a script hash. Part of the Address interface.
func (a *AddressScriptHash) ScriptAddress() []byte {
	return a.hash[:]
}

// IsForNet returns whether or not the pay-to-script-hash address is associated
// with the passed network.
func (a *AddressScriptHash) IsForNet(params *chaincfg.Params) bool {
	return a.netID == params.ScriptHashAddrID
}

// String returns a human-readable string for the pay-to-script-hash address.
// This is equivalent to calling EncodeAddress, but is provided so the type can
// be used as a fmt.Stringer.
func (a *AddressScriptHash) String() string {
	return a.EncodeAddress()
}

// Hash160 returns the underlying array of the script hash. This can be useful
// when an array is more appropiate than a slice (for example, when used as map
// keys).
func (a *AddressScriptHash) Hash160() *[chainhash.Hash160Size]byte {
	return &a.hash
}

// AddressWitnessPubKeyHash is an Address for a pay-to-witness-pubkey-hash
// (P2WPKH) output.
type AddressWitnessPubKeyHash struct {
	hrp            string
	witnessVersion byte
	witnessProgram [witnessV0PubKeyHashLen]byte
}

// NewAddressWitnessPubKeyHash returns a new AddressWitnessPubKeyHash.
func NewAddressWitnessPubKeyHash(witnessProg []byte, params *chaincfg.Params) (*AddressWitnessPubKeyHash, error) {
	return newAddressWitnessPubKeyHash(params.Bech32HRPSegwit, 0x00, witnessProg)
}

func newAddressWitnessPubKeyHash(hrp string, witnessVersion byte, witnessProg []byte) (*AddressWitnessPubKeyHash, error) {
	if witnessVersion != 0x00 {
		return nil, errors.Wrapf(bech32.ErrUnsupportedWitnessVersion, "version %d", witnessVersion)
	}
	if len(witnessProg) != witnessV0PubKeyHashLen {
		return nil, errors.Wrapf(bech32.ErrInvalidProgramLength,
			"witness program for P2WPKH must be %d bytes, got %d", witnessV0PubKeyHashLen, len(witnessProg))
	}

	addr := &AddressWitnessPubKeyHash{
		hrp:            strings.ToLower(hrp),
		witnessVersion: witnessVersion,
	}
	copy(addr.witnessProgram[:], witnessProg)
	return addr, nil
}

// EncodeAddress returns the bech32 string encoding of an
// AddressWitnessPubKeyHash. Part of the Address interface.
func (a *AddressWitnessPubKeyHash) EncodeAddress() string {
	str, err := bech32.EncodeSegWitAddress(a.hrp, a.witnessVersion, a.witnessProgram[:])
	if err != nil {
		return ""
	}
	return str
}

// ScriptAddress returns the witness program for this address. Part of the
// Address interface.
func (a *AddressWitnessPubKeyHash) ScriptAddress() []byte {
	return a.witnessProgram[:]
}

// IsForNet returns whether or not the AddressWitnessPubKeyHash is associated
// with the passed network.
func (a *AddressWitnessPubKeyHash) IsForNet(params *chaincfg.Params) bool {
	return a.hrp == params.Bech32HRPSegwit
}

// String returns a human-readable string for the AddressWitnessPubKeyHash.
// This is equivalent to calling EncodeAddress, but is provided so the type
// can be used as a fmt.Stringer.
func (a *AddressWitnessPubKeyHash) String() string {
	return a.EncodeAddress()
}

// Hrp returns the human-readable part of the bech32 encoded
// AddressWitnessPubKeyHash.
func (a *AddressWitnessPubKeyHash) Hrp() string {
	return a.hrp
}

// WitnessVersion returns the witness version of the AddressWitnessPubKeyHash.
func (a *AddressWitnessPubKeyHash) WitnessVersion() byte {
	return a.witnessVersion
}

// WitnessProgram returns the witness program of the AddressWitnessPubKeyHash.
func (a *AddressWitnessPubKeyHash) WitnessProgram() []byte {
	return a.witnessProgram[:]
}

// Hash160 returns the witness program of the AddressWitnessPubKeyHash as a
// byte array.
func (a *AddressWitnessPubKeyHash) Hash160() *[witnessV0PubKeyHashLen]byte {
	return &a.witnessProgram
}

// AddressWitnessScriptHash is an Address for a pay-to-witness-script-hash
// (P2WSH) output.
type AddressWitnessScriptHash struct {
	hrp            string
	witnessVersion byte
	witnessProgram [witnessV0ScriptHashLen]byte
}

// NewAddressWitnessScriptHash returns a new AddressWitnessScriptHash.
func NewAddressWitnessScriptHash(witnessProg []byte, params *chaincfg.Params) (*AddressWitnessScriptHash, error) {
	return newAddressWitnessScriptHash(params.Bech32HRPSegwit, 0x00, witnessProg)
}

// NewAddressWitnessScriptHashFromScript returns a new AddressWitnessScriptHash
// paying to the sha256 of the witness script.
func NewAddressWitnessScriptHashFromScript(witnessScript []byte, params *chaincfg.Params) (*AddressWitnessScriptHash, error) {
	return NewAddressWitnessScriptHash(chainhash.HashB(witnessScript), params)
}

func newAddressWitnessScriptHash(hrp string, witnessVersion byte, witnessProg []byte) (*AddressWitnessScriptHash, error) {
	if witnessVersion != 0x00 {
		return nil, errors.Wrapf(bech32.ErrUnsupportedWitnessVersion, "version %d", witnessVersion)
	}
	if len(witnessProg) != witnessV0ScriptHashLen {
		return nil, errors.Wrapf(bech32.ErrInvalidProgramLength,
			"witness program for P2WSH must be %d bytes, got %d", witnessV0ScriptHashLen, len(witnessProg))
	}

	addr := &AddressWitnessScriptHash{
		hrp:            strings.ToLower(hrp),
		witnessVersion: witnessVersion,
	}
	copy(addr.witnessProgram[:], witnessProg)
	return addr, nil
}

// EncodeAddress returns the bech32 string encoding of an
// AddressWitnessScriptHash. Part of the Address interface.
func (a *AddressWitnessScriptHash) EncodeAddress() string {
	str, err := bech32.EncodeSegWitAddress(a.hrp, a.witnessVersion, a.witnessProgram[:])
	if err != nil {
		return ""
	}
	return str
}

// ScriptAddress returns the witness program for this address. Part of the
// Address interface.
func (a *AddressWitnessScriptHash) ScriptAddress() []byte {
	return a.witnessProgram[:]
}

// IsForNet returns whether or not the AddressWitnessScriptHash is associated
// with the passed network.
func (a *AddressWitnessScriptHash) IsForNet(params *chaincfg.Params) bool {
	return a.hrp == params.Bech32HRPSegwit
}

// String returns a human-readable string for the AddressWitnessScriptHash.
// This is equivalent to calling EncodeAddress, but is provided so the type
// can be used as a fmt.Stringer.
func (a *AddressWitnessScriptHash) String() string {
	return a.EncodeAddress()
}

// Hrp returns the human-readable part of the bech32 encoded
// AddressWitnessScriptHash.
func (a *AddressWitnessScriptHash) Hrp() string {
	return a.hrp
}

// WitnessVersion returns the witness version of the AddressWitnessScriptHash.
func (a *AddressWitnessScriptHash) WitnessVersion() byte {
	return a.witnessVersion
}

// WitnessProgram returns the witness program of the AddressWitnessScriptHash.
func (a *AddressWitnessScriptHash) WitnessProgram() []byte {
	return a.witnessProgram[:]
}
