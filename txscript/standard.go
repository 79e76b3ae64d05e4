// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/pkg/errors"

	"github.com/viacoin/viautil/chaincfg"
	"github.com/viacoin/viautil/infrastructure/logger"
	"github.com/viacoin/viautil/util"
	"github.com/viacoin/viautil/util/chainhash"
)

const (
	// minWitnessProgramLen and maxWitnessProgramLen bound the witness
	// program pushed by a witness output script.
	minWitnessProgramLen = 2
	maxWitnessProgramLen = 40
)

// ScriptClass is an enumeration for the list of standard types of script.
type ScriptClass byte

// Classes of script payment known about in the blockchain.
const (
	NonStandardTy         ScriptClass = iota // None of the recognized forms.
	PubKeyHashTy                             // Pay pubkey hash.
	ScriptHashTy                             // Pay to script hash.
	WitnessV0PubKeyHashTy                    // Pay witness pubkey hash.
	WitnessV0ScriptHashTy                    // Pay to witness script hash.
)

// scriptClassToName houses the human-readable strings which describe each
// script class.
var scriptClassToName = []string{
	NonStandardTy:         "nonstandard",
	PubKeyHashTy:          "pubkeyhash",
	ScriptHashTy:          "scripthash",
	WitnessV0PubKeyHashTy: "witness_v0_keyhash",
	WitnessV0ScriptHashTy: "witness_v0_scripthash",
}

// String implements the Stringer interface by returning the name of
// the enum script class. If the enum is invalid then "Invalid" will be
// returned.
func (t ScriptClass) String() string {
	if int(t) >= len(scriptClassToName) {
		return "Invalid"
	}
	return scriptClassToName[t]
}

// extractPubKeyHash extracts the public key hash from the passed script if it
// is a standard pay-to-pubkey-hash script. It will return nil otherwise.
func extractPubKeyHash(script []byte) []byte {
	// A pay-to-pubkey-hash script is of the form:
	//  OP_DUP OP_HASH160 <20-byte hash> OP_EQUALVERIFY OP_CHECKSIG
	if len(script) == 25 &&
		script[0] == OpDup &&
		script[1] == OpHash160 &&
		script[2] == OpData20 &&
		script[23] == OpEqualVerify &&
		script[24] == OpCheckSig {

		return script[3:23]
	}

	return nil
}

// extractScriptHash extracts the script hash from the passed script if it is a
// standard pay-to-script-hash script. It will return nil otherwise.
func extractScriptHash(script []byte) []byte {
	// A pay-to-script-hash script is of the form:
	//  OP_HASH160 <20-byte scripthash> OP_EQUAL
	if len(script) == 23 &&
		script[0] == OpHash160 &&
		script[1] == OpData20 &&
		script[22] == OpEqual {

		return script[2:22]
	}

	return nil
}

// extractWitnessV0PubKeyHash extracts the witness program from a version 0
// pay-to-witness-pubkey-hash script. It will return nil otherwise.
func extractWitnessV0PubKeyHash(script []byte) []byte {
	// A pay-to-witness-pubkey-hash script is of the form:
	//  OP_0 <20-byte hash>
	if len(script) == 22 &&
		script[0] == Op0 &&
		script[1] == OpData20 {

		return script[2:22]
	}

	return nil
}

// extractWitnessV0ScriptHash extracts the witness program from a version 0
// pay-to-witness-script-hash script. It will return nil otherwise.
func extractWitnessV0ScriptHash(script []byte) []byte {
	// A pay-to-witness-script-hash script is of the form:
	//  OP_0 <32-byte hash>
	if len(script) == 34 &&
		script[0] == Op0 &&
		script[1] == OpData32 {

		return script[2:34]
	}

	return nil
}

// IsPayToPubKeyHash returns true if the script is in the standard
// pay-to-pubkey-hash (P2PKH) format, false otherwise.
func IsPayToPubKeyHash(script []byte) bool {
	return extractPubKeyHash(script) != nil
}

// IsPayToScriptHash returns true if the script is in the standard
// pay-to-script-hash (P2SH) format, false otherwise.
func IsPayToScriptHash(script []byte) bool {
	return extractScriptHash(script) != nil
}

// IsPayToWitnessPubKeyHash returns true if the script is in the standard
// pay-to-witness-pubkey-hash (P2WPKH) format, false otherwise.
func IsPayToWitnessPubKeyHash(script []byte) bool {
	return extractWitnessV0PubKeyHash(script) != nil
}

// IsPayToWitnessScriptHash returns true if the script is in the standard
// pay-to-witness-script-hash (P2WSH) format, false otherwise.
func IsPayToWitnessScriptHash(script []byte) bool {
	return extractWitnessV0ScriptHash(script) != nil
}

// extractWitnessProgramInfo returns the version and program if the passed
// script constitutes a valid witness program. The last return value indicates
// whether or not the script is a valid witness program.
func extractWitnessProgramInfo(script []byte) (int, []byte, bool) {
	// Skip parsing if we know the program is invalid based on size.
	if len(script) < 1+1+minWitnessProgramLen ||
		len(script) > 1+1+maxWitnessProgramLen {

		return 0, nil, false
	}

	// A witness program must be a small integer for the version followed
	// by a single data push of the program, which is a byte slice of
	// length 2 to 40 bytes.
	version := script[0]
	if !isSmallInt(version) {
		return 0, nil, false
	}
	dataLen := int(script[1])
	if script[1] < OpData2 || script[1] > OpData40 || 2+dataLen != len(script) {
		return 0, nil, false
	}

	return asSmallInt(version), script[2:], true
}

// IsWitnessProgram returns true if the passed script is a valid witness
// program which is encoded according to the passed witness program version. A
// witness program must be a small integer (from 0-16), followed by 2-40 bytes
// of pushed data.
func IsWitnessProgram(script []byte) bool {
	_, _, valid := extractWitnessProgramInfo(script)
	return valid
}

// ExtractWitnessProgramInfo attempts to extract the witness program version,
// as well as the witness program itself from the passed script.
func ExtractWitnessProgramInfo(script []byte) (int, []byte, error) {
	version, program, valid := extractWitnessProgramInfo(script)
	if !valid {
		return 0, nil, errors.New("script is not a witness program, " +
			"unable to extract version or witness program")
	}
	return version, program, nil
}

// GetScriptClass returns the class of the script passed.
//
// NonStandardTy will be returned when the script does not parse.
func GetScriptClass(script []byte) ScriptClass {
	class := typeOfScript(script)
	log.Tracef("Script %s classified as %s", logger.NewLogClosure(func() string {
		disasm, _ := DisasmString(script)
		return disasm
	}), class)
	return class
}

// typeOfScript returns the class of the script, matching the templates in
// order of how common they are.
func typeOfScript(script []byte) ScriptClass {
	switch {
	case IsPayToPubKeyHash(script):
		return PubKeyHashTy
	case IsPayToScriptHash(script):
		return ScriptHashTy
	case IsPayToWitnessPubKeyHash(script):
		return WitnessV0PubKeyHashTy
	case IsPayToWitnessScriptHash(script):
		return WitnessV0ScriptHashTy
	}
	return NonStandardTy
}

// payToPubKeyHashScript creates a new script to pay a transaction
// output to a 20-byte pubkey hash. It is expected that the input is a valid
// hash.
func payToPubKeyHashScript(pubKeyHash []byte) ([]byte, error) {
	return NewScriptBuilder().AddOp(OpDup).AddOp(OpHash160).
		AddData(pubKeyHash).AddOp(OpEqualVerify).AddOp(OpCheckSig).
		Script()
}

// payToScriptHashScript creates a new script to pay a transaction output to a
// script hash. It is expected that the input is a valid hash.
func payToScriptHashScript(scriptHash []byte) ([]byte, error) {
	return NewScriptBuilder().AddOp(OpHash160).AddData(scriptHash).
		AddOp(OpEqual).Script()
}

// payToWitnessV0Script creates a new version 0 witness program script paying
// to program, which is a 20-byte pubkey hash or a 32-byte script hash.
func payToWitnessV0Script(program []byte) ([]byte, error) {
	return NewScriptBuilder().AddOp(Op0).AddData(program).Script()
}

// PayToAddrScript creates a new script to pay a transaction output to a the
// specified address.
func PayToAddrScript(addr util.Address) ([]byte, error) {
	const nilAddrErrStr = "unable to generate payment script for nil address"

	switch addr := addr.(type) {
	case *util.AddressPubKeyHash:
		if addr == nil {
			return nil, scriptError(ErrUnsupportedAddress,
				nilAddrErrStr)
		}
		return payToPubKeyHashScript(addr.ScriptAddress())

	case *util.AddressScriptHash:
		if addr == nil {
			return nil, scriptError(ErrUnsupportedAddress,
				nilAddrErrStr)
		}
		return payToScriptHashScript(addr.ScriptAddress())

	case *util.AddressWitnessPubKeyHash:
		if addr == nil {
			return nil, scriptError(ErrUnsupportedAddress,
				nilAddrErrStr)
		}
		return payToWitnessV0Script(addr.ScriptAddress())

	case *util.AddressWitnessScriptHash:
		if addr == nil {
			return nil, scriptError(ErrUnsupportedAddress,
				nilAddrErrStr)
		}
		return payToWitnessV0Script(addr.ScriptAddress())
	}

	str := errors.Errorf("unable to generate payment script for unsupported "+
		"address type %T", addr)
	return nil, scriptError(ErrUnsupportedAddress, str.Error())
}

// ExtractPkScriptAddr returns the type of script and the address it pays to.
// Non-standard scripts yield NonStandardTy and a nil address without error.
func ExtractPkScriptAddr(pkScript []byte, params *chaincfg.Params) (ScriptClass, util.Address, error) {
	if hash := extractPubKeyHash(pkScript); hash != nil {
		addr, err := util.NewAddressPubKeyHash(hash, params)
		return PubKeyHashTy, addr, err
	}

	if hash := extractScriptHash(pkScript); hash != nil {
		addr, err := util.NewAddressScriptHashFromHash(hash, params)
		return ScriptHashTy, addr, err
	}

	if hash := extractWitnessV0PubKeyHash(pkScript); hash != nil {
		addr, err := util.NewAddressWitnessPubKeyHash(hash, params)
		return WitnessV0PubKeyHashTy, addr, err
	}

	if hash := extractWitnessV0ScriptHash(pkScript); hash != nil {
		addr, err := util.NewAddressWitnessScriptHash(hash, params)
		return WitnessV0ScriptHashTy, addr, err
	}

	return NonStandardTy, nil, nil
}

// witnessScriptHash returns the program a P2WSH output commits to for the
// witness script.
func witnessScriptHash(witnessScript []byte) []byte {
	hash := chainhash.HashH(witnessScript)
	return hash[:]
}
