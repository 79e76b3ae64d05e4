// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"

	"github.com/viacoin/viautil/btcec"
	"github.com/viacoin/viautil/chaincfg"
	"github.com/viacoin/viautil/util"
	"github.com/viacoin/viautil/util/chainhash"
	"github.com/viacoin/viautil/wire"
)

// SigHashType represents hash type bits at the end of a signature.
type SigHashType uint32

// Hash type bits from the end of a signature.
const (
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80
)

// SigHasher computes the digest a signature over input idx of tx commits to.
// subScript is the script code being signed and amount the value of the
// output the input spends.
type SigHasher interface {
	SignatureHash(tx *wire.MsgTx, idx int, subScript []byte, amount int64,
		hashType SigHashType) (*chainhash.Hash, error)
}

// SigHasherFunc is an adapter that allows a plain function to be used as a
// SigHasher.
type SigHasherFunc func(tx *wire.MsgTx, idx int, subScript []byte, amount int64,
	hashType SigHashType) (*chainhash.Hash, error)

// SignatureHash calls f(tx, idx, subScript, amount, hashType).
func (f SigHasherFunc) SignatureHash(tx *wire.MsgTx, idx int, subScript []byte, amount int64,
	hashType SigHashType) (*chainhash.Hash, error) {

	return f(tx, idx, subScript, amount, hashType)
}

// RawTxInSignature returns the DER encoded, low S, ECDSA signature for the
// input idx of the given transaction, with hashType appended to it.
func RawTxInSignature(tx *wire.MsgTx, idx int, subScript []byte, amount int64,
	hashType SigHashType, hasher SigHasher, key *btcec.PrivateKey) ([]byte, error) {

	hash, err := hasher.SignatureHash(tx, idx, subScript, amount, hashType)
	if err != nil {
		return nil, err
	}
	signature, err := key.Sign(hash)
	if err != nil {
		return nil, errors.Errorf("cannot sign tx input: %s", err)
	}

	return append(signature.Serialize(), byte(hashType)), nil
}

// serializePubKey serializes the public key of privKey compressed or not.
func serializePubKey(privKey *btcec.PrivateKey, compress bool) ([]byte, error) {
	pk, err := privKey.PubKey()
	if err != nil {
		return nil, err
	}
	if compress {
		return pk.SerializeCompressed(), nil
	}
	return pk.SerializeUncompressed(), nil
}

// SignatureScript creates an input signature script for tx to spend coins sent
// from a previous output to the owner of privKey. tx must include all
// transaction inputs and outputs, however txin scripts are allowed to be filled
// or empty. The returned script is calculated to be used as the idx'th txin
// sigscript for tx. subscript is the PkScript of the previous output being used
// as the idx'th input. privKey is serialized in either a compressed or
// uncompressed format based on compress. This format must match the same format
// used to generate the payment address, or the script validation will fail.
func SignatureScript(tx *wire.MsgTx, idx int, subscript []byte, hashType SigHashType,
	hasher SigHasher, privKey *btcec.PrivateKey, compress bool) ([]byte, error) {

	sig, err := RawTxInSignature(tx, idx, subscript, 0, hashType, hasher, privKey)
	if err != nil {
		return nil, err
	}
	pkData, err := serializePubKey(privKey, compress)
	if err != nil {
		return nil, err
	}

	return NewScriptBuilder().AddData(sig).AddData(pkData).Script()
}

// WitnessSignature creates an input witness stack for tx to spend coins sent
// from a previous output to the owner of privKey. The witness holds the
// signature followed by the public key. amount is the value of the spent
// output, which the signature commits to.
func WitnessSignature(tx *wire.MsgTx, idx int, amount int64, subscript []byte,
	hashType SigHashType, hasher SigHasher, privKey *btcec.PrivateKey, compress bool) (wire.TxWitness, error) {

	sig, err := RawTxInSignature(tx, idx, subscript, amount, hashType, hasher, privKey)
	if err != nil {
		return nil, err
	}
	pkData, err := serializePubKey(privKey, compress)
	if err != nil {
		return nil, err
	}

	return wire.TxWitness{sig, pkData}, nil
}

// KeyDB is an interface type provided to SignTxOutput, it encapsulates
// any user state required to get the private keys for an address. The
// returned bool tells whether the address was built from the compressed
// public key.
type KeyDB interface {
	GetKey(util.Address) (*btcec.PrivateKey, bool, error)
}

// KeyClosure implements KeyDB with a closure.
type KeyClosure func(util.Address) (*btcec.PrivateKey, bool, error)

// GetKey implements KeyDB by returning the result of calling the closure.
func (kc KeyClosure) GetKey(address util.Address) (*btcec.PrivateKey, bool, error) {
	return kc(address)
}

// ScriptDB is an interface type provided to SignTxOutput, it encapsulates any
// user state required to get the scripts for an pay-to-script-hash or
// pay-to-witness-script-hash address.
type ScriptDB interface {
	GetScript(util.Address) ([]byte, error)
}

// ScriptClosure implements ScriptDB with a closure.
type ScriptClosure func(util.Address) ([]byte, error)

// GetScript implements ScriptDB by returning the result of calling the closure.
func (sc ScriptClosure) GetScript(address util.Address) ([]byte, error) {
	return sc(address)
}

// signer carries the state shared by the signing helpers of one input.
type signer struct {
	params   *chaincfg.Params
	tx       *wire.MsgTx
	idx      int
	amount   int64
	hashType SigHashType
	hasher   SigHasher
	kdb      KeyDB
	sdb      ScriptDB
}

func (s *signer) getKey(address util.Address) (*btcec.PrivateKey, bool, error) {
	key, compressed, err := s.kdb.GetKey(address)
	if err != nil {
		return nil, false, errors.Wrapf(scriptError(ErrKeyMissing, err.Error()),
			"no key for %s", address)
	}
	return key, compressed, nil
}

func (s *signer) getScript(address util.Address) ([]byte, error) {
	script, err := s.sdb.GetScript(address)
	if err != nil {
		return nil, errors.Wrapf(scriptError(ErrKeyMissing, err.Error()),
			"no script for %s", address)
	}
	return script, nil
}

// signPubKeyHash returns the signature script spending a pay-to-pubkey-hash
// script.
func (s *signer) signPubKeyHash(script []byte) ([]byte, error) {
	_, address, err := ExtractPkScriptAddr(script, s.params)
	if err != nil {
		return nil, err
	}
	key, compressed, err := s.getKey(address)
	if err != nil {
		return nil, err
	}
	return SignatureScript(s.tx, s.idx, script, s.hashType, s.hasher, key, compressed)
}

// signWitnessPubKeyHash returns the witness spending a version 0
// pay-to-witness-pubkey-hash script.
func (s *signer) signWitnessPubKeyHash(script []byte) (wire.TxWitness, error) {
	_, address, err := ExtractPkScriptAddr(script, s.params)
	if err != nil {
		return nil, err
	}
	key, compressed, err := s.getKey(address)
	if err != nil {
		return nil, err
	}
	if !compressed {
		return nil, scriptError(ErrUnsupportedScriptType,
			"witness public key hash outputs need a compressed public key")
	}

	// The script code of a P2WPKH input is the P2PKH script of the same
	// hash.
	subScript, err := payToPubKeyHashScript(extractWitnessV0PubKeyHash(script))
	if err != nil {
		return nil, err
	}
	return WitnessSignature(s.tx, s.idx, s.amount, subScript, s.hashType, s.hasher, key, true)
}

// signWitnessScriptHash returns the witness spending a version 0
// pay-to-witness-script-hash script. Only witness scripts paying to a single
// public key hash are supported.
func (s *signer) signWitnessScriptHash(script []byte) (wire.TxWitness, error) {
	_, address, err := ExtractPkScriptAddr(script, s.params)
	if err != nil {
		return nil, err
	}
	witnessScript, err := s.getScript(address)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(witnessScriptHash(witnessScript), extractWitnessV0ScriptHash(script)) {
		return nil, scriptError(ErrUnsupportedScriptType,
			"witness script does not match the witness program")
	}
	if !IsPayToPubKeyHash(witnessScript) {
		str := fmt.Sprintf("can't sign witness script of class %s", GetScriptClass(witnessScript))
		return nil, scriptError(ErrUnsupportedScriptType, str)
	}

	_, keyAddress, err := ExtractPkScriptAddr(witnessScript, s.params)
	if err != nil {
		return nil, err
	}
	key, compressed, err := s.getKey(keyAddress)
	if err != nil {
		return nil, err
	}
	witness, err := WitnessSignature(s.tx, s.idx, s.amount, witnessScript, s.hashType, s.hasher, key, compressed)
	if err != nil {
		return nil, err
	}
	return append(witness, witnessScript), nil
}

// signScriptHash returns the signature script and witness spending a
// pay-to-script-hash script. The redeem script may itself be a P2PKH, P2WPKH
// or P2WSH script.
func (s *signer) signScriptHash(script []byte) ([]byte, wire.TxWitness, error) {
	_, address, err := ExtractPkScriptAddr(script, s.params)
	if err != nil {
		return nil, nil, err
	}
	redeemScript, err := s.getScript(address)
	if err != nil {
		return nil, nil, err
	}
	if !bytes.Equal(util.Hash160(redeemScript), extractScriptHash(script)) {
		return nil, nil, scriptError(ErrUnsupportedScriptType,
			"redeem script does not match the script hash")
	}

	var sigScript []byte
	var witness wire.TxWitness
	class := GetScriptClass(redeemScript)
	switch class {
	case PubKeyHashTy:
		sigScript, err = s.signPubKeyHash(redeemScript)
	case WitnessV0PubKeyHashTy:
		witness, err = s.signWitnessPubKeyHash(redeemScript)
	case WitnessV0ScriptHashTy:
		witness, err = s.signWitnessScriptHash(redeemScript)
	default:
		str := fmt.Sprintf("can't sign redeem script of class %s", class)
		return nil, nil, scriptError(ErrUnsupportedScriptType, str)
	}
	if err != nil {
		return nil, nil, err
	}

	// Append the p2sh script as the last push in the script.
	builder := NewScriptBuilder()
	builder.AddOps(sigScript)
	builder.AddData(redeemScript)
	sigScript, err = builder.Script()
	if err != nil {
		return nil, nil, err
	}
	return sigScript, witness, nil
}

// SignTxOutput signs output idx of the given tx to resolve the script given in
// pkScript with a signature type of hashType. Any keys required will be
// looked up by calling kdb with the address the script pays to. Any
// pay-to-script-hash and pay-to-witness-script-hash scripts will be similarly
// looked up by calling sdb. amount is the value of the output being spent.
//
// The returned signature script and witness are meant for tx.TxIn[idx]; tx is
// left untouched. Either of them is nil when the output type doesn't use it.
func SignTxOutput(params *chaincfg.Params, tx *wire.MsgTx, idx int, pkScript []byte,
	amount int64, hashType SigHashType, hasher SigHasher, kdb KeyDB, sdb ScriptDB) (
	[]byte, wire.TxWitness, error) {

	if idx < 0 || idx >= len(tx.TxIn) {
		str := fmt.Sprintf("transaction input index %d is out of range - max %d",
			idx, len(tx.TxIn)-1)
		return nil, nil, scriptError(ErrInvalidIndex, str)
	}

	s := &signer{
		params:   params,
		tx:       tx,
		idx:      idx,
		amount:   amount,
		hashType: hashType,
		hasher:   hasher,
		kdb:      kdb,
		sdb:      sdb,
	}

	class := GetScriptClass(pkScript)
	log.Debugf("Signing input %d spending a %s output", idx, class)
	switch class {
	case PubKeyHashTy:
		sigScript, err := s.signPubKeyHash(pkScript)
		return sigScript, nil, err
	case WitnessV0PubKeyHashTy:
		witness, err := s.signWitnessPubKeyHash(pkScript)
		return nil, witness, err
	case WitnessV0ScriptHashTy:
		witness, err := s.signWitnessScriptHash(pkScript)
		return nil, witness, err
	case ScriptHashTy:
		return s.signScriptHash(pkScript)
	default:
		return nil, nil, scriptError(ErrUnsupportedScriptType, "can't sign unknown transactions")
	}
}
