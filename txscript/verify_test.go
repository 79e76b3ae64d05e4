// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"

	"github.com/viacoin/viautil/util/chainhash"
	"github.com/viacoin/viautil/wire"
)

// spendingTx returns a transaction spending outpoint #idx of prevHash for
// every passed signature script.
func spendingTx(prevHash *chainhash.Hash, sigScripts ...[]byte) *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	for i, sigScript := range sigScripts {
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(prevHash, uint32(i)), sigScript, nil))
	}
	tx.AddTxOut(wire.NewTxOut(1000, mustParseShortForm("HASH160 DATA_20 "+
		"0xda1745e9b549bd0bfa1a569971c77eba30cd5a4b EQUAL")))
	return tx
}

func TestVerifyTransaction(t *testing.T) {
	t.Parallel()

	prevHash := chainhash.DoubleHashH([]byte("previous transaction"))
	pkScript := mustParseShortForm("DUP HASH160 DATA_20 " +
		"0x4aa298c262edd9f1351204562e62e5476c4f06a9 EQUALVERIFY CHECKSIG")
	sigScript := mustParseShortForm("DATA_2 0x0102 DATA_1 0x03")

	var seen []int
	recorder := VerifierFunc(func(tx *wire.MsgTx, idx int, prevOut *wire.TxOut, flags ScriptFlags) error {
		if flags != StandardVerifyFlags {
			return errors.Errorf("unexpected flags %x", flags)
		}
		if !bytes.Equal(prevOut.PkScript, pkScript) || prevOut.Value != 5000 {
			return errors.Errorf("unexpected previous output %v", prevOut)
		}
		seen = append(seen, idx)
		return nil
	})

	tx := spendingTx(&prevHash, sigScript, sigScript)
	err := VerifyTransaction(recorder, tx, NewCannedPrevOutputFetcher(pkScript, 5000),
		StandardVerifyFlags)
	if err != nil {
		t.Fatalf("VerifyTransaction: unexpected error: %v", err)
	}
	if len(seen) != 2 || seen[0] != 0 || seen[1] != 1 {
		t.Fatalf("verifier saw inputs %v, want [0 1]", seen)
	}
}

func TestVerifyTransactionErrors(t *testing.T) {
	t.Parallel()

	prevHash := chainhash.DoubleHashH([]byte("previous transaction"))
	pkScript := mustParseShortForm("HASH160 DATA_20 " +
		"0xda1745e9b549bd0bfa1a569971c77eba30cd5a4b EQUAL")
	accept := VerifierFunc(func(*wire.MsgTx, int, *wire.TxOut, ScriptFlags) error {
		return nil
	})
	reject := VerifierFunc(func(*wire.MsgTx, int, *wire.TxOut, ScriptFlags) error {
		return errors.New("signature mismatch")
	})

	tests := []struct {
		name     string
		verifier Verifier
		tx       *wire.MsgTx
		fetcher  PrevOutputFetcher
		code     ErrorCode
	}{
		{
			name:     "no verifier",
			verifier: nil,
			tx:       spendingTx(&prevHash, []byte{Op1}),
			fetcher:  NewCannedPrevOutputFetcher(pkScript, 1),
			code:     ErrVerifierMissing,
		},
		{
			name:     "unknown previous output",
			verifier: accept,
			tx:       spendingTx(&prevHash, []byte{Op1}),
			fetcher:  NewMultiPrevOutFetcher(nil),
			code:     ErrPrevOutMissing,
		},
		{
			name:     "malformed signature script",
			verifier: accept,
			tx:       spendingTx(&prevHash, []byte{OpData2, 0x01}),
			fetcher:  NewCannedPrevOutputFetcher(pkScript, 1),
			code:     ErrMalformedPush,
		},
		{
			name:     "malformed public key script",
			verifier: accept,
			tx:       spendingTx(&prevHash, []byte{Op1}),
			fetcher:  NewCannedPrevOutputFetcher([]byte{OpPushData1}, 1),
			code:     ErrMalformedPush,
		},
		{
			name:     "oversized signature script",
			verifier: accept,
			tx:       spendingTx(&prevHash, make([]byte, MaxScriptSize+1)),
			fetcher:  NewCannedPrevOutputFetcher(pkScript, 1),
			code:     ErrScriptTooBig,
		},
		{
			name:     "verifier rejects",
			verifier: reject,
			tx:       spendingTx(&prevHash, []byte{Op1}),
			fetcher:  NewCannedPrevOutputFetcher(pkScript, 1),
			code:     ErrVerifyFailed,
		},
	}

	for _, test := range tests {
		err := VerifyTransaction(test.verifier, test.tx, test.fetcher, StandardVerifyFlags)
		if !IsErrorCode(err, test.code) {
			t.Errorf("%s: unexpected error - got %v, want %v", test.name,
				err, test.code)
		}
	}
}

// TestVerifyCoinbase ensures coinbase transactions are accepted without
// consulting the verifier or the fetcher.
func TestVerifyCoinbase(t *testing.T) {
	t.Parallel()

	tx := wire.NewMsgTx(1)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex),
		[]byte{OpData2, 0x01}, nil))
	reject := VerifierFunc(func(*wire.MsgTx, int, *wire.TxOut, ScriptFlags) error {
		return errors.New("should not be called")
	})
	if err := VerifyTransaction(reject, tx, NewMultiPrevOutFetcher(nil), 0); err != nil {
		t.Fatalf("VerifyTransaction: unexpected error for coinbase: %v", err)
	}
}

func TestMultiPrevOutFetcher(t *testing.T) {
	t.Parallel()

	op1 := wire.OutPoint{Hash: chainhash.HashH([]byte{1}), Index: 0}
	op2 := wire.OutPoint{Hash: chainhash.HashH([]byte{2}), Index: 1}
	out1 := wire.NewTxOut(1, []byte{Op1})
	out2 := wire.NewTxOut(2, []byte{Op2})

	source := map[wire.OutPoint]*wire.TxOut{op1: out1}
	fetcher := NewMultiPrevOutFetcher(source)

	// Changes to the source map are not seen by the fetcher.
	source[op2] = out2
	if fetcher.FetchPrevOutput(op2) != nil {
		t.Fatalf("fetcher sees outputs added to the source map")
	}
	if fetcher.FetchPrevOutput(op1) != out1 {
		t.Fatalf("fetcher lost output %s", op1)
	}

	fetcher.AddPrevOut(op2, out2)
	if fetcher.FetchPrevOutput(op2) != out2 {
		t.Fatalf("AddPrevOut did not register output %s", op2)
	}
}

func TestScriptFlagsHasFlag(t *testing.T) {
	t.Parallel()

	if !StandardVerifyFlags.HasFlag(ScriptBip16 | ScriptVerifyWitness) {
		t.Errorf("standard flags are missing bip16 or witness")
	}
	if ScriptBip16.HasFlag(ScriptBip16 | ScriptVerifyWitness) {
		t.Errorf("HasFlag reported a combination only partly set")
	}
	if !ScriptFlags(0).HasFlag(0) {
		t.Errorf("every flag set contains the empty set")
	}
}
