// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/viacoin/viautil/infrastructure/logger"
	"github.com/viacoin/viautil/wire"
)

// ScriptFlags is a bitmask defining additional operations or tests that will
// be done when executing a script pair.
type ScriptFlags uint32

const (
	// ScriptBip16 defines whether the bip16 threshold has passed and thus
	// pay-to-script hash transactions will be fully validated.
	ScriptBip16 ScriptFlags = 1 << iota

	// ScriptVerifyWitness defines whether or not to verify a transaction
	// output using a witness program template.
	ScriptVerifyWitness

	// ScriptVerifyCheckLockTimeVerify defines whether to verify that
	// a transaction output is spendable based on the locktime.
	// This is BIP0065.
	ScriptVerifyCheckLockTimeVerify

	// ScriptVerifyCheckSequenceVerify defines whether to allow execution
	// pathways of a script to be restricted based on the age of the output
	// being spent. This is BIP0112.
	ScriptVerifyCheckSequenceVerify

	// ScriptVerifyCleanStack defines that the stack must contain only
	// one stack element after evaluation and that the element must be
	// true if interpreted as a boolean. This is rule 6 of BIP0062.
	ScriptVerifyCleanStack

	// ScriptVerifyMinimalData defines that signatures must use the smallest
	// push operator. This is both rules 3 and 4 of BIP0062.
	ScriptVerifyMinimalData

	// ScriptDiscourageUpgradableNops defines whether to verify that
	// NOP1 through NOP10 are reserved for future soft-fork upgrades. This
	// flag must not be used for consensus critical code nor applied to
	// blocks as this flag is only for stricter standard transaction
	// checks. This flag is only applied when the above opcodes are
	// executed.
	ScriptDiscourageUpgradableNops

	// ScriptDiscourageUpgradableWitnessProgram makes witness program with
	// versions 2-16 non-standard.
	ScriptDiscourageUpgradableWitnessProgram
)

// HasFlag returns whether every flag in flag is set.
func (f ScriptFlags) HasFlag(flag ScriptFlags) bool {
	return f&flag == flag
}

// Verifier executes the scripts of one transaction input against the output it
// spends. Implementations live outside this package; it only hands them
// well-formed scripts.
type Verifier interface {
	VerifyInput(tx *wire.MsgTx, idx int, prevOut *wire.TxOut, flags ScriptFlags) error
}

// VerifierFunc is an adapter that allows a plain function to be used as a
// Verifier.
type VerifierFunc func(tx *wire.MsgTx, idx int, prevOut *wire.TxOut, flags ScriptFlags) error

// VerifyInput calls f(tx, idx, prevOut, flags).
func (f VerifierFunc) VerifyInput(tx *wire.MsgTx, idx int, prevOut *wire.TxOut, flags ScriptFlags) error {
	return f(tx, idx, prevOut, flags)
}

// PrevOutputFetcher is an interface used to supply the script verifier with
// the output being spent by each transaction input.
type PrevOutputFetcher interface {
	// FetchPrevOutput attempts to fetch the previous output referenced by
	// the passed outpoint. A nil value will be returned if the passed
	// outpoint doesn't exist.
	FetchPrevOutput(wire.OutPoint) *wire.TxOut
}

// CannedPrevOutputFetcher is an implementation of PrevOutputFetcher that only
// is able to return information for a single previous output.
type CannedPrevOutputFetcher struct {
	pkScript []byte
	amt      int64
}

// NewCannedPrevOutputFetcher returns an instance of a CannedPrevOutputFetcher
// that can only return the TxOut defined by the passed script and amount.
func NewCannedPrevOutputFetcher(script []byte, amt int64) *CannedPrevOutputFetcher {
	return &CannedPrevOutputFetcher{
		pkScript: script,
		amt:      amt,
	}
}

// FetchPrevOutput attempts to fetch the previous output referenced by the
// passed outpoint.
//
// NOTE: This is a part of the PrevOutputFetcher interface.
func (c *CannedPrevOutputFetcher) FetchPrevOutput(wire.OutPoint) *wire.TxOut {
	return &wire.TxOut{
		PkScript: c.pkScript,
		Value:    c.amt,
	}
}

// MultiPrevOutFetcher is a custom implementation of the PrevOutputFetcher
// backed by a key-value map of prevouts to outputs.
type MultiPrevOutFetcher struct {
	prevOuts map[wire.OutPoint]*wire.TxOut
}

// NewMultiPrevOutFetcher returns an instance of a PrevOutputFetcher that's
// backed by an optional map which is used as an input source. The returned
// fetcher copies the map, so later changes to prevOuts are not seen.
func NewMultiPrevOutFetcher(prevOuts map[wire.OutPoint]*wire.TxOut) *MultiPrevOutFetcher {
	m := make(map[wire.OutPoint]*wire.TxOut, len(prevOuts))
	for op, txOut := range prevOuts {
		m[op] = txOut
	}
	return &MultiPrevOutFetcher{
		prevOuts: m,
	}
}

// FetchPrevOutput attempts to fetch the previous output referenced by the
// passed outpoint.
//
// NOTE: This is a part of the PrevOutputFetcher interface.
func (m *MultiPrevOutFetcher) FetchPrevOutput(op wire.OutPoint) *wire.TxOut {
	return m.prevOuts[op]
}

// AddPrevOut adds a new prev out, tx out pair to the backing map.
func (m *MultiPrevOutFetcher) AddPrevOut(op wire.OutPoint, txOut *wire.TxOut) {
	m.prevOuts[op] = txOut
}

// checkScript makes sure a script handed to the verifier is within the size
// limit and parses.
func checkScript(script []byte, name string, idx int) error {
	if len(script) > MaxScriptSize {
		str := fmt.Sprintf("input %d: %s size %d is larger than max allowed size %d",
			idx, name, len(script), MaxScriptSize)
		return scriptError(ErrScriptTooBig, str)
	}
	if err := checkScriptParses(script); err != nil {
		return errors.Wrapf(err, "input %d: %s", idx, name)
	}
	return nil
}

// VerifyTransaction hands every input of tx to v together with the output it
// spends, as found by fetcher. The scripts themselves are never executed
// here; they are only checked to be well formed before reaching v.
// Coinbase transactions spend no outputs and are accepted as is.
func VerifyTransaction(v Verifier, tx *wire.MsgTx, fetcher PrevOutputFetcher, flags ScriptFlags) error {
	if v == nil {
		return scriptError(ErrVerifierMissing, "no script verifier was provided")
	}
	if tx.IsCoinBase() {
		return nil
	}

	for idx, txIn := range tx.TxIn {
		prevOut := fetcher.FetchPrevOutput(txIn.PreviousOutPoint)
		if prevOut == nil {
			str := fmt.Sprintf("input %d spends unknown output %s", idx,
				txIn.PreviousOutPoint)
			return scriptError(ErrPrevOutMissing, str)
		}

		if err := checkScript(txIn.SignatureScript, "signature script", idx); err != nil {
			return err
		}
		if err := checkScript(prevOut.PkScript, "public key script", idx); err != nil {
			return err
		}

		log.Tracef("Verifying input %d of %s", idx, logger.NewLogClosure(func() string {
			return tx.TxHash().String()
		}))
		if err := v.VerifyInput(tx, idx, prevOut, flags); err != nil {
			str := fmt.Sprintf("input %d of %s: %s", idx, tx.TxHash(), err)
			return scriptError(ErrVerifyFailed, str)
		}
	}
	return nil
}
