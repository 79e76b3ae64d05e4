// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the consensus encoding of transactions and blocks.

Every structure implements the Codec interface. Encode writes the canonical
encoding and reports the number of bytes written. Decode reads exactly one
value from the reader, leaves any trailing data untouched and reports the
number of bytes consumed.

Variable Length Integers

Counts and lengths are prefixed with a compact integer that takes 1, 3, 5 or
9 bytes. Decoding rejects any value that was not written in its shortest form
with ErrNonMinimalEncoding.

Segregated Witness

A transaction carrying witness data is written with a zero marker byte and a
flag of 0x01 between the version and the input count, and its witness stacks
follow the outputs. MsgTx.TxHash hashes the legacy layout and
MsgTx.WitnessHash hashes the full one.

Limits

Decoders bound every count and length prefix before allocating. DefaultLimits
is used unless the caller supplies its own through the DeserializeWithLimits
methods.

Errors

Errors returned by this package are either the raw errors provided by
underlying calls to write to the provided writer or of type *MessageError.
IsErrorCode reports whether an error, possibly wrapped, carries a given
ErrorCode.
*/
package wire
