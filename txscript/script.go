// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2015-2019 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Instruction is a single parsed element of a script: an opcode together with
// the data it pushes, if any.
type Instruction struct {
	// Opcode is the opcode byte.
	Opcode byte

	// Data is the pushed data for push opcodes. It aliases the parsed
	// script.
	Data []byte

	// Offset is the position of the opcode byte in the script.
	Offset int
}

// Name returns the canonical name of the instruction's opcode.
func (in Instruction) Name() string {
	return opcodeArray[in.Opcode].name
}

// IsPush returns whether the instruction only pushes a value.
func (in Instruction) IsPush() bool {
	return in.Opcode <= Op16
}

// String returns the full disassembly of the instruction, including the
// length prefix of OP_PUSHDATA opcodes.
func (in Instruction) String() string {
	var buf strings.Builder
	disasmOpcode(&buf, &opcodeArray[in.Opcode], in.Data, false)
	return buf.String()
}

// ParseInstructions segments script into its instructions. Nothing is
// executed. It fails with ErrMalformedPush when a push claims more bytes than
// the script holds.
func ParseInstructions(script []byte) ([]Instruction, error) {
	var instructions []Instruction
	tokenizer := MakeScriptTokenizer(script)
	offset := 0
	for tokenizer.Next() {
		instructions = append(instructions, Instruction{
			Opcode: tokenizer.Opcode(),
			Data:   tokenizer.Data(),
			Offset: offset,
		})
		offset = tokenizer.ByteIndex()
	}
	if err := tokenizer.Err(); err != nil {
		return nil, err
	}
	return instructions, nil
}

// checkScriptParses returns an error if the provided script fails to parse.
func checkScriptParses(script []byte) error {
	tokenizer := MakeScriptTokenizer(script)
	for tokenizer.Next() {
		// Nothing to do.
	}
	return tokenizer.Err()
}

// isSmallInt returns whether or not the opcode is considered a small integer,
// which is an OP_0, or OP_1 through OP_16.
func isSmallInt(op byte) bool {
	return op == Op0 || (op >= Op1 && op <= Op16)
}

// asSmallInt returns the passed opcode, which must be true according to
// isSmallInt(), as an integer.
func asSmallInt(op byte) int {
	if op == Op0 {
		return 0
	}

	return int(op - (Op1 - 1))
}

// IsPushOnlyScript returns whether or not the passed script only pushes data
// according to the consensus definition of pushing data. A script that fails
// to parse is not push only.
func IsPushOnlyScript(script []byte) bool {
	tokenizer := MakeScriptTokenizer(script)
	for tokenizer.Next() {
		// All opcodes up to OP_16 are data push instructions.
		// NOTE: This does consider OP_RESERVED to be a data push
		// instruction, but execution of OP_RESERVED will fail anyway
		// and matches the behavior required by consensus.
		if tokenizer.Opcode() > Op16 {
			return false
		}
	}
	return tokenizer.Err() == nil
}

// PushedData returns an array of byte slices containing any pushed data found
// in the passed script. This includes OP_0, but not OP_1 - OP_16.
func PushedData(script []byte) ([][]byte, error) {
	var data [][]byte
	tokenizer := MakeScriptTokenizer(script)
	for tokenizer.Next() {
		if tokenizer.Data() != nil {
			data = append(data, tokenizer.Data())
		} else if tokenizer.Opcode() == Op0 {
			data = append(data, nil)
		}
	}
	if err := tokenizer.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

// opcodeOnelineRepls defines opcode names which are replaced when doing a
// one-line disassembly. This is done to match the output of the reference
// implementation while not changing the opcode names in the nicer full
// disassembly.
var opcodeOnelineRepls = map[string]string{
	"OP_1NEGATE": "-1",
	"OP_0":       "0",
	"OP_1":       "1",
	"OP_2":       "2",
	"OP_3":       "3",
	"OP_4":       "4",
	"OP_5":       "5",
	"OP_6":       "6",
	"OP_7":       "7",
	"OP_8":       "8",
	"OP_9":       "9",
	"OP_10":      "10",
	"OP_11":      "11",
	"OP_12":      "12",
	"OP_13":      "13",
	"OP_14":      "14",
	"OP_15":      "15",
	"OP_16":      "16",
}

// disasmOpcode writes a human-readable disassembly of the provided opcode and
// data into the provided buffer. The compact flag indicates the disassembly
// should print a more compact representation of data-carrying and small
// integer opcodes. For example, OP_0 through OP_16 are replaced with the
// numeric value and data pushes are printed as only the hex representation of
// the data.
func disasmOpcode(buf *strings.Builder, op *opcode, data []byte, compact bool) {
	// Replace opcode which represent values (e.g. OP_0 through OP_16 and
	// OP_1NEGATE) with the raw value when performing a compact disassembly.
	opcodeName := op.name
	if compact {
		if replName, ok := opcodeOnelineRepls[opcodeName]; ok {
			opcodeName = replName
		}

		// Either write the human-readable opcode or the parsed data in hex
		// for data-carrying opcodes.
		switch {
		case op.length == 1:
			buf.WriteString(opcodeName)

		default:
			buf.WriteString(hex.EncodeToString(data))
		}

		return
	}

	buf.WriteString(opcodeName)

	switch op.length {
	// Only write the opcode name for non-data push opcodes.
	case 1:
		return

	// Add length for the OP_PUSHDATA# opcodes.
	case -1:
		fmt.Fprintf(buf, " 0x%02x", len(data))
	case -2:
		fmt.Fprintf(buf, " 0x%04x", len(data))
	case -4:
		fmt.Fprintf(buf, " 0x%08x", len(data))
	}

	fmt.Fprintf(buf, " 0x%x", data)
}

// DisasmString formats a disassembled script for one line printing. When the
// script fails to parse, the returned string will contain the disassembled
// script up to the point the failure occurred along with the string '[error]'
// appended. In addition, the reason the script failed to parse is returned
// if the caller wants more information about the failure.
func DisasmString(script []byte) (string, error) {
	var disbuf strings.Builder
	tokenizer := MakeScriptTokenizer(script)
	if tokenizer.Next() {
		disasmOpcode(&disbuf, tokenizer.op, tokenizer.Data(), true)
	}
	for tokenizer.Next() {
		disbuf.WriteByte(' ')
		disasmOpcode(&disbuf, tokenizer.op, tokenizer.Data(), true)
	}
	if tokenizer.Err() != nil {
		if tokenizer.ByteIndex() != 0 {
			disbuf.WriteByte(' ')
		}
		disbuf.WriteString("[error]")
	}
	return disbuf.String(), tokenizer.Err()
}
