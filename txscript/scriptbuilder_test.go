// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"
	"testing"
)

// TestScriptBuilderAddOp tests that pushing opcodes to a script via the
// ScriptBuilder API works as expected.
func TestScriptBuilderAddOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opcodes  []byte
		expected []byte
	}{
		{
			name:     "push OP_0",
			opcodes:  []byte{Op0},
			expected: []byte{Op0},
		},
		{
			name:     "push OP_1 OP_2",
			opcodes:  []byte{Op1, Op2},
			expected: []byte{Op1, Op2},
		},
		{
			name:     "push OP_HASH160 OP_EQUAL",
			opcodes:  []byte{OpHash160, OpEqual},
			expected: []byte{OpHash160, OpEqual},
		},
	}

	// Run tests and individually add each op via AddOp.
	builder := NewScriptBuilder()
	for i, test := range tests {
		builder.Reset()
		for _, opcode := range test.opcodes {
			builder.AddOp(opcode)
		}
		result, err := builder.Script()
		if err != nil {
			t.Errorf("ScriptBuilder.AddOp #%d (%s) unexpected error: %v",
				i, test.name, err)
			continue
		}
		if !bytes.Equal(result, test.expected) {
			t.Errorf("ScriptBuilder.AddOp #%d (%s) wrong result\n"+
				"got: %x\nwant: %x", i, test.name, result,
				test.expected)
		}
	}

	// Run tests and bulk add ops via AddOps.
	for i, test := range tests {
		builder.Reset()
		result, err := builder.AddOps(test.opcodes).Script()
		if err != nil {
			t.Errorf("ScriptBuilder.AddOps #%d (%s) unexpected error: %v",
				i, test.name, err)
			continue
		}
		if !bytes.Equal(result, test.expected) {
			t.Errorf("ScriptBuilder.AddOps #%d (%s) wrong result\n"+
				"got: %x\nwant: %x", i, test.name, result,
				test.expected)
		}
	}
}

// TestScriptBuilderAddInt64 tests that pushing signed integers to a script via
// the ScriptBuilder API works as expected.
func TestScriptBuilderAddInt64(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		val      int64
		expected []byte
	}{
		{name: "push -1", val: -1, expected: []byte{Op1Negate}},
		{name: "push small int 0", val: 0, expected: []byte{Op0}},
		{name: "push small int 1", val: 1, expected: []byte{Op1}},
		{name: "push small int 16", val: 16, expected: []byte{Op16}},
		{name: "push 17", val: 17, expected: []byte{OpData1, 0x11}},
		{name: "push 127", val: 127, expected: []byte{OpData1, 0x7f}},
		{name: "push 128", val: 128, expected: []byte{OpData2, 0x80, 0}},
		{name: "push 255", val: 255, expected: []byte{OpData2, 0xff, 0}},
		{name: "push 256", val: 256, expected: []byte{OpData2, 0, 0x01}},
		{name: "push 32767", val: 32767, expected: []byte{OpData2, 0xff, 0x7f}},
		{name: "push 32768", val: 32768, expected: []byte{OpData3, 0, 0x80, 0}},
		{name: "push -2", val: -2, expected: []byte{OpData1, 0x82}},
		{name: "push -16", val: -16, expected: []byte{OpData1, 0x90}},
		{name: "push -127", val: -127, expected: []byte{OpData1, 0xff}},
		{name: "push -128", val: -128, expected: []byte{OpData2, 0x80, 0x80}},
		{name: "push -255", val: -255, expected: []byte{OpData2, 0xff, 0x80}},
		{name: "push -256", val: -256, expected: []byte{OpData2, 0x00, 0x81}},
		{name: "push -32767", val: -32767, expected: []byte{OpData2, 0xff, 0xff}},
		{name: "push -32768", val: -32768, expected: []byte{OpData3, 0x00, 0x80, 0x80}},
	}

	builder := NewScriptBuilder()
	for i, test := range tests {
		builder.Reset().AddInt64(test.val)
		result, err := builder.Script()
		if err != nil {
			t.Errorf("ScriptBuilder.AddInt64 #%d (%s) unexpected error: %v",
				i, test.name, err)
			continue
		}
		if !bytes.Equal(result, test.expected) {
			t.Errorf("ScriptBuilder.AddInt64 #%d (%s) wrong result\n"+
				"got: %x\nwant: %x", i, test.name, result,
				test.expected)
		}
	}
}

// TestScriptBuilderAddData tests that pushing data to a script via the
// ScriptBuilder API works as expected and conforms to BIP0062.
func TestScriptBuilderAddData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     []byte
		expected []byte
		useFull  bool // use AddFullData instead of AddData.
	}{
		// BIP0062: Pushing an empty byte sequence must use OP_0.
		{name: "push empty byte sequence", data: nil, expected: []byte{Op0}},
		{name: "push 1 byte 0x00", data: []byte{0x00}, expected: []byte{Op0}},

		// BIP0062: Pushing a 1-byte sequence of byte 0x01 through 0x10 must use OP_n.
		{name: "push 1 byte 0x01", data: []byte{0x01}, expected: []byte{Op1}},
		{name: "push 1 byte 0x10", data: []byte{0x10}, expected: []byte{Op16}},

		// BIP0062: Pushing the byte 0x81 must use OP_1NEGATE.
		{name: "push 1 byte 0x81", data: []byte{0x81}, expected: []byte{Op1Negate}},

		// BIP0062: Pushing any other byte sequence up to 75 bytes must
		// use the normal data push (P, where P is the length).
		{name: "push 1 byte 0x11", data: []byte{0x11}, expected: []byte{OpData1, 0x11}},
		{
			name:     "push data len 75",
			data:     bytes.Repeat([]byte{0x49}, 75),
			expected: append([]byte{OpData75}, bytes.Repeat([]byte{0x49}, 75)...),
		},

		// BIP0062: Pushing 76 to 255 bytes must use OP_PUSHDATA1.
		{
			name:     "push data len 76",
			data:     bytes.Repeat([]byte{0x49}, 76),
			expected: append([]byte{OpPushData1, 76}, bytes.Repeat([]byte{0x49}, 76)...),
		},
		{
			name:     "push data len 255",
			data:     bytes.Repeat([]byte{0x49}, 255),
			expected: append([]byte{OpPushData1, 255}, bytes.Repeat([]byte{0x49}, 255)...),
		},

		// BIP0062: Pushing 256 to 520 bytes must use OP_PUSHDATA2.
		{
			name:     "push data len 256",
			data:     bytes.Repeat([]byte{0x49}, 256),
			expected: append([]byte{OpPushData2, 0, 1}, bytes.Repeat([]byte{0x49}, 256)...),
		},
		{
			name:     "push data len 520",
			data:     bytes.Repeat([]byte{0x49}, 520),
			expected: append([]byte{OpPushData2, 0x08, 0x02}, bytes.Repeat([]byte{0x49}, 520)...),
		},

		// Pushes over the element size limit are rejected by AddData.
		{
			name:     "push data len 521",
			data:     bytes.Repeat([]byte{0x49}, 521),
			expected: nil,
		},

		// AddFullData bypasses the element size limit.
		{
			name:     "push data len 521 full",
			data:     bytes.Repeat([]byte{0x49}, 521),
			expected: append([]byte{OpPushData2, 0x09, 0x02}, bytes.Repeat([]byte{0x49}, 521)...),
			useFull:  true,
		},
		{
			name:     "push data len 65536 full",
			data:     bytes.Repeat([]byte{0x49}, 65536),
			expected: append([]byte{OpPushData4, 0, 0, 1, 0}, bytes.Repeat([]byte{0x49}, 65536)...),
			useFull:  true,
		},
	}

	builder := NewScriptBuilder()
	for i, test := range tests {
		if !test.useFull {
			builder.Reset().AddData(test.data)
		} else {
			builder.Reset().AddFullData(test.data)
		}
		result, _ := builder.Script()
		if !bytes.Equal(result, test.expected) {
			t.Errorf("ScriptBuilder.AddData #%d (%s) wrong result\n"+
				"got: %x\nwant: %x", i, test.name, result,
				test.expected)
			continue
		}
	}
}

// TestExceedMaxScriptSize ensures that all of the functions that can be used
// to add data to a script don't allow the script to exceed the max allowed
// size.
func TestExceedMaxScriptSize(t *testing.T) {
	t.Parallel()

	// Start off by constructing a max size script.
	builder := NewScriptBuilder()
	builder.Reset().AddFullData(make([]byte, MaxScriptSize-3))
	origScript, err := builder.Script()
	if err != nil {
		t.Fatalf("Unexpected error for max size script: %v", err)
	}

	checks := []struct {
		name string
		add  func(*ScriptBuilder)
	}{
		{"AddData", func(b *ScriptBuilder) { b.AddData([]byte{0x00}) }},
		{"AddOp", func(b *ScriptBuilder) { b.AddOp(Op0) }},
		{"AddOps", func(b *ScriptBuilder) { b.AddOps([]byte{Op0}) }},
		{"AddInt64", func(b *ScriptBuilder) { b.AddInt64(0) }},
	}
	for _, check := range checks {
		builder.Reset().AddFullData(make([]byte, MaxScriptSize-3))
		check.add(builder)
		script, err := builder.Script()
		if _, ok := err.(ErrScriptNotCanonical); !ok || err == nil {
			t.Fatalf("ScriptBuilder.%s allowed exceeding max script "+
				"size: %v", check.name, len(script))
		}
		if !bytes.Equal(script, origScript) {
			t.Fatalf("ScriptBuilder.%s unexpected modified script - "+
				"got len %d, want len %d", check.name, len(script),
				len(origScript))
		}
	}
}

// TestErroredScript ensures that all of the functions that can be used to add
// data to a script don't modify the script once an error has happened.
func TestErroredScript(t *testing.T) {
	t.Parallel()

	// Start off by constructing a near max size script that has enough
	// space left to add each data type without an error and force an
	// initial error condition.
	builder := NewScriptBuilder()
	builder.Reset().AddFullData(make([]byte, MaxScriptSize-8))
	origScript, err := builder.Script()
	if err != nil {
		t.Fatalf("ScriptBuilder.AddFullData unexpected error: %v", err)
	}
	script, err := builder.AddData([]byte{0x00, 0x00, 0x00, 0x00, 0x00}).Script()
	if _, ok := err.(ErrScriptNotCanonical); !ok || err == nil {
		t.Fatalf("ScriptBuilder.AddData allowed exceeding max script "+
			"size: %v", len(script))
	}
	if !bytes.Equal(script, origScript) {
		t.Fatalf("ScriptBuilder.AddData unexpected modified script - "+
			"got len %d, want len %d", len(script), len(origScript))
	}

	// Ensure adding data, even using the non-canonical path, to a script
	// that has errored doesn't succeed.
	script, err = builder.AddFullData([]byte{0x00}).Script()
	if _, ok := err.(ErrScriptNotCanonical); !ok || err == nil {
		t.Fatal("ScriptBuilder.AddFullData succeeded on errored script")
	}
	if !bytes.Equal(script, origScript) {
		t.Fatalf("ScriptBuilder.AddFullData unexpected modified "+
			"script - got len %d, want len %d", len(script),
			len(origScript))
	}

	script, err = builder.AddOps([]byte{Op0}).AddOp(Op0).AddInt64(0).Script()
	if _, ok := err.(ErrScriptNotCanonical); !ok || err == nil {
		t.Fatal("ScriptBuilder succeeded on errored script")
	}
	if !bytes.Equal(script, origScript) {
		t.Fatalf("ScriptBuilder unexpected modified script - got len "+
			"%d, want len %d", len(script), len(origScript))
	}
}
