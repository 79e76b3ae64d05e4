// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"fmt"
)

// An opcode defines the information related to a txscript opcode. length is
// the number of bytes the opcode takes up in a script including the opcode
// itself. A length of 1 means a lone opcode, a length above 1 a fixed size
// data push, and negative lengths -1, -2 and -4 a push whose data length is
// given by the following 1, 2 or 4 little-endian bytes.
type opcode struct {
	value  byte
	name   string
	length int
}

// These constants are the values of the official opcodes used on the btc wiki,
// in bitcoin core and in most if not all other references and software related
// to handling BTC scripts.
const (
	Op0                   byte = 0x00 // 0
	OpFalse               byte = 0x00 // 0 - AKA Op0
	OpData1               byte = 0x01 // 1
	OpData2               byte = 0x02 // 2
	OpData3               byte = 0x03 // 3
	OpData4               byte = 0x04 // 4
	OpData5               byte = 0x05 // 5
	OpData6               byte = 0x06 // 6
	OpData7               byte = 0x07 // 7
	OpData8               byte = 0x08 // 8
	OpData9               byte = 0x09 // 9
	OpData10              byte = 0x0a // 10
	OpData11              byte = 0x0b // 11
	OpData12              byte = 0x0c // 12
	OpData13              byte = 0x0d // 13
	OpData14              byte = 0x0e // 14
	OpData15              byte = 0x0f // 15
	OpData16              byte = 0x10 // 16
	OpData17              byte = 0x11 // 17
	OpData18              byte = 0x12 // 18
	OpData19              byte = 0x13 // 19
	OpData20              byte = 0x14 // 20
	OpData21              byte = 0x15 // 21
	OpData22              byte = 0x16 // 22
	OpData23              byte = 0x17 // 23
	OpData24              byte = 0x18 // 24
	OpData25              byte = 0x19 // 25
	OpData26              byte = 0x1a // 26
	OpData27              byte = 0x1b // 27
	OpData28              byte = 0x1c // 28
	OpData29              byte = 0x1d // 29
	OpData30              byte = 0x1e // 30
	OpData31              byte = 0x1f // 31
	OpData32              byte = 0x20 // 32
	OpData33              byte = 0x21 // 33
	OpData34              byte = 0x22 // 34
	OpData35              byte = 0x23 // 35
	OpData36              byte = 0x24 // 36
	OpData37              byte = 0x25 // 37
	OpData38              byte = 0x26 // 38
	OpData39              byte = 0x27 // 39
	OpData40              byte = 0x28 // 40
	OpData41              byte = 0x29 // 41
	OpData42              byte = 0x2a // 42
	OpData43              byte = 0x2b // 43
	OpData44              byte = 0x2c // 44
	OpData45              byte = 0x2d // 45
	OpData46              byte = 0x2e // 46
	OpData47              byte = 0x2f // 47
	OpData48              byte = 0x30 // 48
	OpData49              byte = 0x31 // 49
	OpData50              byte = 0x32 // 50
	OpData51              byte = 0x33 // 51
	OpData52              byte = 0x34 // 52
	OpData53              byte = 0x35 // 53
	OpData54              byte = 0x36 // 54
	OpData55              byte = 0x37 // 55
	OpData56              byte = 0x38 // 56
	OpData57              byte = 0x39 // 57
	OpData58              byte = 0x3a // 58
	OpData59              byte = 0x3b // 59
	OpData60              byte = 0x3c // 60
	OpData61              byte = 0x3d // 61
	OpData62              byte = 0x3e // 62
	OpData63              byte = 0x3f // 63
	OpData64              byte = 0x40 // 64
	OpData65              byte = 0x41 // 65
	OpData66              byte = 0x42 // 66
	OpData67              byte = 0x43 // 67
	OpData68              byte = 0x44 // 68
	OpData69              byte = 0x45 // 69
	OpData70              byte = 0x46 // 70
	OpData71              byte = 0x47 // 71
	OpData72              byte = 0x48 // 72
	OpData73              byte = 0x49 // 73
	OpData74              byte = 0x4a // 74
	OpData75              byte = 0x4b // 75
	OpPushData1           byte = 0x4c // 76
	OpPushData2           byte = 0x4d // 77
	OpPushData4           byte = 0x4e // 78
	Op1Negate             byte = 0x4f // 79
	OpReserved            byte = 0x50 // 80
	Op1                   byte = 0x51 // 81
	OpTrue                byte = 0x51 // 81 - AKA Op1
	Op2                   byte = 0x52 // 82
	Op3                   byte = 0x53 // 83
	Op4                   byte = 0x54 // 84
	Op5                   byte = 0x55 // 85
	Op6                   byte = 0x56 // 86
	Op7                   byte = 0x57 // 87
	Op8                   byte = 0x58 // 88
	Op9                   byte = 0x59 // 89
	Op10                  byte = 0x5a // 90
	Op11                  byte = 0x5b // 91
	Op12                  byte = 0x5c // 92
	Op13                  byte = 0x5d // 93
	Op14                  byte = 0x5e // 94
	Op15                  byte = 0x5f // 95
	Op16                  byte = 0x60 // 96
	OpNop                 byte = 0x61 // 97
	OpVer                 byte = 0x62 // 98
	OpIf                  byte = 0x63 // 99
	OpNotIf               byte = 0x64 // 100
	OpVerIf               byte = 0x65 // 101
	OpVerNotIf            byte = 0x66 // 102
	OpElse                byte = 0x67 // 103
	OpEndIf               byte = 0x68 // 104
	OpVerify              byte = 0x69 // 105
	OpReturn              byte = 0x6a // 106
	OpToAltStack          byte = 0x6b // 107
	OpFromAltStack        byte = 0x6c // 108
	Op2Drop               byte = 0x6d // 109
	Op2Dup                byte = 0x6e // 110
	Op3Dup                byte = 0x6f // 111
	Op2Over               byte = 0x70 // 112
	Op2Rot                byte = 0x71 // 113
	Op2Swap               byte = 0x72 // 114
	OpIfDup               byte = 0x73 // 115
	OpDepth               byte = 0x74 // 116
	OpDrop                byte = 0x75 // 117
	OpDup                 byte = 0x76 // 118
	OpNip                 byte = 0x77 // 119
	OpOver                byte = 0x78 // 120
	OpPick                byte = 0x79 // 121
	OpRoll                byte = 0x7a // 122
	OpRot                 byte = 0x7b // 123
	OpSwap                byte = 0x7c // 124
	OpTuck                byte = 0x7d // 125
	OpCat                 byte = 0x7e // 126
	OpSubStr              byte = 0x7f // 127
	OpLeft                byte = 0x80 // 128
	OpRight               byte = 0x81 // 129
	OpSize                byte = 0x82 // 130
	OpInvert              byte = 0x83 // 131
	OpAnd                 byte = 0x84 // 132
	OpOr                  byte = 0x85 // 133
	OpXor                 byte = 0x86 // 134
	OpEqual               byte = 0x87 // 135
	OpEqualVerify         byte = 0x88 // 136
	OpReserved1           byte = 0x89 // 137
	OpReserved2           byte = 0x8a // 138
	Op1Add                byte = 0x8b // 139
	Op1Sub                byte = 0x8c // 140
	Op2Mul                byte = 0x8d // 141
	Op2Div                byte = 0x8e // 142
	OpNegate              byte = 0x8f // 143
	OpAbs                 byte = 0x90 // 144
	OpNot                 byte = 0x91 // 145
	Op0NotEqual           byte = 0x92 // 146
	OpAdd                 byte = 0x93 // 147
	OpSub                 byte = 0x94 // 148
	OpMul                 byte = 0x95 // 149
	OpDiv                 byte = 0x96 // 150
	OpMod                 byte = 0x97 // 151
	OpLShift              byte = 0x98 // 152
	OpRShift              byte = 0x99 // 153
	OpBoolAnd             byte = 0x9a // 154
	OpBoolOr              byte = 0x9b // 155
	OpNumEqual            byte = 0x9c // 156
	OpNumEqualVerify      byte = 0x9d // 157
	OpNumNotEqual         byte = 0x9e // 158
	OpLessThan            byte = 0x9f // 159
	OpGreaterThan         byte = 0xa0 // 160
	OpLessThanOrEqual     byte = 0xa1 // 161
	OpGreaterThanOrEqual  byte = 0xa2 // 162
	OpMin                 byte = 0xa3 // 163
	OpMax                 byte = 0xa4 // 164
	OpWithin              byte = 0xa5 // 165
	OpRipeMD160           byte = 0xa6 // 166
	OpSHA1                byte = 0xa7 // 167
	OpSHA256              byte = 0xa8 // 168
	OpHash160             byte = 0xa9 // 169
	OpHash256             byte = 0xaa // 170
	OpCodeSeparator       byte = 0xab // 171
	OpCheckSig            byte = 0xac // 172
	OpCheckSigVerify      byte = 0xad // 173
	OpCheckMultiSig       byte = 0xae // 174
	OpCheckMultiSigVerify byte = 0xaf // 175
	OpNop1                byte = 0xb0 // 176
	OpCheckLockTimeVerify byte = 0xb1 // 177
	OpNop2                byte = 0xb1 // 177 - AKA OpCheckLockTimeVerify
	OpCheckSequenceVerify byte = 0xb2 // 178
	OpNop3                byte = 0xb2 // 178 - AKA OpCheckSequenceVerify
	OpNop4                byte = 0xb3 // 179
	OpNop5                byte = 0xb4 // 180
	OpNop6                byte = 0xb5 // 181
	OpNop7                byte = 0xb6 // 182
	OpNop8                byte = 0xb7 // 183
	OpNop9                byte = 0xb8 // 184
	OpNop10               byte = 0xb9 // 185
	OpUnknown186          byte = 0xba // 186
	OpUnknown187          byte = 0xbb // 187
	OpUnknown188          byte = 0xbc // 188
	OpUnknown189          byte = 0xbd // 189
	OpUnknown190          byte = 0xbe // 190
	OpUnknown191          byte = 0xbf // 191
	OpUnknown192          byte = 0xc0 // 192
	OpUnknown193          byte = 0xc1 // 193
	OpUnknown194          byte = 0xc2 // 194
	OpUnknown195          byte = 0xc3 // 195
	OpUnknown196          byte = 0xc4 // 196
	OpUnknown197          byte = 0xc5 // 197
	OpUnknown198          byte = 0xc6 // 198
	OpUnknown199          byte = 0xc7 // 199
	OpUnknown200          byte = 0xc8 // 200
	OpUnknown201          byte = 0xc9 // 201
	OpUnknown202          byte = 0xca // 202
	OpUnknown203          byte = 0xcb // 203
	OpUnknown204          byte = 0xcc // 204
	OpUnknown205          byte = 0xcd // 205
	OpUnknown206          byte = 0xce // 206
	OpUnknown207          byte = 0xcf // 207
	OpUnknown208          byte = 0xd0 // 208
	OpUnknown209          byte = 0xd1 // 209
	OpUnknown210          byte = 0xd2 // 210
	OpUnknown211          byte = 0xd3 // 211
	OpUnknown212          byte = 0xd4 // 212
	OpUnknown213          byte = 0xd5 // 213
	OpUnknown214          byte = 0xd6 // 214
	OpUnknown215          byte = 0xd7 // 215
	OpUnknown216          byte = 0xd8 // 216
	OpUnknown217          byte = 0xd9 // 217
	OpUnknown218          byte = 0xda // 218
	OpUnknown219          byte = 0xdb // 219
	OpUnknown220          byte = 0xdc // 220
	OpUnknown221          byte = 0xdd // 221
	OpUnknown222          byte = 0xde // 222
	OpUnknown223          byte = 0xdf // 223
	OpUnknown224          byte = 0xe0 // 224
	OpUnknown225          byte = 0xe1 // 225
	OpUnknown226          byte = 0xe2 // 226
	OpUnknown227          byte = 0xe3 // 227
	OpUnknown228          byte = 0xe4 // 228
	OpUnknown229          byte = 0xe5 // 229
	OpUnknown230          byte = 0xe6 // 230
	OpUnknown231          byte = 0xe7 // 231
	OpUnknown232          byte = 0xe8 // 232
	OpUnknown233          byte = 0xe9 // 233
	OpUnknown234          byte = 0xea // 234
	OpUnknown235          byte = 0xeb // 235
	OpUnknown236          byte = 0xec // 236
	OpUnknown237          byte = 0xed // 237
	OpUnknown238          byte = 0xee // 238
	OpUnknown239          byte = 0xef // 239
	OpUnknown240          byte = 0xf0 // 240
	OpUnknown241          byte = 0xf1 // 241
	OpUnknown242          byte = 0xf2 // 242
	OpUnknown243          byte = 0xf3 // 243
	OpUnknown244          byte = 0xf4 // 244
	OpUnknown245          byte = 0xf5 // 245
	OpUnknown246          byte = 0xf6 // 246
	OpUnknown247          byte = 0xf7 // 247
	OpUnknown248          byte = 0xf8 // 248
	OpUnknown249          byte = 0xf9 // 249
	OpSmallInteger        byte = 0xfa // 250
	OpPubKeys             byte = 0xfb // 251
	OpUnknown252          byte = 0xfc // 252
	OpPubKeyHash          byte = 0xfd // 253
	OpPubKey              byte = 0xfe // 254
	OpInvalidOpCode       byte = 0xff // 255
)

// Script size limits.
const (
	// MaxScriptSize is the maximum allowed length of a raw script.
	MaxScriptSize = 10000

	// MaxScriptElementSize is the maximum number of bytes a single push
	// may carry.
	MaxScriptElementSize = 520
)

// opcodeArray holds details about all possible opcodes such as how many bytes
// the opcode and any associated data should take, its human-readable name.
var opcodeArray [256]opcode

// OpcodeByName is a map that can be used to lookup an opcode by its
// human-readable name (OP_CHECKMULTISIG, OP_CHECKSIG, etc).
var OpcodeByName = make(map[string]byte)

func init() {
	for i := range opcodeArray {
		value := byte(i)
		opcodeArray[i] = opcode{
			value:  value,
			name:   opcodeName(value),
			length: opcodeLength(value),
		}
		OpcodeByName[opcodeArray[i].name] = value
	}
	OpcodeByName["OP_FALSE"] = OpFalse
	OpcodeByName["OP_TRUE"] = OpTrue
	OpcodeByName["OP_NOP2"] = OpNop2
	OpcodeByName["OP_NOP3"] = OpNop3
}

// opcodeLength returns the encoded size of an opcode without its pushed data.
func opcodeLength(value byte) int {
	switch {
	case value >= OpData1 && value <= OpData75:
		return int(value) + 1
	case value == OpPushData1:
		return -1
	case value == OpPushData2:
		return -2
	case value == OpPushData4:
		return -4
	default:
		return 1
	}
}

// opcodeName returns the canonical name of an opcode.
func opcodeName(value byte) string {
	switch {
	case value == Op0:
		return "OP_0"
	case value >= OpData1 && value <= OpData75:
		return fmt.Sprintf("OP_DATA_%d", value)
	case value >= Op1 && value <= Op16:
		return fmt.Sprintf("OP_%d", value-(Op1-1))
	case value >= OpUnknown186 && value <= OpUnknown249, value == OpUnknown252:
		return fmt.Sprintf("OP_UNKNOWN%d", value)
	}
	return opcodeNames[value]
}

// opcodeNames names the opcodes that do not follow a numbered pattern.
var opcodeNames = map[byte]string{
	OpPushData1:           "OP_PUSHDATA1",
	OpPushData2:           "OP_PUSHDATA2",
	OpPushData4:           "OP_PUSHDATA4",
	Op1Negate:             "OP_1NEGATE",
	OpReserved:            "OP_RESERVED",
	OpNop:                 "OP_NOP",
	OpVer:                 "OP_VER",
	OpIf:                  "OP_IF",
	OpNotIf:               "OP_NOTIF",
	OpVerIf:               "OP_VERIF",
	OpVerNotIf:            "OP_VERNOTIF",
	OpElse:                "OP_ELSE",
	OpEndIf:               "OP_ENDIF",
	OpVerify:              "OP_VERIFY",
	OpReturn:              "OP_RETURN",
	OpToAltStack:          "OP_TOALTSTACK",
	OpFromAltStack:        "OP_FROMALTSTACK",
	Op2Drop:               "OP_2DROP",
	Op2Dup:                "OP_2DUP",
	Op3Dup:                "OP_3DUP",
	Op2Over:               "OP_2OVER",
	Op2Rot:                "OP_2ROT",
	Op2Swap:               "OP_2SWAP",
	OpIfDup:               "OP_IFDUP",
	OpDepth:               "OP_DEPTH",
	OpDrop:                "OP_DROP",
	OpDup:                 "OP_DUP",
	OpNip:                 "OP_NIP",
	OpOver:                "OP_OVER",
	OpPick:                "OP_PICK",
	OpRoll:                "OP_ROLL",
	OpRot:                 "OP_ROT",
	OpSwap:                "OP_SWAP",
	OpTuck:                "OP_TUCK",
	OpCat:                 "OP_CAT",
	OpSubStr:              "OP_SUBSTR",
	OpLeft:                "OP_LEFT",
	OpRight:               "OP_RIGHT",
	OpSize:                "OP_SIZE",
	OpInvert:              "OP_INVERT",
	OpAnd:                 "OP_AND",
	OpOr:                  "OP_OR",
	OpXor:                 "OP_XOR",
	OpEqual:               "OP_EQUAL",
	OpEqualVerify:         "OP_EQUALVERIFY",
	OpReserved1:           "OP_RESERVED1",
	OpReserved2:           "OP_RESERVED2",
	Op1Add:                "OP_1ADD",
	Op1Sub:                "OP_1SUB",
	Op2Mul:                "OP_2MUL",
	Op2Div:                "OP_2DIV",
	OpNegate:              "OP_NEGATE",
	OpAbs:                 "OP_ABS",
	OpNot:                 "OP_NOT",
	Op0NotEqual:           "OP_0NOTEQUAL",
	OpAdd:                 "OP_ADD",
	OpSub:                 "OP_SUB",
	OpMul:                 "OP_MUL",
	OpDiv:                 "OP_DIV",
	OpMod:                 "OP_MOD",
	OpLShift:              "OP_LSHIFT",
	OpRShift:              "OP_RSHIFT",
	OpBoolAnd:             "OP_BOOLAND",
	OpBoolOr:              "OP_BOOLOR",
	OpNumEqual:            "OP_NUMEQUAL",
	OpNumEqualVerify:      "OP_NUMEQUALVERIFY",
	OpNumNotEqual:         "OP_NUMNOTEQUAL",
	OpLessThan:            "OP_LESSTHAN",
	OpGreaterThan:         "OP_GREATERTHAN",
	OpLessThanOrEqual:     "OP_LESSTHANOREQUAL",
	OpGreaterThanOrEqual:  "OP_GREATERTHANOREQUAL",
	OpMin:                 "OP_MIN",
	OpMax:                 "OP_MAX",
	OpWithin:              "OP_WITHIN",
	OpRipeMD160:           "OP_RIPEMD160",
	OpSHA1:                "OP_SHA1",
	OpSHA256:              "OP_SHA256",
	OpHash160:             "OP_HASH160",
	OpHash256:             "OP_HASH256",
	OpCodeSeparator:       "OP_CODESEPARATOR",
	OpCheckSig:            "OP_CHECKSIG",
	OpCheckSigVerify:      "OP_CHECKSIGVERIFY",
	OpCheckMultiSig:       "OP_CHECKMULTISIG",
	OpCheckMultiSigVerify: "OP_CHECKMULTISIGVERIFY",
	OpNop1:                "OP_NOP1",
	OpCheckLockTimeVerify: "OP_CHECKLOCKTIMEVERIFY",
	OpCheckSequenceVerify: "OP_CHECKSEQUENCEVERIFY",
	OpNop4:                "OP_NOP4",
	OpNop5:                "OP_NOP5",
	OpNop6:                "OP_NOP6",
	OpNop7:                "OP_NOP7",
	OpNop8:                "OP_NOP8",
	OpNop9:                "OP_NOP9",
	OpNop10:               "OP_NOP10",
	OpSmallInteger:        "OP_SMALLINTEGER",
	OpPubKeys:             "OP_PUBKEYS",
	OpPubKeyHash:          "OP_PUBKEYHASH",
	OpPubKey:              "OP_PUBKEY",
	OpInvalidOpCode:       "OP_INVALIDOPCODE",
}
