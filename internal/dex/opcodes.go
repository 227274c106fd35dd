package dex

// 指令格式对应的长度（code unit）
var opcodeWidth [256]uint8

func init() {
	set := func(from, to int, width uint8) {
		for op := from; op <= to; op++ {
			opcodeWidth[op] = width
		}
	}
	// 默认 1 个 code unit（10x、11x、12x、11n、10t 以及未使用的操作码）
	set(0x00, 0xff, 1)
	set(0x02, 0x02, 2) // move/from16 22x
	set(0x03, 0x03, 3) // move/16 32x
	set(0x05, 0x05, 2)
	set(0x06, 0x06, 3)
	set(0x08, 0x08, 2)
	set(0x09, 0x09, 3)
	set(0x13, 0x13, 2) // const/16 21s
	set(0x14, 0x14, 3) // const 31i
	set(0x15, 0x16, 2) // const/high16 21h, const-wide/16 21s
	set(0x17, 0x17, 3) // const-wide/32 31i
	set(0x18, 0x18, 5) // const-wide 51l
	set(0x19, 0x19, 2) // const-wide/high16 21h
	set(0x1a, 0x1a, 2) // const-string 21c
	set(0x1b, 0x1b, 3) // const-string/jumbo 31c
	set(0x1c, 0x1c, 2) // const-class 21c
	set(0x1f, 0x20, 2) // check-cast 21c, instance-of 22c
	set(0x22, 0x23, 2) // new-instance 21c, new-array 22c
	set(0x24, 0x26, 3) // filled-new-array 35c, /range 3rc, fill-array-data 31t
	set(0x29, 0x29, 2) // goto/16 20t
	set(0x2a, 0x2c, 3) // goto/32 30t, packed-switch 31t, sparse-switch 31t
	set(0x2d, 0x3d, 2) // cmpkind 23x, if-test 22t, if-testz 21t
	set(0x44, 0x6d, 2) // arrayop 23x, iinstanceop 22c, sstaticop 21c
	set(0x6e, 0x72, 3) // invoke-kind 35c
	set(0x74, 0x78, 3) // invoke-kind/range 3rc
	set(0x90, 0xaf, 2) // binop 23x
	set(0xd0, 0xe2, 2) // binop/lit16 22s, binop/lit8 22b
	set(0xfa, 0xfb, 4) // invoke-polymorphic 45cc, /range 4rcc
	set(0xfc, 0xfd, 3) // invoke-custom 35c, /range 3rc
	set(0xfe, 0xff, 2) // const-method-handle 21c, const-method-type 21c
}

const (
	OpNop                    = 0x00
	OpReturnVoid             = 0x0e
	OpConstString            = 0x1a
	OpConstStringJumbo       = 0x1b
	OpIGet                   = 0x52
	OpIGetShort              = 0x58
	OpIPut                   = 0x59
	OpIPutShort              = 0x5f
	OpSGet                   = 0x60
	OpSGetShort              = 0x66
	OpSPut                   = 0x67
	OpSPutShort              = 0x6d
	OpInvokeVirtual          = 0x6e
	OpInvokeSuper            = 0x6f
	OpInvokeDirect           = 0x70
	OpInvokeStatic           = 0x71
	OpInvokeInterface        = 0x72
	OpInvokeVirtualRange     = 0x74
	OpInvokeInterfaceRange   = 0x78
	OpInvokePolymorphic      = 0xfa
	OpInvokePolymorphicRange = 0xfb

	packedSwitchPayload = 0x0100
	sparseSwitchPayload = 0x0200
	fillArrayPayload    = 0x0300
)

// FieldAccess 字段访问类型
type FieldAccess uint8

const (
	FieldRead FieldAccess = iota + 1
	FieldWrite
)

// Instruction 是指令流中的一条指令
type Instruction struct {
	PC    int
	Op    uint8
	Units []uint16
}

// StringIndex 返回 const-string 引用的字符串索引
func (ins Instruction) StringIndex() (uint32, bool) {
	switch ins.Op {
	case OpConstString:
		return uint32(ins.Units[1]), true
	case OpConstStringJumbo:
		return uint32(ins.Units[1]) | uint32(ins.Units[2])<<16, true
	}
	return 0, false
}

// MethodIndex 返回 invoke 系列指令调用的方法索引
func (ins Instruction) MethodIndex() (uint32, bool) {
	switch {
	case ins.Op >= OpInvokeVirtual && ins.Op <= OpInvokeInterface,
		ins.Op >= OpInvokeVirtualRange && ins.Op <= OpInvokeInterfaceRange,
		ins.Op == OpInvokePolymorphic, ins.Op == OpInvokePolymorphicRange:
		return uint32(ins.Units[1]), true
	}
	return 0, false
}

// FieldIndex 返回字段访问指令引用的字段索引及读写类型
func (ins Instruction) FieldIndex() (uint32, FieldAccess, bool) {
	switch {
	case ins.Op >= OpIGet && ins.Op <= OpIGetShort, ins.Op >= OpSGet && ins.Op <= OpSGetShort:
		return uint32(ins.Units[1]), FieldRead, true
	case ins.Op >= OpIPut && ins.Op <= OpIPutShort, ins.Op >= OpSPut && ins.Op <= OpSPutShort:
		return uint32(ins.Units[1]), FieldWrite, true
	}
	return 0, 0, false
}

// payloadWidth 返回伪指令数据块长度，非伪指令返回 0
func payloadWidth(insns []uint16, pc int) (int, bool) {
	rest := insns[pc:]
	switch rest[0] {
	case packedSwitchPayload:
		if len(rest) < 2 {
			return 0, false
		}
		return 4 + int(rest[1])*2, true
	case sparseSwitchPayload:
		if len(rest) < 2 {
			return 0, false
		}
		return 2 + int(rest[1])*4, true
	case fillArrayPayload:
		if len(rest) < 4 {
			return 0, false
		}
		width := int(rest[1])
		size := int(rest[2]) | int(rest[3])<<16
		return 4 + (size*width+1)/2, true
	}
	return 0, true
}

// Walk 依次访问指令，跳过 switch/array 数据伪指令。fn 返回 false 时停止。
func (ci *CodeItem) Walk(fn func(Instruction) bool) error {
	insns := ci.Insns
	for pc := 0; pc < len(insns); {
		op := uint8(insns[pc])
		if op == OpNop {
			n, ok := payloadWidth(insns, pc)
			if !ok {
				return &FormatError{Offset: pc * 2, Reason: "truncated payload"}
			}
			if n > 0 {
				pc += n
				continue
			}
		}
		width := int(opcodeWidth[op])
		if pc+width > len(insns) {
			return &FormatError{Offset: pc * 2, Reason: "truncated instruction"}
		}
		if !fn(Instruction{PC: pc, Op: op, Units: insns[pc : pc+width]}) {
			return nil
		}
		pc += width
	}
	return nil
}

// OpCodes 返回方法的操作码序列
func (ci *CodeItem) OpCodes() ([]byte, error) {
	var out []byte
	err := ci.Walk(func(ins Instruction) bool {
		out = append(out, ins.Op)
		return true
	})
	return out, err
}
