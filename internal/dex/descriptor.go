package dex

import "strings"

// 访问标志
const (
	AccPublic       = 0x0001
	AccPrivate      = 0x0002
	AccProtected    = 0x0004
	AccStatic       = 0x0008
	AccFinal        = 0x0010
	AccSynchronized = 0x0020
	AccVolatile     = 0x0040
	AccBridge       = 0x0040
	AccTransient    = 0x0080
	AccVarargs      = 0x0080
	AccNative       = 0x0100
	AccInterface    = 0x0200
	AccAbstract     = 0x0400
	AccStrict       = 0x0800
	AccSynthetic    = 0x1000
	AccAnnotation   = 0x2000
	AccEnum         = 0x4000
	AccConstructor  = 0x10000
)

var primitiveNames = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
	'V': "void",
}

// JavaName 将类型描述符转换为 Java 类型名，例如 "[Lcom/a/B;" -> "com.a.B[]"
func JavaName(desc string) string {
	dims := 0
	for dims < len(desc) && desc[dims] == '[' {
		dims++
	}
	base := desc[dims:]
	if base == "" {
		return desc
	}

	var name string
	if base[0] == 'L' && strings.HasSuffix(base, ";") {
		name = strings.ReplaceAll(base[1:len(base)-1], "/", ".")
	} else if p, ok := primitiveNames[base[0]]; ok && len(base) == 1 {
		name = p
	} else {
		return desc
	}
	return name + strings.Repeat("[]", dims)
}

// Descriptor 将 Java 类型名转换为类型描述符，已是描述符的输入原样返回
func Descriptor(name string) string {
	if name == "" || IsDescriptor(name) {
		return name
	}
	dims := 0
	for strings.HasSuffix(name, "[]") {
		name = strings.TrimSuffix(name, "[]")
		dims++
	}
	prefix := strings.Repeat("[", dims)
	for k, v := range primitiveNames {
		if v == name {
			return prefix + string(k)
		}
	}
	return prefix + "L" + strings.ReplaceAll(name, ".", "/") + ";"
}

// IsDescriptor 判断字符串是否为类型描述符
func IsDescriptor(s string) bool {
	t := strings.TrimLeft(s, "[")
	if t == "" {
		return false
	}
	if t[0] == 'L' {
		return strings.HasSuffix(t, ";") && !strings.Contains(t, ".")
	}
	_, ok := primitiveNames[t[0]]
	return ok && len(t) == 1
}

// MemberDescriptor 是拆分后的字段或方法描述符
type MemberDescriptor struct {
	Class  string // 类型描述符
	Name   string
	Params []string // 方法参数类型描述符，字段为 nil
	Type   string   // 方法返回类型或字段类型
	Method bool
}

// ParseMemberDescriptor 拆分 "Lcom/a/B;->m(ILjava/lang/String;)V" 或 "Lcom/a/B;->f:I"
func ParseMemberDescriptor(s string) (MemberDescriptor, bool) {
	var md MemberDescriptor
	cls, rest, ok := strings.Cut(s, "->")
	if !ok || !IsDescriptor(cls) || rest == "" {
		return md, false
	}
	md.Class = cls

	if open := strings.IndexByte(rest, '('); open >= 0 {
		closeIdx := strings.IndexByte(rest, ')')
		if closeIdx < open || open == 0 {
			return md, false
		}
		params, ok := SplitParams(rest[open+1 : closeIdx])
		if !ok {
			return md, false
		}
		md.Name = rest[:open]
		md.Params = params
		md.Type = rest[closeIdx+1:]
		md.Method = true
		return md, IsDescriptor(md.Type)
	}

	name, typ, ok := strings.Cut(rest, ":")
	if !ok || name == "" || !IsDescriptor(typ) {
		return md, false
	}
	md.Name = name
	md.Type = typ
	return md, true
}

// SplitParams 拆分参数列表描述符 "ILjava/lang/String;[J"
func SplitParams(s string) ([]string, bool) {
	var out []string
	for i := 0; i < len(s); {
		start := i
		for i < len(s) && s[i] == '[' {
			i++
		}
		if i >= len(s) {
			return nil, false
		}
		if s[i] == 'L' {
			end := strings.IndexByte(s[i:], ';')
			if end < 0 {
				return nil, false
			}
			i += end + 1
		} else {
			if _, ok := primitiveNames[s[i]]; !ok {
				return nil, false
			}
			i++
		}
		out = append(out, s[start:i])
	}
	return out, true
}
