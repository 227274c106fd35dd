package dex

import "unicode/utf16"

// decodeMUTF8 解码 Modified UTF-8，遇到 0 字节结束。
// 补充平面字符以代理对形式各自编码为三字节序列。
func decodeMUTF8(b []byte) (string, error) {
	ascii := true
	end := len(b)
	for i, c := range b {
		if c == 0 {
			end = i
			break
		}
		if c >= 0x80 {
			ascii = false
		}
	}
	if ascii {
		return string(b[:end]), nil
	}

	units := make([]uint16, 0, end)
	for i := 0; i < end; {
		c := b[i]
		switch {
		case c < 0x80:
			units = append(units, uint16(c))
			i++
		case c&0xe0 == 0xc0:
			if i+1 >= end {
				return "", &FormatError{Offset: i, Reason: "bad mutf-8 sequence"}
			}
			units = append(units, uint16(c&0x1f)<<6|uint16(b[i+1]&0x3f))
			i += 2
		case c&0xf0 == 0xe0:
			if i+2 >= end {
				return "", &FormatError{Offset: i, Reason: "bad mutf-8 sequence"}
			}
			units = append(units, uint16(c&0x0f)<<12|uint16(b[i+1]&0x3f)<<6|uint16(b[i+2]&0x3f))
			i += 3
		default:
			return "", &FormatError{Offset: i, Reason: "bad mutf-8 sequence"}
		}
	}
	return string(utf16.Decode(units)), nil
}

// EncodeMUTF8 将字符串编码为 Modified UTF-8（不含结尾 0），返回编码结果与 UTF-16 长度
func EncodeMUTF8(s string) ([]byte, int) {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 0, len(units))
	for _, u := range units {
		switch {
		case u != 0 && u < 0x80:
			out = append(out, byte(u))
		case u < 0x800:
			out = append(out, 0xc0|byte(u>>6), 0x80|byte(u&0x3f))
		default:
			out = append(out, 0xe0|byte(u>>12), 0x80|byte(u>>6&0x3f), 0x80|byte(u&0x3f))
		}
	}
	return out, len(units)
}
