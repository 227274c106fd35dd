package dex

import "encoding/binary"

// cursor 是带越界检查的顺序读取器，首次越界后记录错误，后续读取均返回零值
type cursor struct {
	b   []byte
	off int
	err error
}

func newCursor(b []byte, off uint32) *cursor {
	c := &cursor{b: b, off: int(off)}
	if int(off) > len(b) {
		c.fail("offset out of range")
	}
	return c
}

func (c *cursor) fail(reason string) {
	if c.err == nil {
		c.err = &FormatError{Offset: c.off, Reason: reason}
	}
}

func (c *cursor) need(n int) bool {
	if c.err != nil {
		return false
	}
	if n < 0 || c.off+n > len(c.b) {
		c.fail("unexpected end of data")
		return false
	}
	return true
}

// remaining 返回剩余可读字节数
func (c *cursor) remaining() int {
	if c.err != nil {
		return 0
	}
	return len(c.b) - c.off
}

func (c *cursor) u8() uint8 {
	if !c.need(1) {
		return 0
	}
	v := c.b[c.off]
	c.off++
	return v
}

func (c *cursor) u16() uint16 {
	if !c.need(2) {
		return 0
	}
	v := binary.LittleEndian.Uint16(c.b[c.off:])
	c.off += 2
	return v
}

func (c *cursor) u32() uint32 {
	if !c.need(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(c.b[c.off:])
	c.off += 4
	return v
}

func (c *cursor) bytes(n int) []byte {
	if !c.need(n) {
		return nil
	}
	v := c.b[c.off : c.off+n]
	c.off += n
	return v
}

// uleb 读取 ULEB128，最多 5 字节
func (c *cursor) uleb() uint32 {
	if c.err != nil {
		return 0
	}
	var v uint32
	for i := 0; i < 5; i++ {
		if !c.need(1) {
			return 0
		}
		b := c.b[c.off]
		c.off++
		v |= uint32(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return v
		}
	}
	c.fail("uleb128 too long")
	return 0
}

// sleb 读取 SLEB128
func (c *cursor) sleb() int32 {
	if c.err != nil {
		return 0
	}
	var v int32
	shift := 0
	for i := 0; i < 5; i++ {
		if !c.need(1) {
			return 0
		}
		b := c.b[c.off]
		c.off++
		v |= int32(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 32 && b&0x40 != 0 {
				v |= -1 << shift
			}
			return v
		}
	}
	c.fail("sleb128 too long")
	return 0
}

// ulebp1 读取 uleb128p1，-1 表示 NO_INDEX
func (c *cursor) ulebp1() int64 {
	return int64(c.uleb()) - 1
}

// fits 判断 count 个 size 字节的元素是否可能放得下，防止恶意长度导致超大分配
func (c *cursor) fits(count uint32, size int) bool {
	if uint64(count)*uint64(size) > uint64(c.remaining()) {
		c.fail("element count exceeds data")
		return false
	}
	return true
}

func (c *cursor) align4() {
	if pad := c.off % 4; pad != 0 {
		c.need(4 - pad)
		if c.err == nil {
			c.off += 4 - pad
		}
	}
}
