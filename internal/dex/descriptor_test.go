package dex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestJavaName 测试描述符转 Java 类型名
func TestJavaName(t *testing.T) {
	cases := map[string]string{
		"Lcom/a/B;":  "com.a.B",
		"[[I":        "int[][]",
		"[Lcom/a/B;": "com.a.B[]",
		"V":          "void",
		"Q":          "Q",
		"Lbroken":    "Lbroken",
	}
	for in, want := range cases {
		assert.Equal(t, want, JavaName(in), in)
	}
}

// TestDescriptor 测试 Java 类型名转描述符
func TestDescriptor(t *testing.T) {
	assert.Equal(t, "Lcom/a/B;", Descriptor("com.a.B"))
	assert.Equal(t, "[[J", Descriptor("long[][]"))
	assert.Equal(t, "Lcom/a/B;", Descriptor("Lcom/a/B;"))
	assert.Equal(t, "", Descriptor(""))
}

// TestParseMemberDescriptor 测试成员描述符拆分
func TestParseMemberDescriptor(t *testing.T) {
	md, ok := ParseMemberDescriptor("Lcom/a/B;->run([ILjava/lang/String;J)V")
	assert.True(t, ok)
	assert.True(t, md.Method)
	assert.Equal(t, "Lcom/a/B;", md.Class)
	assert.Equal(t, "run", md.Name)
	assert.Equal(t, []string{"[I", "Ljava/lang/String;", "J"}, md.Params)
	assert.Equal(t, "V", md.Type)

	md, ok = ParseMemberDescriptor("Lcom/a/B;->count:I")
	assert.True(t, ok)
	assert.False(t, md.Method)
	assert.Equal(t, "count", md.Name)
	assert.Equal(t, "I", md.Type)

	for _, bad := range []string{"", "com.a.B->x:I", "Lcom/a/B;->", "Lcom/a/B;->m(X)V", "Lcom/a/B;->f:"} {
		_, ok := ParseMemberDescriptor(bad)
		assert.False(t, ok, bad)
	}
}
