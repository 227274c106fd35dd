package result

import (
	"testing"

	"github.com/apk-analysis/dexkit-go/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDecode_Empty 测试空缓冲区解码为零值
func TestDecode_Empty(t *testing.T) {
	classes, err := Classes(nil)
	require.NoError(t, err)
	assert.Nil(t, classes)

	batch, err := BatchMethods([]byte{})
	require.NoError(t, err)
	assert.Nil(t, batch)
}

// TestDecode_WrongIdentifier 测试载荷类型不符时报错
func TestDecode_WrongIdentifier(t *testing.T) {
	payload := (&query.FindClass{Matcher: &query.ClassMatcher{ClassName: query.Equals("a.B")}}).Encode()

	_, err := Classes(payload)
	assert.ErrorIs(t, err, ErrUnexpectedPayload)

	_, err = Methods([]byte("short"))
	assert.ErrorIs(t, err, ErrUnexpectedPayload)
}

// TestNames 测试类名与方法名的派生
func TestNames(t *testing.T) {
	c := ClassData{Descriptor: "Lcom/demo/Greeter;"}
	assert.Equal(t, "com.demo.Greeter", c.Name())

	m := MethodData{Descriptor: "Lcom/demo/Greeter;->greet(Ljava/lang/String;I)V"}
	assert.Equal(t, "greet", m.Name())

	assert.Empty(t, MethodData{Descriptor: "garbage"}.Name())
}
