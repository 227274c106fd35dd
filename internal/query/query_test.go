package query

import (
	"testing"

	"github.com/apk-analysis/dexkit-go/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFindMethod() *FindMethod {
	return &FindMethod{
		Scope: Scope{
			SearchPackages:  []string{"com.demo"},
			ExcludePackages: []string{"com.demo.internal"},
			InClasses:       []int64{1<<32 | 7},
		},
		FindFirst: true,
		Matcher: &MethodMatcher{
			Name:        Equals("login"),
			AccessFlags: &AccessFlagsMatcher{Flags: 0x0009, MatchType: schema.MatchTypeContains},
			ParamTypes:  []StringMatcher{*Equals("java.lang.String"), *Contains("")},
			ParamCount:  &IntRange{Min: 2, Max: 2},
			OpCodes: &OpCodesMatcher{
				OpCodes:   []int16{0x1a, -1, 0x0e},
				MatchType: schema.OpCodeMatchTypeEndWith,
			},
			UsingStrings: []StringMatcher{{Value: "^token", MatchType: schema.StringMatchTypeSimilarRegex, IgnoreCase: true}},
			UsingFields: []UsingFieldMatcher{{
				Field:     FieldMatcher{Name: Equals("DEBUG")},
				UsingType: schema.UsingTypeGet,
			}},
			InvokeMethods: []StringMatcher{*EndsWith("println(Ljava/lang/String;)V")},
		},
	}
}

// TestFindMethod_EncodeDecode 测试编码后在边界处还原出相同请求
func TestFindMethod_EncodeDecode(t *testing.T) {
	want := sampleFindMethod()
	buf := want.Encode()
	assert.True(t, schema.BufferHasIdentifier(buf, schema.FindMethodIdentifier))

	got, err := DecodeFindMethod(buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestBatchFind_EncodeDecode 测试批量字符串查询
func TestBatchFind_EncodeDecode(t *testing.T) {
	want := &BatchFindClassUsingStrings{
		Scope: Scope{IgnorePackagesCase: true},
		Groups: []StringMatchersGroup{
			{UnionKey: "net", Matchers: []StringMatcher{*Contains("http://"), *Equals("GET")}},
			{UnionKey: "log", Matchers: []StringMatcher{*StartsWith("debug:")}},
		},
	}
	got, err := DecodeBatchFindClassUsingStrings(want.Encode())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestDecode_WrongIdentifier 测试载荷类型不匹配
func TestDecode_WrongIdentifier(t *testing.T) {
	buf := (&FindClass{}).Encode()
	_, err := DecodeFindMethod(buf)
	assert.ErrorIs(t, err, ErrMalformedQuery)

	_, err = DecodeFindClass(buf)
	assert.NoError(t, err)
}

// TestDecode_ShortBuffer 测试过短的缓冲区
func TestDecode_ShortBuffer(t *testing.T) {
	for _, buf := range [][]byte{nil, {}, {1, 2, 3}, {0xff, 0xff, 0, 0, 'F', 'C', 'L', '1'}} {
		_, err := DecodeFindClass(buf)
		assert.ErrorIs(t, err, ErrMalformedQuery)
	}
}

// TestDecode_TruncatedPayload 测试截断载荷不会 panic
func TestDecode_TruncatedPayload(t *testing.T) {
	buf := sampleFindMethod().Encode()
	for n := 8; n < len(buf); n++ {
		assert.NotPanics(t, func() {
			q, err := DecodeFindMethod(buf[:n])
			if err != nil {
				assert.ErrorIs(t, err, ErrMalformedQuery)
				assert.Nil(t, q)
			}
		})
	}
}

// TestDecode_CorruptedPayload 测试随机破坏载荷不会 panic
func TestDecode_CorruptedPayload(t *testing.T) {
	buf := sampleFindMethod().Encode()
	for i := 8; i < len(buf); i++ {
		corrupted := append([]byte(nil), buf...)
		corrupted[i] ^= 0xff
		assert.NotPanics(t, func() {
			_, _ = DecodeFindMethod(corrupted)
		})
	}
}

// TestValidate_Rejects 测试边界校验
func TestValidate_Rejects(t *testing.T) {
	badEnum := &FindClass{Matcher: &ClassMatcher{ClassName: &StringMatcher{Value: "x", MatchType: 9}}}
	_, err := DecodeFindClass(badEnum.Encode())
	assert.ErrorIs(t, err, ErrMalformedQuery)

	badRange := &FindField{Matcher: &FieldMatcher{Name: Equals("a")}}
	assert.NoError(t, badRange.Validate())
	badMethod := &FindMethod{Matcher: &MethodMatcher{ParamCount: &IntRange{Min: 3, Max: 1}}}
	_, err = DecodeFindMethod(badMethod.Encode())
	assert.ErrorIs(t, err, ErrMalformedQuery)

	dup := &BatchFindMethodUsingStrings{Groups: []StringMatchersGroup{
		{UnionKey: "a", Matchers: []StringMatcher{*Equals("x")}},
		{UnionKey: "a", Matchers: []StringMatcher{*Equals("y")}},
	}}
	_, err = DecodeBatchFindMethodUsingStrings(dup.Encode())
	assert.ErrorIs(t, err, ErrMalformedQuery)

	empty := &BatchFindMethodUsingStrings{}
	assert.Error(t, empty.Validate())
}

// TestIntRange_Contains 测试区间判断
func TestIntRange_Contains(t *testing.T) {
	var open *IntRange
	assert.True(t, open.Contains(100))

	r := &IntRange{Min: 1, Max: 3}
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(0))
	assert.False(t, r.Contains(4))
}
