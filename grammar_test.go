package argdef

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt64(t *testing.T) {
	for _, _case := range []struct {
		in       string
		expected int64
	}{
		// variants of 0xdead (the leading 0 form is octal)
		{"57005", 57005},
		{"0x0000DEAD", 57005},
		{"0157255", 57005},
		{"+57005", 57005},
		{"-57005", -57005},
		{"-0x0000DEAD", -57005},
		{"-0157255", -57005},
		{"0", 0},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	} {
		n, err := parseInt64(_case.in)
		require.NoError(t, err, "input %q", _case.in)
		assert.EqualValues(t, _case.expected, n, "input %q", _case.in)
	}

	for _, in := range []string{
		"9223372036854775808",
		"-9223372036854775809",
		"",
		" ",
		" 1",
		"1 ",
		"++1",
		"1.0",
		"1.",
		"0xabcdefg",
		"o10",
		"10o",
		"false",
		"1_000",
		"0b101",
		"0o17",
	} {
		_, err := parseInt64(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseFloat64(t *testing.T) {
	for _, _case := range []struct {
		in       string
		expected float64
	}{
		{"5.7005e4", 57005.0},
		{"57005", 57005.0},
		{"57005.0", 57005.0},
		{"-5.7005e4", -57005.0},
		{"+3.14", 3.14},
		{"0", 0},
		{".5", 0.5},
	} {
		d, err := parseFloat64(_case.in)
		require.NoError(t, err, "input %q", _case.in)
		assert.EqualValues(t, _case.expected, d, "input %q", _case.in)
	}

	for _, in := range []string{"inf", "INF", "Infinity", "INFINITY", "+inf"} {
		d, err := parseFloat64(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, math.IsInf(d, 1), "input %q", in)
	}
	for _, in := range []string{"-inf", "-INFINITY"} {
		d, err := parseFloat64(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, math.IsInf(d, -1), "input %q", in)
	}
	for _, in := range []string{"nan", "NaN", "NAN", "-NaN"} {
		d, err := parseFloat64(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, math.IsNaN(d), "input %q", in)
	}

	// Out of range saturates instead of failing, like strtod.
	d, err := parseFloat64("1e999")
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))

	for _, in := range []string{
		"--3.14",
		"++3.14",
		"3.14f",
		"",
		" ",
		" 1.0",
		"1.0 ",
		"foo",
		"1_000.5",
	} {
		_, err := parseFloat64(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"1", "true", "True", "TRUE"} {
		b, err := parseBool(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, b, "input %q", in)
	}
	for _, in := range []string{"0", "false", "False", "FALSE"} {
		b, err := parseBool(in)
		require.NoError(t, err, "input %q", in)
		assert.False(t, b, "input %q", in)
	}
	for _, in := range []string{"t", "yes", "10", "truet", "TRue", "fALSE", "", " ", "1 "} {
		_, err := parseBool(in)
		assert.Error(t, err, "input %q", in)
	}
}
