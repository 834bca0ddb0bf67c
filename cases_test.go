package argdef

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type declSpec struct {
	name  string
	short string
	flags Flag
}

type parseCase struct {
	argv   []string
	decls  []declSpec
	err    error    // expected Submit result
	output []string // substrings the captured output must contain
	check  func(t *testing.T, args map[string]*Arg)
}

func (pc parseCase) run(t *testing.T) {
	t.Helper()
	var out bytes.Buffer
	ctx, err := NewContext(pc.argv, Output(&out))
	require.NoError(t, err)
	defer ctx.Destroy()
	args := make(map[string]*Arg)
	for _, d := range pc.decls {
		a, err := ctx.Declare(d.name, d.short, "", "", d.flags)
		require.NoError(t, err, "declaring %q", d.name)
		args[d.name] = a
	}
	err = ctx.Submit()
	assert.EqualValues(t, pc.err, err)
	for _, want := range pc.output {
		assert.True(t, strings.Contains(out.String(), want),
			"output %q should contain %q", out.String(), want)
	}
	if pc.err == nil {
		assert.Empty(t, out.String(), "successful submission should print nothing")
	}
	if pc.check != nil && err == nil {
		pc.check(t, args)
	}
}

func runCases(t *testing.T, cases []parseCase) {
	for _, _case := range cases {
		_case.run(t)
	}
}

func mustString(t *testing.T, a *Arg) string {
	t.Helper()
	s, ok := a.TryString()
	require.True(t, ok)
	return s
}

func mustInt(t *testing.T, a *Arg) int64 {
	t.Helper()
	n, ok := a.TryInt()
	require.True(t, ok)
	return n
}

func mustDouble(t *testing.T, a *Arg) float64 {
	t.Helper()
	d, ok := a.TryDouble()
	require.True(t, ok)
	return d
}

func mustBool(t *testing.T, a *Arg) bool {
	t.Helper()
	b, ok := a.TryBool()
	require.True(t, ok)
	return b
}
