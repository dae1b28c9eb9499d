package clipboard

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeSystem(t *testing.T, unsupported bool, writeErr error) *string {
	t.Helper()
	prevSystem, prevTerminal := system, terminal
	t.Cleanup(func() { system, terminal = prevSystem, prevTerminal })

	var got string
	system.unsupported = func() bool { return unsupported }
	system.write = func(s string) error {
		if writeErr != nil {
			return writeErr
		}
		got = s
		return nil
	}
	return &got
}

func fakeTerminal(supported bool) *bytes.Buffer {
	var buf bytes.Buffer
	terminal.out = &buf
	terminal.supported = func() bool { return supported }
	return &buf
}

func TestCopyUsesSystemClipboard(t *testing.T) {
	got := fakeSystem(t, false, nil)
	out := fakeTerminal(true)

	require.NoError(t, Copy("a\nb"))
	assert.Equal(t, "a\nb", *got)
	assert.Zero(t, out.Len())
}

func TestCopyFallsBackToOSC52(t *testing.T) {
	fakeSystem(t, false, errors.New("no xclip"))
	out := fakeTerminal(true)

	require.NoError(t, Copy("hi"))
	assert.Equal(t, "\x1b]52;c;aGk=\x07", out.String())
}

func TestCopyUnavailable(t *testing.T) {
	fakeSystem(t, true, nil)
	fakeTerminal(false)

	err := Copy("hi")
	require.ErrorIs(t, err, ErrUnavailable)
}
