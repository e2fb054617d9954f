package filter

import (
	"testing"

	"sctrace/internal/extract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent() *extract.TraceEvent {
	return &extract.TraceEvent{
		Timestamp: "2.123",
		Syscall:   "openat",
		Process:   "cat (1234)",
		Pid:       1234,
		HasPid:    true,
		Args:      []string{"0xfffffffffffffffe", "0x16b473548"},
		Result:    "0x3",
		ErrLabel:  "success",
	}
}

func TestCompileAndMatch(t *testing.T) {
	f, err := Compile(`syscall == "openat"`)
	require.NoError(t, err)

	assert.True(t, f.Match(sampleEvent()))

	ev := sampleEvent()
	ev.Syscall = "read"
	assert.False(t, f.Match(ev))
}

func TestMatch_CompoundExpression(t *testing.T) {
	f, err := Compile(`pid == 1234 && syscall startsWith "open"`)
	require.NoError(t, err)

	assert.True(t, f.Match(sampleEvent()))
}

func TestMatch_ErrorField(t *testing.T) {
	f, err := Compile(`error != "" && error != "success"`)
	require.NoError(t, err)

	assert.False(t, f.Match(sampleEvent()))

	ev := sampleEvent()
	ev.ErrLabel = "ENOENT no such file or directory"
	assert.True(t, f.Match(ev))
}

func TestCompile_InvalidExpression(t *testing.T) {
	_, err := Compile(`syscall ==`)
	require.Error(t, err)
}

func TestCompile_NonBooleanExpression(t *testing.T) {
	_, err := Compile(`syscall`)
	require.Error(t, err)
}

func TestMatch_RuntimeErrorKeepsEvent(t *testing.T) {
	f, err := Compile(`1000 / pid > 0`)
	require.NoError(t, err)

	ev := sampleEvent()
	ev.Pid = 0
	assert.True(t, f.Match(ev), "evaluation failure keeps the event")
}

func TestSource(t *testing.T) {
	f, err := Compile(`pid > 0`)
	require.NoError(t, err)
	assert.Equal(t, `pid > 0`, f.Source())
}
