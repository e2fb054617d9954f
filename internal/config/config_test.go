package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_BasicCommand(t *testing.T) {
	args := []string{"sctrace", "--", "echo", "hello"}

	cfg, err := ParseArgs(args)
	require.NoError(t, err)
	assert.Equal(t, "echo", cfg.Command)
	assert.Equal(t, []string{"hello"}, cfg.Args)
	assert.Empty(t, cfg.Input)
	assert.False(t, cfg.NoColor)
}

func TestParseArgs_InputFileWithoutCommand(t *testing.T) {
	args := []string{"sctrace", "--input", "export.xml"}

	cfg, err := ParseArgs(args)
	require.NoError(t, err)
	assert.Equal(t, "export.xml", cfg.Input)
	assert.Empty(t, cfg.Command)
}

func TestParseArgs_ShortFlags(t *testing.T) {
	args := []string{"sctrace", "-i", "export.xml", "-o", "out.txt", "-f", `syscall == "open"`}

	cfg, err := ParseArgs(args)
	require.NoError(t, err)
	assert.Equal(t, "export.xml", cfg.Input)
	assert.Equal(t, "out.txt", cfg.Output)
	assert.Equal(t, `syscall == "open"`, cfg.Filter)
}

func TestParseArgs_BooleanFlags(t *testing.T) {
	args := []string{"sctrace", "--no-color", "--otel", "--keep-trace", "--", "ls"}

	cfg, err := ParseArgs(args)
	require.NoError(t, err)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.OTEL)
	assert.True(t, cfg.KeepTrace)
	assert.Equal(t, "ls", cfg.Command)
}

func TestParseArgs_Template(t *testing.T) {
	args := []string{"sctrace", "--template", "System Trace", "--", "ls"}

	cfg, err := ParseArgs(args)
	require.NoError(t, err)
	assert.Equal(t, "System Trace", cfg.Template)
}

func TestParseArgs_NoArguments(t *testing.T) {
	_, err := ParseArgs(nil)
	require.Error(t, err)
}

func TestParseArgs_NoCommandAndNoInput(t *testing.T) {
	_, err := ParseArgs([]string{"sctrace"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Usage:")
}

func TestParseArgs_NoCommandAfterSeparator(t *testing.T) {
	_, err := ParseArgs([]string{"sctrace", "--"})
	require.Error(t, err)
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	_, err := ParseArgs([]string{"sctrace", "--bogus", "--", "ls"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--bogus")
}

func TestParseArgs_FlagMissingValue(t *testing.T) {
	_, err := ParseArgs([]string{"sctrace", "--filter"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--filter")
}

func TestFullCommand(t *testing.T) {
	cfg, err := ParseArgs([]string{"sctrace", "--", "bash", "-c", "echo hi"})
	require.NoError(t, err)
	assert.Equal(t, []string{"bash", "-c", "echo hi"}, cfg.FullCommand())
}

func TestParseEnv_Defaults(t *testing.T) {
	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.XcrunPath)
	assert.NotEmpty(t, cfg.Template)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("SCTRACE_XCRUN_PATH", "/opt/bin/xcrun")
	t.Setenv("SCTRACE_TEMPLATE", "Custom")
	t.Setenv("NO_COLOR", "1")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin/xcrun", cfg.XcrunPath)
	assert.Equal(t, "Custom", cfg.Template)
	assert.True(t, cfg.ColorDisabled())
}

func TestParseOTELConfig_EndpointPriority(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	cfg, err := ParseOTELConfig()
	require.NoError(t, err)
	assert.Equal(t, "collector:4318", cfg.GetEndpoint())

	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "traces:4318")
	cfg, err = ParseOTELConfig()
	require.NoError(t, err)
	assert.Equal(t, "traces:4318", cfg.GetEndpoint())
}

func TestParseResourceAttributes(t *testing.T) {
	cfg := &OTELConfig{ResourceAttributes: "team=infra, region = eu-west-1"}

	attrs := cfg.ParseResourceAttributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, "team", string(attrs[0].Key))
	assert.Equal(t, "infra", attrs[0].Value.AsString())
	assert.Equal(t, "region", string(attrs[1].Key))
	assert.Equal(t, "eu-west-1", attrs[1].Value.AsString())
}
