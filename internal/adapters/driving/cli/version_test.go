package cli

import (
	"bytes"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runVersion(t *testing.T, v string, args ...string) string {
	t.Helper()
	original := version
	version = v
	defer func() { version = original }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(append([]string{"version"}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
		_ = versionCmd.Flags().Set("short", "false")
	}()

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestVersionCmd(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotNil(t, versionCmd.Flags().Lookup("short"))
}

func TestVersionCmd_Output(t *testing.T) {
	tests := []struct {
		name    string
		version string
		args    []string
		want    string
	}{
		{"release", "1.0.0", nil, "promptmap version 1.0.0 (" + runtime.Version()},
		{"dev build", "dev", nil, "promptmap version dev"},
		{"platform", "1.0.0", nil, runtime.GOOS + "/" + runtime.GOARCH},
		{"short", "1.0.0", []string{"--short"}, "1.0.0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, runVersion(t, tt.version, tt.args...), tt.want)
		})
	}
}

func TestVersionCmd_ShortIsOnlyVersion(t *testing.T) {
	out := runVersion(t, "2.3.4", "--short")
	assert.Equal(t, "2.3.4", strings.TrimSpace(out))
}
