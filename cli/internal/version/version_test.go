package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		current, other string
		want           Comparison
	}{
		{"0.1.0", "0.2.0", Outdated},
		{"v0.2.0", "0.2.0", UpToDate},
		{"1.0.0", "0.9.9", Ahead},
		{"1.0.0-rc.1", "1.0.0", Outdated},
	}
	for _, tt := range tests {
		t.Run(tt.current+"_vs_"+tt.other, func(t *testing.T) {
			got, err := Check(tt.current, tt.other)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheck_Invalid(t *testing.T) {
	_, err := Check("dev", "1.0.0")
	assert.Error(t, err)
	_, err = Check("1.0.0", "latest")
	assert.Error(t, err)
}

func TestSatisfies(t *testing.T) {
	ok, err := Satisfies("0.1.0", ">= 0.1, < 1.0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Satisfies("1.2.0", ">= 0.1, < 1.0")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Satisfies("0.1.0", "~~")
	assert.Error(t, err)
}

func TestInfoStrings(t *testing.T) {
	info := Info{Version: "1.2.3", Platform: "linux/amd64", GoVersion: "go1.24.1", BuildDate: "today", GitCommit: "abc"}
	assert.Equal(t, "pslcheck version 1.2.3 (linux/amd64 go1.24.1)", info.String())
	assert.Contains(t, info.FullString(), "Git Commit: abc")
}
