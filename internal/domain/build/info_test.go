package build_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/drawerpane/internal/domain/build"
)

func TestInfo_String(t *testing.T) {
	info := build.Info{Version: "v0.3.0", Commit: "abc123", GoVersion: "go1.25.3"}
	assert.Equal(t, "drawerpane v0.3.0 (commit abc123, built unknown, go1.25.3)", info.String())
}
