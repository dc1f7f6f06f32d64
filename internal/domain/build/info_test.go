package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	info := Info{Version: "v1.2.0", Commit: "abc123", BuildDate: "2026-10-01", GoVersion: "go1.25.3"}
	assert.Equal(t, "servicestudio v1.2.0 (commit abc123, built 2026-10-01, go1.25.3)", info.String())

	assert.Contains(t, Info{}.String(), "servicestudio dev")
}
