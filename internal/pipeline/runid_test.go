package pipeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDv7Generator_Format(t *testing.T) {
	id := UUIDv7Generator{}.Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Len(t, id, 36)
}

func TestUUIDv7Generator_Unique(t *testing.T) {
	gen := UUIDv7Generator{}
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := gen.Generate()
		assert.False(t, seen[id], "duplicate run ID %s", id)
		seen[id] = true
	}
}

func TestRun_DefaultRunIDIsUUIDv7(t *testing.T) {
	report, err := Run(t.Context(), basicConfig(t))
	require.NoError(t, err)

	parsed, err := uuid.Parse(report.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
