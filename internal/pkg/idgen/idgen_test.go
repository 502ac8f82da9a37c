package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-session-api/internal/pkg/idgen"
)

func TestUUIDGenerator_Prefixed(t *testing.T) {
	id := idgen.NewUUID("session").Generate()

	require.True(t, strings.HasPrefix(id, "session_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "session_"))
	assert.NoError(t, err)
}

func TestUUIDGenerator_Unique(t *testing.T) {
	gen := idgen.NewUUID("")
	assert.NotEqual(t, gen.Generate(), gen.Generate())
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("monster")
	assert.Equal(t, "monster_1", gen.Generate())
	assert.Equal(t, "monster_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}
