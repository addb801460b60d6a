package idgen_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
)

func TestShortCode(t *testing.T) {
	gen := idgen.NewShortCode(0)
	base62 := regexp.MustCompile(`^[0-9A-Za-z]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code := gen.Generate()
		require.Regexp(t, base62, code)
		seen[code] = true
	}
	// 200 draws from 62^8 codes never collide in practice
	assert.Len(t, seen, 200)

	assert.Len(t, idgen.NewShortCode(12).Generate(), 12)
}

func TestSequential(t *testing.T) {
	gen := idgen.NewSequential("deck")
	assert.Equal(t, "deck_1", gen.Generate())
	assert.Equal(t, "deck_2", gen.Generate())
	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

func TestUUID(t *testing.T) {
	id := idgen.NewUUID("team").Generate()
	assert.True(t, strings.HasPrefix(id, "team_"))
	assert.Len(t, id, len("team_")+36)
}
