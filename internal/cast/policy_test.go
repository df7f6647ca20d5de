package cast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveAutomaticDefaults(t *testing.T) {
	assert.Equal(t, Copy, Resolve(Automatic, false, 1<<20, 8),
		"automatic is safety-first duplication regardless of size")
	assert.Equal(t, Reference, Resolve(AutomaticReference, false, 1<<20, 8))
}

func TestResolveMoveHeuristic(t *testing.T) {
	tests := []struct {
		name      string
		fixed     bool
		elemCount int
		elemSize  int
		want      Policy
	}{
		{"fixed size always copies", true, 4096, 4, Copy},
		{"small payload copies", false, 100, 4, Copy},
		{"just under threshold copies", false, 255, 4, Copy},
		{"at threshold moves", false, 256, 4, Move},
		{"large payload moves", false, 4096, 4, Move},
		{"element size matters", false, 256, 2, Copy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(Move, tt.fixed, tt.elemCount, tt.elemSize))
		})
	}
}

func TestResolvePassThrough(t *testing.T) {
	for _, p := range []Policy{Copy, Reference, ReferenceParent} {
		assert.Equal(t, p, Resolve(p, false, 4096, 4))
		assert.Equal(t, p, Resolve(p, true, 1, 1), "pass-through ignores size facts")
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, Copy, Resolve(Move, true, 4096, 8))
		assert.Equal(t, Move, Resolve(Move, false, 4096, 8))
	}
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "automatic", Automatic.String())
	assert.Equal(t, "move", Move.String())
	assert.Equal(t, "reference-parent", ReferenceParent.String())
}
