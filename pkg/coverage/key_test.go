package coverage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultHashDeterministic(t *testing.T) {
	key := BlockKey{ContextID: 10, PC: 0x1000}
	assert.Equal(t, DefaultHash(key), DefaultHash(key))
}

func TestDefaultHashOrderSensitive(t *testing.T) {
	// Swapping the two field values must not produce a trivial collision.
	a := BlockKey{ContextID: 0x1000, PC: 10}
	b := BlockKey{ContextID: 10, PC: 0x1000}
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, DefaultHash(a), DefaultHash(b))
}

func TestDefaultHashFieldSensitivity(t *testing.T) {
	base := BlockKey{ContextID: 10, PC: 0x1000}
	assert.NotEqual(t, DefaultHash(base), DefaultHash(BlockKey{ContextID: 11, PC: 0x1000}))
	assert.NotEqual(t, DefaultHash(base), DefaultHash(BlockKey{ContextID: 10, PC: 0x1004}))
}
