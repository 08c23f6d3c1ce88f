package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabCache(t *testing.T) {
	lc := NewLabCache(true, 3)

	assert.Equal(t, ToLab(0xff0000), lc.Get(0xff0000))
	assert.Equal(t, ToLab(0x00ff00), lc.Get(0x00ff00))
	assert.Equal(t, ToLab(0x0000ff), lc.Get(0x0000ff))
	assert.Equal(t, 3, lc.Len())
	assert.Equal(t, 0, lc.Flushes())

	// Hits never evict.
	lc.Get(0xff0000)
	assert.Equal(t, 3, lc.Len())

	// A miss at capacity flushes everything, then stores the new entry.
	assert.Equal(t, ToLab(0xffff00), lc.Get(0xffff00))
	assert.Equal(t, 1, lc.Len())
	assert.Equal(t, 1, lc.Flushes())

	lc.Reset()
	assert.Equal(t, 0, lc.Len())
}

func TestLabCache_Disabled(t *testing.T) {
	lc := NewLabCache(false, 3)

	assert.Equal(t, ToLab(0x336699), lc.Get(0x336699))
	assert.Equal(t, 0, lc.Len())
}

func TestLabCache_DefaultCapacity(t *testing.T) {
	lc := NewLabCache(true, 0)
	for i := 0; i < DefaultMaxCacheSize; i++ {
		lc.Get(Color(i))
	}
	assert.Equal(t, DefaultMaxCacheSize, lc.Len())
	assert.Equal(t, 0, lc.Flushes())
}
