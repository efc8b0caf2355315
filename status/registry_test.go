package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryCachedPointers(t *testing.T) {
	r := NewRegistry()

	drops := r.Ints.Get("drops")
	drops.Add(2)
	assert.Same(t, drops, r.Ints.Get("drops"))
	assert.Equal(t, int64(2), r.Ints.Get("drops").Load())

	r.Floats.Get("ball.speed").Set(12.25)
	assert.Equal(t, 12.25, r.Floats.Get("ball.speed").Get())

	r.Bools.Get("animating").Store(true)
	assert.Equal(t, 3, r.TotalCount())
}

func TestRegistryLinesSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("frames").Store(10)
	r.Ints.Get("drops").Store(1)
	r.Floats.Get("ball.speed").Set(3)
	r.Bools.Get("animating").Store(false)

	assert.Equal(t, []string{
		"drops 1",
		"frames 10",
		"ball.speed 3.0",
		"animating false",
	}, r.Lines())
}
