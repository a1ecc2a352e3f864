package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositive(t *testing.T) {
	assert.NoError(t, Positive("Tape", "w", 1.5))
	err := Positive("Tape", "w", 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `field "w"`)
}

func TestOrderedPair(t *testing.T) {
	assert.NoError(t, OrderedPair("Helix", "r", [2]float64{10, 20}))
	assert.Error(t, OrderedPair("Helix", "r", [2]float64{20, 10}))
	assert.Error(t, OrderedPair("Helix", "r", [2]float64{10, 10}))
}

func TestOneOf(t *testing.T) {
	assert.NoError(t, OneOf("Chamfer", "side", "HP", "HP", "BP"))
	assert.Error(t, OneOf("Chamfer", "side", "LP", "HP", "BP"))
}

func TestLenEqual(t *testing.T) {
	assert.NoError(t, LenEqual("ModelAxi", "turns", 3, 3))
	assert.Error(t, LenEqual("ModelAxi", "turns", 3, 2))
}
