package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	t.Run("zero distance to itself", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineKm(1.3521, 103.8198, 1.3521, 103.8198))
	})

	t.Run("one degree of latitude is ~111.19 km", func(t *testing.T) {
		d := HaversineKm(1.0, 103.8, 2.0, 103.8)
		assert.InDelta(t, 111.19, d, 0.1)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := HaversineKm(1.3000, 103.8558, 1.3525, 103.9447)
		b := HaversineKm(1.3525, 103.9447, 1.3000, 103.8558)
		assert.InDelta(t, a, b, 1e-9)
	})
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 1.23, RoundKm(1.2345))
	assert.Equal(t, 1.24, RoundKm(1.235))
	assert.Equal(t, 0.0, RoundKm(0.004))
}
