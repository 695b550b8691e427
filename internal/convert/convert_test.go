package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlipYInvolution(t *testing.T) {
	assert.Equal(t, 12.5, FlipY(FlipY(12.5)))
}

func TestPxToMm(t *testing.T) {
	assert.InDelta(t, 2.54, PxToMm(10), 1e-9)
}

func TestPxToMil(t *testing.T) {
	assert.Equal(t, 25.0, PxToMil(2.5))
	assert.Equal(t, -25.0, PxToMil(-2.5))
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, math.Pi, DegToRad(180), 1e-9)
}

func TestNormalizeDeg(t *testing.T) {
	assert.InDelta(t, 10.0, NormalizeDeg(370), 1e-9)
	assert.InDelta(t, 350.0, NormalizeDeg(-10), 1e-9)
}

func TestArcEndpointToCenterAnglesInRange(t *testing.T) {
	ac, ok := ArcEndpointToCenter(0, 0, 5, 5, 0, false, true, 10, 0)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, ac.StartAngleDeg, 0.0)
	assert.Less(t, ac.StartAngleDeg, 360.0)
}

func TestArcSweepFlagReversesDirection(t *testing.T) {
	a, ok := ArcEndpointToCenter(0, 0, 5, 5, 0, false, true, 10, 0)
	assert.True(t, ok)
	b, ok := ArcEndpointToCenter(0, 0, 5, 5, 0, false, false, 10, 0)
	assert.True(t, ok)
	assert.NotEqual(t, math.Signbit(a.SweepExtentDeg), math.Signbit(b.SweepExtentDeg))
}

func TestArcDegenerateRejected(t *testing.T) {
	_, ok := ArcEndpointToCenter(0, 0, 0, 0, 0, false, true, 10, 0)
	assert.False(t, ok)
	_, ok = ArcEndpointToCenter(5, 5, 5, 5, 0, false, true, 5, 5)
	assert.False(t, ok)
}
