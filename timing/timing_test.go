package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTiming(t *testing.T) {

	fake := time.Unix(1000, 0)
	now = func() time.Time { return fake }
	defer func() { now = time.Now }()

	Init()
	assert.Equal(t, float32(0), GetAvgFPS())

	for i := 0; i < 10; i++ {
		FrameStarted()
		fake = fake.Add(20 * time.Millisecond)
		FrameEnded()
	}

	assert.InDelta(t, 0.02, DT(), 1e-6)
	assert.InDelta(t, 50, GetAvgFPS(), 1e-3)
	assert.Equal(t, 200*time.Millisecond, ElapsedTime())
}

func TestAvgFPSWindow(t *testing.T) {

	fake := time.Unix(0, 0)
	now = func() time.Time { return fake }
	defer func() { now = time.Now }()

	Init()

	// Slow frames that should fall out of the window
	for i := 0; i < avgFrameCount; i++ {
		FrameStarted()
		fake = fake.Add(100 * time.Millisecond)
		FrameEnded()
	}
	assert.InDelta(t, 10, GetAvgFPS(), 1e-3)

	for i := 0; i < avgFrameCount; i++ {
		FrameStarted()
		fake = fake.Add(10 * time.Millisecond)
		FrameEnded()
	}
	assert.InDelta(t, 100, GetAvgFPS(), 1e-2)
}
