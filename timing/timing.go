package timing

import "time"

const avgFrameCount = 60

var (
	dt          float32
	frameStart  time.Time
	startTime   time.Time
	frameTimes  [avgFrameCount]float32
	frameIndex  int
	framesTotal uint64

	// now is swapped in tests
	now = time.Now
)

func Init() {
	startTime = now()
	frameStart = startTime
	dt = 0.01
	frameIndex = 0
	framesTotal = 0
	frameTimes = [avgFrameCount]float32{}
}

func FrameStarted() {
	frameStart = now()
}

func FrameEnded() {

	dt = float32(now().Sub(frameStart).Seconds())

	frameTimes[frameIndex] = dt
	frameIndex = (frameIndex + 1) % avgFrameCount
	framesTotal++
}

// DT returns the duration of the last frame in seconds
func DT() float32 {
	return dt
}

// GetAvgFPS returns the frames per second averaged over the last 60 frames
func GetAvgFPS() float32 {

	count := framesTotal
	if count > avgFrameCount {
		count = avgFrameCount
	}

	if count == 0 {
		return 0
	}

	var sum float32
	for i := uint64(0); i < count; i++ {
		sum += frameTimes[i]
	}

	if sum == 0 {
		return 0
	}

	return float32(count) / sum
}

// ElapsedTime returns the time since Init was called
func ElapsedTime() time.Duration {
	return now().Sub(startTime)
}
