package content

import "math"

const (
	// CountUpSteps is the number of increments of a statistic animation.
	CountUpSteps = 50
	// CountUpIntervalMillis is the time between two frames.
	CountUpIntervalMillis = 40
	// CountUpDelayMillis is the pause before the animation starts.
	CountUpDelayMillis = 1000
)

// CountUp returns the displayed values of a linear count-up to target in
// steps increments. Each frame is floored and the last frame is exactly
// target. A non-positive target or step count yields just target.
func CountUp(target, steps int) []int {
	if target <= 0 || steps <= 0 {
		return []int{target}
	}
	increment := float64(target) / float64(steps)
	frames := make([]int, 0, steps+1)
	current := 0.0
	for {
		current += increment
		if current >= float64(target) {
			break
		}
		frames = append(frames, int(math.Floor(current)))
	}
	return append(frames, target)
}
