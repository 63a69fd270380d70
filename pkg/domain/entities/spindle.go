package entities

// spindleSpeeds is the ladder of selectable spindle speeds on the target
// class of machines, slowest first.
var spindleSpeeds = []int{10000, 14000, 18000, 23000, 27000, 32000}

// AvailableRPMs returns the spindle speed ladder, slowest first.
func AvailableRPMs() []int {
	out := make([]int, len(spindleSpeeds))
	copy(out, spindleSpeeds)
	return out
}

// NextRPM returns the next ladder step above rpm. The second return is false
// when rpm is already at or above the fastest setting.
func NextRPM(rpm int) (int, bool) {
	for _, speed := range spindleSpeeds {
		if speed > rpm {
			return speed, true
		}
	}
	return 0, false
}

// MaxRPM returns the fastest spindle setting.
func MaxRPM() int {
	return spindleSpeeds[len(spindleSpeeds)-1]
}
