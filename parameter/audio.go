package parameter

import "time"

// Heartbeat sound
const (
	AudioSampleRate   = 44100
	AudioBufferPeriod = time.Second / 10

	// Lub is the first, stronger thump; Dub follows after HeartbeatGap
	HeartbeatLubFreq     = 58.0
	HeartbeatDubFreq     = 49.0
	HeartbeatOvertone    = 2.0 // overtone frequency multiplier
	HeartbeatThumpLength = 110 * time.Millisecond
	HeartbeatAttack      = 8 * time.Millisecond
	HeartbeatRelease     = 90 * time.Millisecond
	HeartbeatGap         = 140 * time.Millisecond

	HeartbeatLubVolume      = 0.9
	HeartbeatDubVolume      = 0.65
	HeartbeatOvertoneVolume = 0.25
	HeartbeatMasterVolume   = 0.7
)
