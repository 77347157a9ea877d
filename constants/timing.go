package constants

import "time"

// Frame Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffer between the terminal poller and the app loop
	EventQueueSize = 100

	// ShutdownTimeout bounds how long the app waits for the poller to exit
	ShutdownTimeout = 200 * time.Millisecond
)

// Audio Cue Timing
const (
	CueSampleRate     = 44100
	CueBufferDuration = 100 * time.Millisecond

	DragStartToneFreq = 660.0
	DragEndToneFreq   = 440.0
	CueDuration       = 60 * time.Millisecond
	CueAttack         = 5 * time.Millisecond
	CueRelease        = 30 * time.Millisecond
	CueVolume         = 0.25
)
