package audio

import (
	"fmt"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/antborder/constants"
	"github.com/lixenwraith/antborder/event"
)

// Player consumes finished streams; the speaker in production, a recorder in tests
type Player interface {
	Play(s ...beep.Streamer)
}

type speakerPlayer struct{}

func (speakerPlayer) Play(s ...beep.Streamer) { speaker.Play(s...) }

// InitSpeaker opens the audio device at the cue sample rate
// Failure is non-fatal for callers: the widget runs without sound
func InitSpeaker() (Player, error) {
	rate := beep.SampleRate(constants.CueSampleRate)
	if err := speaker.Init(rate, rate.N(constants.CueBufferDuration)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	return speakerPlayer{}, nil
}

// CloseSpeaker releases the audio device
func CloseSpeaker() {
	speaker.Close()
}

// Cues plays a tone on dragstart and another on dragend
type Cues struct {
	player Player
	rate   beep.SampleRate
	subs   []event.Subscription
	played int
}

// NewCues creates cues playing through player; a nil player makes them silent
func NewCues(player Player) *Cues {
	return &Cues{
		player: player,
		rate:   beep.SampleRate(constants.CueSampleRate),
	}
}

// Attach subscribes to the gesture signals of e
func (c *Cues) Attach(e *event.Emitter) {
	c.subs = append(c.subs,
		e.On(event.DragStart, func(event.Event) { c.play(constants.DragStartToneFreq, WaveSine) }),
		e.On(event.DragEnd, func(event.Event) { c.play(constants.DragEndToneFreq, WaveTriangle) }),
	)
}

// Detach removes the subscriptions made by Attach
func (c *Cues) Detach(e *event.Emitter) {
	for _, sub := range c.subs {
		e.Off(sub)
	}
	c.subs = nil
}

// Played returns how many tones were started
func (c *Cues) Played() int {
	return c.played
}

func (c *Cues) play(freq float64, wave WaveType) {
	if c.player == nil {
		return
	}
	c.player.Play(Tone(freq, wave, constants.CueDuration, constants.CueAttack, constants.CueRelease, constants.CueVolume, c.rate))
	c.played++
}
