package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/irondome/internal/game"
)

// cueTones maps each cue to the tones played together for it.
var cueTones = map[game.Cue][]Tone{
	game.CueLaunch:    {{Freq: 800, Duration: 200 * time.Millisecond, Wave: WaveSquare}},
	game.CueImpact:    {{Freq: 200, Duration: 500 * time.Millisecond, Wave: WaveSaw}},
	game.CueIntercept: {{Freq: 600, Duration: 300 * time.Millisecond, Wave: WaveTriangle}},
	game.CueDefeat:    {{Freq: 150, Duration: time.Second, Wave: WaveSaw}},
	game.CueVictory: {
		{Freq: 440, Duration: 500 * time.Millisecond, Wave: WaveSine},
		{Freq: 550, Duration: 500 * time.Millisecond, Wave: WaveSine},
	},
}

// CueStreamer returns a streamer mixing every tone of cue, or nil for an
// unknown cue.
func CueStreamer(cue game.Cue, rate beep.SampleRate) beep.Streamer {
	tones, ok := cueTones[cue]
	if !ok {
		return nil
	}
	streamers := make([]beep.Streamer, len(tones))
	for i, t := range tones {
		streamers[i] = NewTone(t, rate)
	}
	if len(streamers) == 1 {
		return streamers[0]
	}
	return beep.Mix(streamers...)
}

// Player plays cues through the system speaker. It implements game.AudioSink.
// Play never blocks the caller beyond the speaker lock.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Initialize before use.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. On error the player stays silent.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the tones for cue.
func (p *Player) Play(cue game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := CueStreamer(cue, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every playing cue and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

var _ game.AudioSink = (*Player)(nil)
