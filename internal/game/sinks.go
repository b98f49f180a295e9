package game

// Cue identifies a sound effect.
type Cue int

const (
	CueLaunch    Cue = iota // Defender launched
	CueImpact               // Enemy reached the ground
	CueIntercept            // Enemy destroyed
	CueDefeat               // Match lost
	CueVictory              // Match won
)

func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueImpact:
		return "impact"
	case CueIntercept:
		return "intercept"
	case CueDefeat:
		return "defeat"
	case CueVictory:
		return "victory"
	}
	return "unknown"
}

// Stats are the counters shown to the player.
type Stats struct {
	Score      int
	Hits       int
	Intercepts int
}

// AudioSink plays cues. Implementations must not block the frame.
type AudioSink interface {
	Play(cue Cue)
}

// UISink receives counter and mode updates.
type UISink interface {
	StatsChanged(stats Stats)
	ModeChanged(from, to Mode, stats Stats)
}

type nopAudio struct{}

func (nopAudio) Play(Cue) {}

type nopUI struct{}

func (nopUI) StatsChanged(Stats)            {}
func (nopUI) ModeChanged(Mode, Mode, Stats) {}
