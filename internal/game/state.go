package game

// Mode is the phase of a session.
type Mode int

const (
	ModeMenu     Mode = iota // Title screen
	ModePlaying              // Active match
	ModePaused               // Match frozen
	ModeGameOver             // Lost: too many impacts
	ModeVictory              // Won: enough intercepts
)

var modeNames = [...]string{
	ModeMenu:     "menu",
	ModePlaying:  "playing",
	ModePaused:   "paused",
	ModeGameOver: "gameOver",
	ModeVictory:  "victory",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// InMatch reports whether a match is running or paused.
func (m Mode) InMatch() bool {
	return m == ModePlaying || m == ModePaused
}

// ControlMode selects how the player defends.
type ControlMode int

const (
	ControlKeyboard ControlMode = iota // Single steered missile
	ControlPointer                     // Aimed interceptors
)

func (c ControlMode) String() string {
	if c == ControlPointer {
		return "pointer"
	}
	return "keyboard"
}

// ParseControlMode maps "keyboard" or "pointer" (also "arrows"/"mouse") to a ControlMode.
func ParseControlMode(s string) (ControlMode, bool) {
	switch s {
	case "keyboard", "arrows":
		return ControlKeyboard, true
	case "pointer", "mouse":
		return ControlPointer, true
	}
	return ControlKeyboard, false
}

// trigger is an event that may move the session to another mode.
type trigger int

const (
	triggerStart trigger = iota
	triggerToggle
	triggerDefeat
	triggerVictory
	triggerRestart
)

type transitionKey struct {
	from Mode
	on   trigger
}

// transitions is the complete mode table. Pairs not listed are ignored.
var transitions = map[transitionKey]Mode{
	{ModeMenu, triggerStart}:       ModePlaying,
	{ModePlaying, triggerToggle}:   ModePaused,
	{ModePaused, triggerToggle}:    ModePlaying,
	{ModePlaying, triggerDefeat}:   ModeGameOver,
	{ModePlaying, triggerVictory}:  ModeVictory,
	{ModeGameOver, triggerRestart}: ModeMenu,
	{ModeVictory, triggerRestart}:  ModeMenu,
	{ModePlaying, triggerRestart}:  ModeMenu,
	{ModePaused, triggerRestart}:   ModeMenu,
}

// next returns the target mode for the pair, if any.
func next(from Mode, on trigger) (Mode, bool) {
	to, ok := transitions[transitionKey{from, on}]
	return to, ok
}
