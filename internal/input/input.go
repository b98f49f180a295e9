// Package input turns a raw terminal byte stream into per-frame key and mouse state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a direction counts as held after its last press.
// Terminals never report key release, so holding relies on key repeat.
const keyHoldDuration = 120 * time.Millisecond

// maxPending bounds the carried-over bytes of an unfinished escape sequence.
const maxPending = 32

// Click is a left mouse press at a 0-indexed terminal cell.
type Click struct {
	Col int
	Row int
}

// Input represents the current frame's input state.
// Directions persist across frames while held; everything else is reported
// only in the frame its byte arrived.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	Quit    bool
	Space   bool
	Enter   bool
	Pause   bool
	Restart bool
	Mode    bool
	Clicks  []Click
	Closed  bool // The reader hit EOF or an error
}

// keyState tracks the last time each direction was pressed.
type keyState struct {
	up    time.Time
	down  time.Time
	left  time.Time
	right time.Time
}

// Stream delivers input bytes via a channel and tracks key state across frames.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Unfinished escape sequence from the previous read
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 256),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and SGR mouse reports.
func ReadInput(s *Stream) Input {
	return s.read(time.Now())
}

func (s *Stream) read(now time.Time) Input {
	buf := append([]byte(nil), s.pending...)
	s.pending = s.pending[:0]

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := Input{Closed: s.closed}
	s.parse(buf, now, &in)

	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	return in
}

// parse updates key state and in from buf. An unfinished escape sequence at
// the end of buf is kept for the next read.
func (s *Stream) parse(buf []byte, now time.Time, in *Input) {
	for i := 0; i < len(buf); {
		if buf[i] != '\x1b' {
			s.applyByte(buf[i], now, in)
			i++
			continue
		}

		n, complete := s.parseEscape(buf[i:], now, in)
		if !complete {
			if !s.closed && len(buf)-i < maxPending {
				s.pending = append(s.pending, buf[i:]...)
			}
			return
		}
		i += n
	}
}

// parseEscape handles a sequence starting with ESC. Returns the bytes
// consumed, or complete=false when more bytes are needed.
func (s *Stream) parseEscape(seq []byte, now time.Time, in *Input) (int, bool) {
	if len(seq) < 2 {
		// A lone ESC at the end of a read is most likely the Escape key.
		return 1, true
	}
	if seq[1] != '[' && seq[1] != 'O' {
		return 1, true
	}
	if len(seq) < 3 {
		return 0, false
	}

	switch seq[2] {
	case 'A': // Up arrow
		s.state.up = now
		return 3, true
	case 'B': // Down arrow
		s.state.down = now
		return 3, true
	case 'C': // Right arrow
		s.state.right = now
		return 3, true
	case 'D': // Left arrow
		s.state.left = now
		return 3, true
	case '<':
		if seq[1] == '[' {
			return parseSGRMouse(seq, in)
		}
	}

	// Skip any other CSI sequence up to its final byte.
	for end := 2; end < len(seq); end++ {
		if seq[end] >= 0x40 && seq[end] <= 0x7e {
			return end + 1, true
		}
	}
	return 0, false
}

// parseSGRMouse parses ESC [ < Btn ; X ; Y M/m and records left presses.
func parseSGRMouse(seq []byte, in *Input) (int, bool) {
	end := 3
	for end < len(seq) && end < maxPending {
		if seq[end] == 'M' || seq[end] == 'm' {
			break
		}
		end++
	}
	if end >= len(seq) {
		return 0, false
	}
	if seq[end] != 'M' && seq[end] != 'm' {
		// Not a mouse report after all; drop the introducer.
		return 3, true
	}

	btn, x, y, ok := parseSGRParams(seq[3:end])
	if !ok {
		return end + 1, true
	}

	// Bits 0-1: button (0 = left), bit 5: motion, bit 6: scroll.
	press := seq[end] == 'M'
	if press && btn&0x03 == 0 && btn&(32|64) == 0 {
		in.Clicks = append(in.Clicks, Click{Col: x - 1, Row: y - 1})
	}
	return end + 1, true
}

// parseSGRParams parses "Btn;X;Y" without allocating.
func parseSGRParams(params []byte) (btn, x, y int, ok bool) {
	var vals [3]int
	idx := 0
	digits := 0
	for _, c := range params {
		switch {
		case c >= '0' && c <= '9':
			vals[idx] = vals[idx]*10 + int(c-'0')
			digits++
		case c == ';':
			if digits == 0 || idx == 2 {
				return 0, 0, 0, false
			}
			idx++
			digits = 0
		default:
			return 0, 0, 0, false
		}
	}
	if idx != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	return vals[0], vals[1], vals[2], true
}

// applyByte updates key state and commands for a single byte.
func (s *Stream) applyByte(b byte, now time.Time, in *Input) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'a', 'A', 'h', 'H':
		s.state.left = now
	case 'd', 'D', 'l', 'L':
		s.state.right = now
	case 'w', 'W', 'k', 'K':
		s.state.up = now
	case 's', 'S', 'j', 'J':
		s.state.down = now
	case ' ':
		in.Space = true
	case '\n', '\r':
		in.Enter = true
	case 'p', 'P':
		in.Pause = true
	case 'r', 'R':
		in.Restart = true
	case 'm', 'M':
		in.Mode = true
	}
}

// Release forgets every held direction.
func (s *Stream) Release() {
	s.state = keyState{}
}
