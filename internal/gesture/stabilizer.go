package gesture

import "time"

// Stabilizer defaults.
const (
	// DefaultWindow is the number of recent labels kept for voting.
	DefaultWindow = 5
	// DefaultQuorum is how many slots one label must fill to be confirmed.
	DefaultQuorum = 3
)

// Stabilizer suppresses single-frame misclassifications with a majority
// vote over the most recent non-empty labels.
//
// The buffer never holds more than window labels, and the confirmed label
// only changes when one label fills at least quorum of them.
type Stabilizer struct {
	window      int
	quorum      int
	buffer      []Label
	confirmed   Label
	confirmedAt time.Time
	now         func() time.Time
}

// NewStabilizer creates a Stabilizer. Values less than or equal to 0 fall
// back to DefaultWindow and DefaultQuorum.
func NewStabilizer(window, quorum int) *Stabilizer {
	if window <= 0 {
		window = DefaultWindow
	}
	if quorum <= 0 {
		quorum = DefaultQuorum
	}
	return &Stabilizer{
		window: window,
		quorum: quorum,
		buffer: make([]Label, 0, window),
		now:    time.Now,
	}
}

// SetClock replaces the time source used for ConfirmedAt.
func (s *Stabilizer) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Push records the label for the current frame and returns the confirmed
// label, which may be None if nothing has been confirmed yet.
// A None label leaves the state untouched.
func (s *Stabilizer) Push(label Label) Label {
	if label.IsNone() {
		return s.confirmed
	}

	if len(s.buffer) >= s.window {
		// Shift left by 1, dropping the oldest label
		copy(s.buffer, s.buffer[1:])
		s.buffer = s.buffer[:s.window-1]
	}
	s.buffer = append(s.buffer, label)

	if mode, count := s.mode(); count >= s.quorum {
		s.confirmed = mode
		s.confirmedAt = s.now()
	}

	return s.confirmed
}

// mode returns the most frequent buffered label and its count. Ties go to
// the label that appears first in the buffer.
func (s *Stabilizer) mode() (Label, int) {
	var (
		best      Label
		bestCount int
	)
	for i, candidate := range s.buffer {
		if seenBefore(s.buffer[:i], candidate) {
			continue
		}
		count := 0
		for _, l := range s.buffer[i:] {
			if l == candidate {
				count++
			}
		}
		if count > bestCount {
			best, bestCount = candidate, count
		}
	}
	return best, bestCount
}

func seenBefore(prefix []Label, l Label) bool {
	for _, p := range prefix {
		if p == l {
			return true
		}
	}
	return false
}

// Confirmed returns the currently confirmed label.
func (s *Stabilizer) Confirmed() Label {
	return s.confirmed
}

// ConfirmedAt returns when the confirmed label was last (re)confirmed.
// It is the zero time until the first confirmation.
func (s *Stabilizer) ConfirmedAt() time.Time {
	return s.confirmedAt
}

// Buffer returns a copy of the buffered labels, oldest first.
func (s *Stabilizer) Buffer() []Label {
	out := make([]Label, len(s.buffer))
	copy(out, s.buffer)
	return out
}

// Len returns the number of buffered labels.
func (s *Stabilizer) Len() int {
	return len(s.buffer)
}
