// Package reveal tracks one-shot visibility latches for page sections.
package reveal

import "errors"

// DefaultThreshold is the visible ratio that reveals a section.
const DefaultThreshold = 0.1

// ErrInvalidThreshold reports a threshold outside (0, 1].
var ErrInvalidThreshold = errors.New("invalid reveal threshold")

// State is the latch state.
type State int

// State values.
const (
	Pending State = iota
	Revealed
)

// String returns a readable state label.
func (s State) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "pending"
}

// Latch flips once from Pending to Revealed and never reverts.
type Latch struct {
	state State
}

// State returns the latch state.
func (l *Latch) State() State {
	return l.state
}

// Revealed reports whether the latch has fired.
func (l *Latch) Revealed() bool {
	return l.state == Revealed
}

// Reveal fires the latch and reports whether this call changed it.
func (l *Latch) Reveal() bool {
	if l.state == Revealed {
		return false
	}
	l.state = Revealed
	return true
}

// Span is a half-open row range [Start, Start+Height).
type Span struct {
	Start  int
	Height int
}

// End returns the exclusive end row.
func (s Span) End() int {
	return s.Start + s.Height
}

// Bounds names one section span.
type Bounds struct {
	Key string
	Span
}

// Tracker owns one latch per section key.
type Tracker struct {
	threshold float64
	latches   map[string]*Latch
}

// NewTracker constructs a tracker, falling back to DefaultThreshold when threshold is invalid.
func NewTracker(threshold float64) *Tracker {
	if ValidateThreshold(threshold) != nil {
		threshold = DefaultThreshold
	}
	return &Tracker{
		threshold: threshold,
		latches:   map[string]*Latch{},
	}
}

// ValidateThreshold checks that threshold lies in (0, 1].
func ValidateThreshold(threshold float64) error {
	if threshold <= 0 || threshold > 1 {
		return ErrInvalidThreshold
	}
	return nil
}

// Threshold returns the configured visible ratio.
func (t *Tracker) Threshold() float64 {
	return t.threshold
}

// Revealed reports whether key has been revealed.
func (t *Tracker) Revealed(key string) bool {
	latch, ok := t.latches[key]
	return ok && latch.Revealed()
}

// Observe reveals every section whose visible ratio meets the threshold.
// It returns the keys revealed by this call in section order.
func (t *Tracker) Observe(viewport Span, sections []Bounds) []string {
	revealed := make([]string, 0)
	for _, section := range sections {
		if !Visible(viewport, section.Span, t.threshold) {
			continue
		}
		latch, ok := t.latches[section.Key]
		if !ok {
			latch = &Latch{}
			t.latches[section.Key] = latch
		}
		if latch.Reveal() {
			revealed = append(revealed, section.Key)
		}
	}
	return revealed
}

// Visible reports whether enough of section lies inside viewport.
func Visible(viewport, section Span, threshold float64) bool {
	if viewport.Height <= 0 {
		return false
	}
	if section.Height <= 0 {
		return section.Start >= viewport.Start && section.Start < viewport.End()
	}
	lo := max(viewport.Start, section.Start)
	hi := min(viewport.End(), section.End())
	if hi <= lo {
		return false
	}
	// Sections taller than the viewport are measured against the viewport so they can still reveal.
	ratio := float64(hi-lo) / float64(min(section.Height, viewport.Height))
	return ratio >= threshold
}
