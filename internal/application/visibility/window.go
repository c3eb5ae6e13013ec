package visibility

import "time"

// Window is an optional [From, To] content time range. A nil bound is
// unbounded on that side.
type Window struct {
	From *time.Time
	To   *time.Time
}

// IsUnbounded reports whether the window has no bounds at all.
func (w Window) IsUnbounded() bool {
	return w.From == nil && w.To == nil
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.To != nil && t.After(*w.To) {
		return false
	}
	return true
}

// Clip intersects the grant window with each constraint in turn. Constraints
// can only narrow the window: a constraint bound outside the grant is
// ignored, so a request asking for dates earlier than the grant allows is
// clamped to the grant boundary.
func Clip(grant Window, constraints ...Window) Window {
	out := grant
	for _, c := range constraints {
		if c.From != nil && (out.From == nil || c.From.After(*out.From)) {
			out.From = c.From
		}
		if c.To != nil && (out.To == nil || c.To.Before(*out.To)) {
			out.To = c.To
		}
	}
	return out
}
