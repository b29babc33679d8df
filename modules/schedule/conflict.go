package schedule

import "time"

// ConflictKind classifies the timing relationship between two same-day games.
type ConflictKind string

const (
	// SameTime means both games occupy exactly the same interval.
	SameTime ConflictKind = "SameTime"
	// Overlapping means the second game starts before the first ends.
	Overlapping ConflictKind = "Overlapping"
	// Close means the second game starts within CloseWindow of the first ending.
	Close ConflictKind = "Close"
)

// CloseWindow is the back-to-back gap that still counts as a conflict.
const CloseWindow = 30 * time.Minute

// Conflict is a pair of same-day events whose timing collides. First always
// starts no later than Second. Gap is the signed separation between First
// ending and Second starting: negative values are the overlap magnitude.
type Conflict struct {
	First  Event
	Second Event
	Kind   ConflictKind
	Gap    time.Duration
}

// Detect scans a chronologically sorted event slice for conflicts.
//
// The scan is an exhaustive i<j pass. Quadratic, but a season schedule is a
// few hundred games at most, so this beats carrying an interval tree around.
// Sorted-by-start input is a precondition: the gap arithmetic assumes
// events[i] starts no later than events[j], and that is not re-validated here.
// Records come out in (i, j) iteration order.
func Detect(events []Event) []Conflict {
	var conflicts []Conflict
	for i := range events {
		for j := i + 1; j < len(events); j++ {
			a, b := events[i], events[j]
			if !sameDay(a.Start, b.Start) {
				continue
			}
			if a.Start.Equal(b.Start) && a.End.Equal(b.End) {
				conflicts = append(conflicts, Conflict{First: a, Second: b, Kind: SameTime})
				continue
			}
			gap := b.Start.Sub(a.End)
			switch {
			case gap < 0:
				conflicts = append(conflicts, Conflict{First: a, Second: b, Kind: Overlapping, Gap: gap})
			case gap <= CloseWindow:
				conflicts = append(conflicts, Conflict{First: a, Second: b, Kind: Close, Gap: gap})
			}
		}
	}
	return conflicts
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
