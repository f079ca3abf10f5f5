package conflict

import (
	"time"

	"dealdesk/internal/domain/deal"
)

// Interval is a half-open [Start,End) time window. A zero End means the
// window is open-ended.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) IsOpenEnded() bool {
	return i.End.IsZero()
}

// Intersect returns [max(starts), min(ends)) and reports whether the result
// is non-empty. Zero-length windows do not intersect.
func (i Interval) Intersect(other Interval) (Interval, bool) {
	start := i.Start
	if other.Start.After(start) {
		start = other.Start
	}

	var end time.Time
	switch {
	case i.IsOpenEnded():
		end = other.End
	case other.IsOpenEnded():
		end = i.End
	case i.End.Before(other.End):
		end = i.End
	default:
		end = other.End
	}

	result := Interval{Start: start, End: end}
	if result.IsOpenEnded() {
		return result, true
	}
	if !start.Before(end) {
		return Interval{}, false
	}
	return result, true
}

// Contains reports whether t falls inside the half-open window.
func (i Interval) Contains(t time.Time) bool {
	if t.Before(i.Start) {
		return false
	}
	return i.IsOpenEnded() || t.Before(i.End)
}

// scopeMatches applies the rule's scope predicate against another deal.
// Symmetric competitor listing is handled at the pair level: both directions
// of a pair are evaluated, so a BRAND rule on either side can match.
func scopeMatches(rule *ExclusivityRule, other *DealProfile) bool {
	switch rule.Scope {
	case deal.ScopeGlobal:
		return true
	case deal.ScopeCategory:
		return rule.Category == other.BrandCategory
	case deal.ScopeBrand:
		return rule.ListsCompetitor(other.BrandID)
	default:
		return false
	}
}

// ruleOverlap computes the exclusivity overlap of a rule against another
// deal's active window, or false when scope or windows do not match.
func ruleOverlap(rule *ExclusivityRule, other *DealProfile) (Interval, bool) {
	if !scopeMatches(rule, other) {
		return Interval{}, false
	}
	return rule.Window.Intersect(other.Window)
}

// SameCalendarDay reports whether two instants fall on the same UTC day; the
// scheduling-collision predicate.
func SameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// DayKey renders the UTC calendar day used in collision metadata.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
