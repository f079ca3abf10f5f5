package conflict

import "fmt"

// SuggestResolutions produces the ordered human-readable resolution options
// for a newly detected conflict. Deterministic and side-effect free; called
// once per inserted row.
func SuggestResolutions(c *Candidate) []string {
	switch c.Type {
	case TypeExclusivityOverlap:
		suggestions := []string{
			fmt.Sprintf("Request an exclusivity carve-out from %s", c.Conflicting.BrandName),
		}
		if c.Overlap.End != nil {
			suggestions = append(suggestions,
				fmt.Sprintf("Delay the conflicting deliverable past %s", c.Overlap.End.Format("Jan 2, 2006")))
		} else {
			suggestions = append(suggestions, "Delay the conflicting deliverable past the exclusivity window")
		}
		return append(suggestions, "Decline or renegotiate the newer deal")

	case TypeCategoryConflict:
		return []string{
			fmt.Sprintf("Confirm exclusivity terms with %s before agreeing", c.Conflicting.BrandName),
			fmt.Sprintf("Differentiate the content angle between %s and %s", c.Target.BrandName, c.Conflicting.BrandName),
		}

	case TypeSchedulingCollision:
		return []string{
			"Reschedule one deliverable",
			"Confirm bandwidth with both brands",
		}

	default:
		return nil
	}
}
