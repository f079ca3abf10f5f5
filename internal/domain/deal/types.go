package deal

type Status string

const (
	StatusInbound     Status = "INBOUND"
	StatusNegotiating Status = "NEGOTIATING"
	StatusAgreed      Status = "AGREED"
	StatusPaid        Status = "PAID"
	StatusCancelled   Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInbound, StatusNegotiating, StatusAgreed, StatusPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// statusOrder drives forward-only transitions; CANCELLED is reachable from any
// non-terminal status.
var statusOrder = map[Status]int{
	StatusInbound:     1,
	StatusNegotiating: 2,
	StatusAgreed:      3,
	StatusPaid:        4,
}

func (s Status) CanTransitionTo(next Status) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	cur, ok := statusOrder[s]
	if !ok {
		return false
	}
	nxt, ok := statusOrder[next]
	return ok && nxt > cur
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Scope string

const (
	ScopeCategory Scope = "CATEGORY"
	ScopeBrand    Scope = "BRAND"
	ScopeGlobal   Scope = "GLOBAL"
)

func (s Scope) String() string {
	return string(s)
}

func (s Scope) IsValid() bool {
	switch s {
	case ScopeCategory, ScopeBrand, ScopeGlobal:
		return true
	default:
		return false
	}
}

func NewScope(s string) (Scope, error) {
	scope := Scope(s)
	if !scope.IsValid() {
		return "", ErrInvalidScope
	}
	return scope, nil
}
