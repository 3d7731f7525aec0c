package models

// EntrantKind discriminates the two cases a ranking-board row can hold:
// a real registered user or a fixed community placeholder.
type EntrantKind int

const (
	EntrantMember EntrantKind = iota
	EntrantPlaceholder
)

// Placeholder is a display-only community entry on a ranking board.
type Placeholder struct {
	Name  string
	Grade string
	Rank  Rank
}

// BoardRow is one line of a ranking board. Exactly one of User or
// Placeholder is set, according to Kind.
type BoardRow struct {
	Position    int
	Kind        EntrantKind
	User        *User
	Placeholder *Placeholder

	// Score is the raw value the board sorts by; Display is its
	// human-readable form (e.g. "3250pt", "456時間").
	Score   int
	Display string
}

// EntrantName resolves the display name for either variant.
func (r BoardRow) EntrantName() string {
	if r.Kind == EntrantMember && r.User != nil {
		return r.User.Name
	}
	if r.Placeholder != nil {
		return r.Placeholder.Name
	}
	return ""
}

// EntrantRank resolves the rank tier for either variant.
func (r BoardRow) EntrantRank() Rank {
	if r.Kind == EntrantMember && r.User != nil {
		return r.User.Rank
	}
	if r.Placeholder != nil {
		return r.Placeholder.Rank
	}
	return Ranks[0]
}
