package landing

// Accent is the theme tag a landing page uses for presentational styling.
type Accent string

const (
	AccentTeal       Accent = "teal"
	AccentVioletRose Accent = "violet-rose"
	AccentEmerald    Accent = "emerald"
)

// IsValid returns true if the accent is one of the defined constants.
func (a Accent) IsValid() bool {
	switch a {
	case AccentTeal, AccentVioletRose, AccentEmerald:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (a Accent) String() string {
	return string(a)
}
