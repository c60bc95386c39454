package tutor

// Mode is a conversational stance for the tutor. The accent color is a
// display hint passed through to plot rendering; it has no effect on
// the numbers.
type Mode struct {
	Name   string
	Accent string
	Blurb  string
	hint   string
}

var (
	ModeSocratic = Mode{
		Name:   "socratic",
		Accent: "#00ccff",
		Blurb:  "guided questions, no spoilers",
		hint: "Stay strictly Socratic: respond to every student message with " +
			"guiding questions. Reveal at most one small step at a time.",
	}

	ModeHint = Mode{
		Name:   "hint",
		Accent: "#ffcc00",
		Blurb:  "nudges when the student is stuck",
		hint: "The student has asked for hints. Offer one concrete nudge per " +
			"reply, then hand the work back with a question.",
	}

	ModeCheck = Mode{
		Name:   "check",
		Accent: "#00ff88",
		Blurb:  "review worked solutions",
		hint: "The student wants their work checked. Point at the first wrong " +
			"step and ask what they think happens there; do not rework the " +
			"rest of the solution for them.",
	}

	Modes = []Mode{ModeSocratic, ModeHint, ModeCheck}
)

// GetMode returns the named mode, falling back to socratic.
func GetMode(name string) Mode {
	for _, m := range Modes {
		if m.Name == name {
			return m
		}
	}
	return ModeSocratic
}

// ModeNames lists the available mode names.
func ModeNames() []string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = m.Name
	}
	return names
}
