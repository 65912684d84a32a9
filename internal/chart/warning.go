package chart

type WarningKind int

const (
	MalformedDirective WarningKind = iota
	MalformedDuration
	MalformedStarWait
	TimeNotAdvancing
)

func (k WarningKind) String() string {
	switch k {
	case MalformedDirective:
		return "MalformedDirective"
	case MalformedDuration:
		return "MalformedDuration"
	case MalformedStarWait:
		return "MalformedStarWait"
	case TimeNotAdvancing:
		return "TimeNotAdvancing"
	}
	return "Unknown"
}

// Warning is a recoverable diagnostic. Nothing in the parsing core is
// fatal; consumers decide whether to surface these.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Line   int         `json:"line"`
	Column int         `json:"column"`
	Text   string      `json:"text"`
}
