package chart

type NoteKind int

// Kind values match the numbering used by simai tooling.
const (
	KindUnknown NoteKind = iota
	KindTap
	KindSlide
	KindHold
	KindTouch
	KindTouchHold
)

func (k NoteKind) String() string {
	switch k {
	case KindTap:
		return "TAP"
	case KindSlide:
		return "SLIDE"
	case KindHold:
		return "HOLD"
	case KindTouch:
		return "TOUCH"
	case KindTouchHold:
		return "TOUCH_HOLD"
	}
	return "UNKNOWN"
}

type Note struct {
	Kind NoteKind `json:"kind"`
	Lane int      `json:"lane"`       // 1-8 around the ring, 0 if never set
	Area byte     `json:"touch_area"` // 'A'-'E' for touch notes, 0 otherwise

	HoldSeconds      float64 `json:"hold_seconds"`
	SlideSeconds     float64 `json:"slide_seconds"`
	SlideLeadSeconds float64 `json:"slide_lead_seconds"` // delay before the slide path appears

	IsBreak      bool `json:"is_break"`
	IsEx         bool `json:"is_ex"`
	IsHanabi     bool `json:"is_hanabi"`
	IsHeadless   bool `json:"is_headless"`
	IsForcedStar bool `json:"is_forced_star"`
	IsFakeRotate bool `json:"is_fake_rotate"`
	IsPathBreak  bool `json:"is_path_break"` // break on the slide path rather than its head

	Raw string `json:"raw"` // original token, kept for diagnostics
}
