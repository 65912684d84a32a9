package chart

// TimingPoint is one moment in a fumen. A point with notes is a gameplay
// event; a point without notes marks a bare comma and is only used for
// playback time bookkeeping.
type TimingPoint struct {
	Time   float64 `json:"time"` // absolute seconds, includes the chart's first offset
	Column int     `json:"column"`
	Line   int     `json:"line"`
	BPM    float64 `json:"bpm"`
	HSpeed float64 `json:"hspeed"`
	Raw    string  `json:"raw"`

	Notes []*Note `json:"notes"`
}
