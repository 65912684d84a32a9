package chart

// DifficultyChart is one difficulty slot's resolved fumen.
type DifficultyChart struct {
	Level    string         `json:"level"`
	Events   []*TimingPoint `json:"events"`  // note-bearing points, ordered by time
	Markers  []*TimingPoint `json:"markers"` // comma markers, ordered by time
	Warnings []Warning      `json:"warnings,omitempty"`
}

const SlotCount = 7

// Document is a fully parsed simai chart file.
type Document struct {
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	Designer    string  `json:"designer"`
	FirstOffset float64 `json:"first_offset_sec"` // &first, added to every timestamp

	Levels [SlotCount]string           `json:"levels"`
	Fumens [SlotCount]string           `json:"-"` // raw &inote_ blocks
	Charts [SlotCount]*DifficultyChart `json:"charts"`

	Extra    []string  `json:"extra,omitempty"` // unrecognized lines, in encountered order
	Warnings []Warning `json:"warnings,omitempty"`
}
