package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"git.lost.host/meutraa/simai/internal/chart"
)

// fumenScanner walks one difficulty's notation text left to right. All of
// the scan state lives here; nothing is global, so fumens can be parsed
// concurrently.
type fumenScanner struct {
	text string
	idx  int

	line   int // 0-indexed physical line
	column int // 0-indexed position within the line

	bpm         float64 // 0 until the first (bpm) directive
	beatsPerBar int
	hspeed      float64
	time        float64 // absolute seconds, seeded with the chart's first offset

	buf strings.Builder // note text accumulated since the last separator

	events  []*chart.TimingPoint
	markers []*chart.TimingPoint
	warns   []chart.Warning
}

// parseFumen resolves one fumen string into time-sorted note events and
// comma markers. It never fails; problems surface as warnings.
func parseFumen(text string, firstOffset float64) ([]*chart.TimingPoint, []*chart.TimingPoint, []chart.Warning) {
	s := &fumenScanner{
		text:        text,
		beatsPerBar: 4,
		hspeed:      1.0,
		time:        firstOffset,
	}
	s.scan()
	return s.events, s.markers, s.warns
}

func (s *fumenScanner) warnf(kind chart.WarningKind, format string, args ...interface{}) {
	s.warns = append(s.warns, chart.Warning{
		Kind:   kind,
		Line:   s.line,
		Column: s.column,
		Text:   fmt.Sprintf(format, args...),
	})
}

// advance consumes one byte, keeping the line/column counters current.
func (s *fumenScanner) advance() byte {
	c := s.text[s.idx]
	s.idx++
	if c == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	return c
}

func (s *fumenScanner) scan() {
	for s.idx < len(s.text) {
		c := s.text[s.idx]
		switch {
		case c == '|' && s.idx+1 < len(s.text) && s.text[s.idx+1] == '|':
			s.flush()
			s.skipComment()
		case c == '(':
			s.flush()
			s.setBPM(s.directive(')'))
		case c == '{':
			s.flush()
			s.setBeats(s.directive('}'))
		case c == '<' && s.idx+1 < len(s.text) && s.text[s.idx+1] == 'H':
			s.flush()
			s.setHSpeed(s.hispeed())
		case c == ',':
			s.flush()
			s.comma()
			s.advance()
		default:
			// Newlines ride along in the buffer and are stripped at
			// flush; a bare '<' is ordinary note text.
			s.buf.WriteByte(c)
			s.advance()
		}
	}
	s.flush()

	// Backtick sub-groups can land out of top-to-bottom order when mixed
	// with other constructs; a stable sort restores monotonic time while
	// preserving parse order for equal timestamps.
	sort.SliceStable(s.events, func(i, j int) bool { return s.events[i].Time < s.events[j].Time })
	sort.SliceStable(s.markers, func(i, j int) bool { return s.markers[i].Time < s.markers[j].Time })
}

// skipComment discards a "||" comment through the end of the physical line.
func (s *fumenScanner) skipComment() {
	for s.idx < len(s.text) && s.text[s.idx] != '\n' {
		s.advance()
	}
	if s.idx < len(s.text) {
		s.advance()
	}
}

// directive consumes the current opening byte and returns the text up to
// the terminator. A missing terminator is tolerated; scanning stops at end
// of input.
func (s *fumenScanner) directive(terminator byte) string {
	s.advance()
	var val strings.Builder
	for s.idx < len(s.text) && s.text[s.idx] != terminator {
		val.WriteByte(s.advance())
	}
	if s.idx < len(s.text) {
		s.advance()
	}
	return val.String()
}

// hispeed consumes "<H...>", tolerating an "S" or "S*" infix before the
// number, and returns the numeric text.
func (s *fumenScanner) hispeed() string {
	s.advance() // '<'
	s.advance() // 'H'
	if s.idx < len(s.text) && s.text[s.idx] == 'S' {
		s.advance()
		if s.idx < len(s.text) && s.text[s.idx] == '*' {
			s.advance()
		}
	}
	var val strings.Builder
	for s.idx < len(s.text) && s.text[s.idx] != '>' {
		val.WriteByte(s.advance())
	}
	if s.idx < len(s.text) {
		s.advance()
	}
	return val.String()
}

func (s *fumenScanner) setBPM(v string) {
	bpm, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if nil != err {
		s.warnf(chart.MalformedDirective, "bad bpm %q", v)
		return
	}
	if bpm <= 0 {
		s.warnf(chart.MalformedDirective, "bpm %v is not positive", bpm)
		return
	}
	s.bpm = bpm
}

func (s *fumenScanner) setBeats(v string) {
	beats, err := strconv.Atoi(strings.TrimSpace(v))
	if nil != err {
		s.warnf(chart.MalformedDirective, "bad beats %q", v)
		return
	}
	if beats <= 0 {
		s.warnf(chart.MalformedDirective, "beats %v is not positive", beats)
		return
	}
	s.beatsPerBar = beats
}

func (s *fumenScanner) setHSpeed(v string) {
	h, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if nil != err {
		s.warnf(chart.MalformedDirective, "bad hi-speed %q", v)
		return
	}
	s.hspeed = h
}

// comma records a bookkeeping marker at the current time and advances the
// clock by one beat of the active signature.
func (s *fumenScanner) comma() {
	s.markers = append(s.markers, &chart.TimingPoint{
		Time:   s.time,
		Column: s.column,
		Line:   s.line,
		BPM:    s.bpm,
		HSpeed: s.hspeed,
	})

	if s.bpm > 0 && s.beatsPerBar > 0 {
		s.time += (60.0 / s.bpm) * (4.0 / float64(s.beatsPerBar))
	} else if s.bpm <= 0 {
		s.warnf(chart.TimeNotAdvancing, "comma with bpm %v, time frozen", s.bpm)
	}
}

// flush turns the buffered note text into timing points. Backticks split
// the buffer into pseudo-simultaneous sub-groups a 128th note apart, with
// no offset after the last one.
func (s *fumenScanner) flush() {
	content := strings.TrimSpace(s.buf.String())
	s.buf.Reset()
	if content == "" {
		return
	}

	if strings.Contains(content, "`") {
		interval := 0.001
		if s.bpm > 0 {
			interval = 60.0 / s.bpm / 32.0
		}
		parts := strings.Split(content, "`")
		t := s.time
		for i, part := range parts {
			if p := strings.TrimSpace(part); p != "" {
				s.emit(p, t)
			}
			if i < len(parts)-1 {
				t += interval
			}
		}
		return
	}

	s.emit(content, s.time)
}

// emit parses one note group and records it, unless it yields no notes.
func (s *fumenScanner) emit(content string, t float64) {
	np := &noteParser{bpm: s.bpm, line: s.line, column: s.column, warns: &s.warns}
	notes := np.parseGroup(content)
	if len(notes) == 0 {
		return
	}
	s.events = append(s.events, &chart.TimingPoint{
		Time:   t,
		Column: s.column,
		Line:   s.line,
		BPM:    s.bpm,
		HSpeed: s.hspeed,
		Raw:    content,
		Notes:  notes,
	})
}
