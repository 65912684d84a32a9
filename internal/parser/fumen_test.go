package parser

import (
	"sort"
	"testing"

	"git.lost.host/meutraa/simai/internal/chart"
)

func TestFumenCommaAdvance(t *testing.T) {
	events, markers, warns := parseFumen("(120)1,2,3,4,", 0)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings %v", warns)
	}
	if len(events) != 4 || len(markers) != 4 {
		t.Fatalf("got %v events, %v markers", len(events), len(markers))
	}
	for i, expected := range []float64{0, 0.5, 1.0, 1.5} {
		if !almost(events[i].Time, expected) {
			t.Errorf("event %v at %v, expected %v", i, events[i].Time, expected)
		}
		if !almost(markers[i].Time, expected) {
			t.Errorf("marker %v at %v, expected %v", i, markers[i].Time, expected)
		}
		if events[i].BPM != 120 {
			t.Errorf("event %v bpm %v", i, events[i].BPM)
		}
	}
}

func TestFumenBeatSignature(t *testing.T) {
	events, _, _ := parseFumen("(120){8}1,2,", 0)
	if len(events) != 2 {
		t.Fatalf("got %v events", len(events))
	}
	if !almost(events[1].Time, 0.25) {
		t.Errorf("second event at %v, expected 0.25", events[1].Time)
	}
}

func TestFumenFirstOffset(t *testing.T) {
	events, _, _ := parseFumen("(120)1,", 1.25)
	if len(events) != 1 || !almost(events[0].Time, 1.25) {
		t.Fatalf("events %+v", events)
	}
}

func TestFumenBacktick(t *testing.T) {
	events, _, _ := parseFumen("(120)4`5`6,", 0)
	if len(events) != 3 {
		t.Fatalf("got %v events", len(events))
	}
	step := 60.0 / 120.0 / 32.0
	for i, e := range events {
		if !almost(e.Time, float64(i)*step) {
			t.Errorf("event %v at %v, expected %v", i, e.Time, float64(i)*step)
		}
		if len(e.Notes) != 1 {
			t.Errorf("event %v has %v notes", i, len(e.Notes))
		}
	}
}

func TestFumenComment(t *testing.T) {
	events, markers, _ := parseFumen("(120)|| 1,2,3 all commented\n5,", 0)
	if len(events) != 1 || len(markers) != 1 {
		t.Fatalf("got %v events, %v markers", len(events), len(markers))
	}
	if events[0].Notes[0].Lane != 5 {
		t.Errorf("note on lane %v, expected 5", events[0].Notes[0].Lane)
	}
	if events[0].Line != 1 {
		t.Errorf("note on line %v, expected 1", events[0].Line)
	}
}

func TestFumenHSpeed(t *testing.T) {
	for _, text := range []string{"(120)<H2.5>1,", "(120)<HS2.5>1,", "(120)<HS*2.5>1,"} {
		events, _, warns := parseFumen(text, 0)
		if len(warns) != 0 {
			t.Fatalf("%q warned %v", text, warns)
		}
		if len(events) != 1 || events[0].HSpeed != 2.5 {
			t.Errorf("%q events %+v", text, events)
		}
	}
}

func TestFumenBareAngleBracket(t *testing.T) {
	// '<' not followed by H is a slide shape, not a directive.
	events, _, _ := parseFumen("(120)1<2[4:1],", 0)
	if len(events) != 1 {
		t.Fatalf("got %v events", len(events))
	}
	if events[0].Notes[0].Kind != chart.KindSlide {
		t.Errorf("note parsed as %v", events[0].Notes[0].Kind)
	}
}

func TestFumenMissingTerminators(t *testing.T) {
	// Unterminated directives read to end of input without aborting.
	_, _, warns := parseFumen("(120", 0)
	if len(warns) != 0 {
		t.Errorf("unterminated bpm warned %v", warns)
	}
	events, _, _ := parseFumen("(120)1,{8", 0)
	if len(events) != 1 {
		t.Errorf("got %v events", len(events))
	}
}

func TestFumenBadDirectives(t *testing.T) {
	for _, text := range []string{"(abc)", "(0)", "(-10)", "{abc}", "{0}", "<Habc>"} {
		_, _, warns := parseFumen(text, 0)
		if len(warns) != 1 || warns[0].Kind != chart.MalformedDirective {
			t.Errorf("%q warnings %v", text, warns)
		}
	}

	// The bad value leaves state unchanged.
	events, _, _ := parseFumen("(120)(abc)1,", 0)
	if len(events) != 1 || events[0].BPM != 120 {
		t.Errorf("bpm not preserved: %+v", events)
	}
}

func TestFumenTimeFrozenWithoutBPM(t *testing.T) {
	events, markers, warns := parseFumen("1,2,", 0)
	if len(markers) != 2 {
		t.Fatalf("got %v markers", len(markers))
	}
	for _, m := range markers {
		if m.Time != 0 {
			t.Errorf("marker advanced to %v without bpm", m.Time)
		}
	}
	if len(events) != 2 || events[1].Time != 0 {
		t.Errorf("events %+v", events)
	}
	if len(warns) != 2 || warns[0].Kind != chart.TimeNotAdvancing {
		t.Errorf("warnings %v", warns)
	}
}

func TestFumenFinalFlushWithoutComma(t *testing.T) {
	events, markers, _ := parseFumen("(120)1,8", 0)
	if len(events) != 2 || len(markers) != 1 {
		t.Fatalf("got %v events, %v markers", len(events), len(markers))
	}
	if !almost(events[1].Time, 0.5) {
		t.Errorf("trailing event at %v", events[1].Time)
	}
}

func TestFumenSortIsIdempotent(t *testing.T) {
	events, _, _ := parseFumen("(120)4`5`6,1,2`3,", 0)
	order := make([]*chart.TimingPoint, len(events))
	copy(order, events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Time < events[j].Time })
	for i := range events {
		if events[i] != order[i] {
			t.Fatalf("re-sort reordered event %v", i)
		}
	}
	for i := 1; i < len(events); i++ {
		if events[i].Time < events[i-1].Time {
			t.Fatalf("events not sorted at %v", i)
		}
	}
}
