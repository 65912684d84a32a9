package slidepath

import (
	"reflect"
	"testing"
)

var segmentTests = map[string][]string{
	"1-3":            {"1-3"},
	"2>4":            {"2>4"},
	"8^6<4":          {"8^6", "6<4"},
	"5V13":           {"5-1", "1-3"},
	"1pp2":           {"1pp2"},
	"2qq4":           {"2qq4"},
	"3p5":            {"3p5"},
	"2w6":            {"2w6"},
	"1-3[4:1]>5[4:1]": {"1-3", "3>5"},
	"1-3>5V13<1":      {"1-3", "3>5", "5-1", "1-3", "3<1"},
	"1v5":            {"1v5"},
	"A1-3":           nil, // not anchored on a lane digit
	"":               nil,
	"1":              nil, // a head with no path
}

func TestSegments(t *testing.T) {
	for note, expected := range segmentTests {
		if got := Segments(note); !reflect.DeepEqual(got, expected) {
			t.Errorf("Segments(%q) = %v, expected %v", note, got, expected)
		}
	}
}

func TestSegmentsUnterminatedBracket(t *testing.T) {
	if got := Segments("1-3[4:1"); !reflect.DeepEqual(got, []string{"1-3"}) {
		t.Errorf("Segments with open bracket = %v", got)
	}
}
