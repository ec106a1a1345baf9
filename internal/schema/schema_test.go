package schema

import (
	"strings"
	"testing"

	"icalls/internal/value"
)

func TestPropertyLookupCaseInsensitive(t *testing.T) {
	for _, name := range []string{"DTSTART", "dtstart", "DtStart"} {
		p, ok := PropertyByName(name)
		if !ok {
			t.Fatalf("PropertyByName(%q) not found", name)
		}
		if p.Name != "DTSTART" {
			t.Errorf("PropertyByName(%q).Name = %q", name, p.Name)
		}
	}
}

func TestPropertyLookupUnknown(t *testing.T) {
	if _, ok := PropertyByName("FOO"); ok {
		t.Error("PropertyByName(\"FOO\") should not resolve")
	}
	if _, ok := PropertyByName(""); ok {
		t.Error("PropertyByName(\"\") should not resolve")
	}
}

func TestParameterLookupCaseInsensitive(t *testing.T) {
	for _, name := range []string{"TZID", "tzid", "TzId"} {
		p, ok := ParameterByName(name)
		if !ok {
			t.Fatalf("ParameterByName(%q) not found", name)
		}
		if p.Name != "TZID" {
			t.Errorf("ParameterByName(%q).Name = %q", name, p.Name)
		}
	}
}

func TestPropertyValueTypes(t *testing.T) {
	tests := []struct {
		name string
		want value.Type
	}{
		{"BEGIN", value.Text},
		{"DTSTART", value.DateTime},
		{"DURATION", value.Duration},
		{"GEO", value.Float},
		{"PRIORITY", value.Integer},
		{"ATTENDEE", value.CalAddress},
		{"ORGANIZER", value.CalAddress},
		{"TZOFFSETFROM", value.UTCOffset},
		{"URL", value.URI},
		{"RRULE", value.RecurrenceRule},
		{"FREEBUSY", value.PeriodOfTime},
		{"SUMMARY", value.Text},
	}

	for _, tt := range tests {
		p, ok := PropertyByName(tt.name)
		if !ok {
			t.Fatalf("PropertyByName(%q) not found", tt.name)
		}
		if p.ValueType != tt.want {
			t.Errorf("%s value type = %s, want %s", tt.name, p.ValueType, tt.want)
		}
	}
}

func TestVocabularyComplete(t *testing.T) {
	if got := len(Properties()); got != 47 {
		t.Errorf("len(Properties()) = %d, want 47", got)
	}
	if got := len(Parameters()); got != 20 {
		t.Errorf("len(Parameters()) = %d, want 20", got)
	}
}

func TestKeywordsIncludeLowercaseName(t *testing.T) {
	for _, p := range Properties() {
		found := false
		for _, kw := range p.Keywords {
			if kw == strings.ToLower(p.Name) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("property %s keywords %v missing its own lowercase name", p.Name, p.Keywords)
		}
	}
	for _, p := range Parameters() {
		found := false
		for _, kw := range p.Keywords {
			if kw == strings.ToLower(p.Name) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("parameter %s keywords %v missing its own lowercase name", p.Name, p.Keywords)
		}
	}
}

func TestEntriesDocumented(t *testing.T) {
	for _, p := range Properties() {
		if p.Purpose == "" {
			t.Errorf("property %s has no purpose", p.Name)
		}
	}
	for _, p := range Parameters() {
		if p.Purpose == "" {
			t.Errorf("parameter %s has no purpose", p.Name)
		}
	}
}
