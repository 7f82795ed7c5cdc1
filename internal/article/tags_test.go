package article

import (
	"slices"
	"testing"
)

// Multi-word tags match when their words appear anywhere in the text,
// not only as one phrase.
func TestExtractTags_MultiWordTag(t *testing.T) {
	tags := ExtractTags("Smart thermostats arrive", "a big week for hvac controls")

	if !slices.Contains(tags, "SmartHVAC") {
		t.Errorf("ExtractTags() = %v, want SmartHVAC included", tags)
	}
}

func TestExtractTags_CapAndOrder(t *testing.T) {
	text := "smart hvac ai energy efficiency heat pump battery storage tesla"
	tags := ExtractTags(text, "")

	if len(tags) != maxTags {
		t.Fatalf("ExtractTags() returned %d tags, want %d", len(tags), maxTags)
	}
	if tags[0] != "SmartHVAC" {
		t.Errorf("tags[0] = %q, want vocabulary order starting with SmartHVAC", tags[0])
	}
	if slices.Contains(tags, "Tesla") {
		t.Errorf("ExtractTags() = %v, Tesla should fall over the cap", tags)
	}
}

func TestExtractTags_CaseInsensitive(t *testing.T) {
	tags := ExtractTags("TESLA Megapack Lands", "BATTERY STORAGE site energized")

	if !slices.Contains(tags, "Tesla") || !slices.Contains(tags, "BatteryStorage") {
		t.Errorf("ExtractTags() = %v, want Tesla and BatteryStorage", tags)
	}
}

func TestExtractTags_NoMatches(t *testing.T) {
	tags := ExtractTags("quiet afternoon", "nothing notable happened")

	if tags == nil {
		t.Fatal("ExtractTags() = nil, want empty slice")
	}
	if len(tags) != 0 {
		t.Errorf("ExtractTags() = %v, want no tags", tags)
	}
}
