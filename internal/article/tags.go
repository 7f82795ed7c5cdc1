package article

import "strings"

const maxTags = 5

type tagRule struct {
	name  string
	words []string
}

// tagVocabulary is scanned in order and the first five matches win, so
// the ordering below is part of the output contract. A tag applies when
// every one of its words occurs somewhere in title+content.
var tagVocabulary = []tagRule{
	{"SmartHVAC", []string{"smart", "hvac"}},
	{"AI", []string{"ai"}},
	{"EnergyEfficiency", []string{"energy", "efficiency"}},
	{"HeatPump", []string{"heat", "pump"}},
	{"BatteryStorage", []string{"battery", "storage"}},
	{"Tesla", []string{"tesla"}},
	{"GridModernization", []string{"grid", "modernization"}},
	{"RenewableEnergy", []string{"renewable", "energy"}},
	{"EPA", []string{"epa"}},
	{"Regulations", []string{"regulations"}},
	{"MarketGrowth", []string{"market", "growth"}},
	{"Innovation", []string{"innovation"}},
	{"Sustainability", []string{"sustainability"}},
	{"IoT", []string{"iot"}},
	{"Automation", []string{"automation"}},
	{"CommercialHVAC", []string{"commercial", "hvac"}},
	{"ResidentialHVAC", []string{"residential", "hvac"}},
	{"Carrier", []string{"carrier"}},
	{"Honeywell", []string{"honeywell"}},
	{"JohnsonControls", []string{"johnson", "controls"}},
	{"Trane", []string{"trane"}},
	{"Rheem", []string{"rheem"}},
	{"LGEnergy", []string{"lg", "energy"}},
	{"BYD", []string{"byd"}},
	{"EnergyStorage", []string{"energy", "storage"}},
	{"Fintech", []string{"fintech"}},
	{"Blockchain", []string{"blockchain"}},
	{"VentureCapital", []string{"venture", "capital"}},
	{"Payments", []string{"payment"}},
	{"Insurance", []string{"insurance"}},
}

// ExtractTags matches title+content against the tag vocabulary and
// returns up to five tags in vocabulary order.
func ExtractTags(title, content string) []string {
	text := strings.ToLower(title + " " + content)

	tags := make([]string, 0, maxTags)
	for _, rule := range tagVocabulary {
		if len(tags) == maxTags {
			break
		}

		matched := true
		for _, word := range rule.words {
			if !strings.Contains(text, word) {
				matched = false
				break
			}
		}
		if matched {
			tags = append(tags, rule.name)
		}
	}

	return tags
}
