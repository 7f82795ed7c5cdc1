package article

import "strings"

// Industry labels.
const (
	IndustryHVAC    = "HVAC"
	IndustryBESS    = "BESS"
	IndustryFinance = "Finance"
)

var bessKeywords = []string{
	"battery", "energy storage", "megapack", "grid scale", "bess", "lithium",
}

var hvacKeywords = []string{
	"hvac", "heating", "ventilation", "air conditioning", "heat pump", "refriger",
}

var financeKeywords = []string{
	"fintech", "banking", "cryptocurrency", "blockchain", "investment",
	"financial", "finance", "payment", "insurance", "venture capital", "funding",
}

// categoryGroups are scanned in order; the first group with any hit wins,
// so "new product launch" beats "market growth" for the same text.
var categoryGroups = []struct {
	label    string
	keywords []string
}{
	{"Product Launch", []string{"launch", "new product", "introduce", "unveil"}},
	{"Regulatory Compliance", []string{"regulation", "compliance", "epa", "law", "standard"}},
	{"Market Trends", []string{"market", "growth", "forecast", "trend", "analysis"}},
	{"Competitor Financials", []string{"acquisition", "merger", "financial", "revenue", "profit"}},
	{"Technology Innovation", []string{"technology", "innovation", "breakthrough", "research"}},
}

const defaultCategory = "Industry Analysis"

// countMatches counts how many keywords from the list occur in the text.
// Substring match on purpose: "refriger" is meant to catch refrigerant,
// refrigeration and friends. A keyword scores once no matter how often
// it repeats.
func countMatches(text string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			count++
		}
	}
	return count
}

// ClassifyIndustry scores title+content against the three keyword lists
// and picks the winner. Tie-break order is fixed for reproducibility:
// Finance needs a strict majority over both others, BESS needs a strict
// win over HVAC, and everything else (including all-zero) lands on HVAC.
func ClassifyIndustry(title, content string) string {
	text := strings.ToLower(title + " " + content)

	bessScore := countMatches(text, bessKeywords)
	hvacScore := countMatches(text, hvacKeywords)
	financeScore := countMatches(text, financeKeywords)

	switch {
	case financeScore > bessScore && financeScore > hvacScore:
		return IndustryFinance
	case bessScore > hvacScore:
		return IndustryBESS
	default:
		return IndustryHVAC
	}
}

// ClassifyCategory assigns one of the six fixed category labels by
// scanning the ordered keyword groups, first match wins.
func ClassifyCategory(title, content string) string {
	text := strings.ToLower(title + " " + content)

	for _, group := range categoryGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(text, keyword) {
				return group.label
			}
		}
	}

	return defaultCategory
}
