package article

import "strings"

const summaryLimit = 120

// Summarize derives a short summary from the article body. Short bodies
// pass through unchanged; otherwise prefer the first sentence, and as a
// last resort cut at a word boundary and append an ellipsis.
func Summarize(content string) string {
	if len(content) <= summaryLimit {
		return content
	}

	sentences := strings.SplitN(content, ". ", 2)
	if len(sentences[0]) <= summaryLimit {
		return sentences[0] + "."
	}

	var b strings.Builder
	for _, word := range strings.Fields(content) {
		// stop before the word that would overflow the limit
		if b.Len()+len(word) > summaryLimit {
			break
		}
		b.WriteString(word)
		b.WriteString(" ")
	}

	return strings.TrimSpace(b.String()) + "..."
}
