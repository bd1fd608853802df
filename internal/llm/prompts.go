package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const screeningSystem = "You are an assistant supporting adverse-media screening in a regulated compliance workflow. Follow the output format exactly; do not add commentary."

// BuildVariantPrompt asks for culturally-informed name variants
func BuildVariantPrompt(fullName string) string {
	return fmt.Sprintf(`Generate alternate surface forms of the personal name %q that could appear in news articles.

Include, where applicable:
- localized orderings (family name first)
- forms with honorifics or titles removed
- transliteration and diacritic differences
- common shortened or anglicized forms

Rules:
1. Return ONLY a JSON array of strings, e.g. ["jose gonzalez", "gonzalez, jose"].
2. Lowercase every variant.
3. Do not invent unrelated names; every variant must plausibly denote the same person.
4. At most 10 variants.`, fullName)
}

// BuildExtractPrompt asks for person names mentioned in an article
func BuildExtractPrompt(articleText string) string {
	return fmt.Sprintf(`Extract every personal name mentioned in the news article below.

Rules:
1. Return ONLY a JSON array of strings, one entry per distinct person.
2. Use the name exactly as written in the article.
3. Exclude organizations, places, and products.
4. Return [] if no person is named.

Article:
%s`, articleText)
}

// BuildDisambiguationPrompt asks whether an ambiguous mention refers to the target
func BuildDisambiguationPrompt(target, variant, candidate, excerpt string, score int) string {
	return fmt.Sprintf(`A compliance analyst is screening the individual %q against a news article.
A fuzzy comparison matched the article mention %q against the name variant %q with a heuristic score of %d/100, which is ambiguous.

Article excerpt around the mention:
%s

Question: does this mention refer to the screened individual?
Answer ONLY with a JSON object: {"match": true|false, "rationale": "<one or two sentences>"}.
When the evidence is genuinely unclear, answer false; an analyst will review the case.`, target, candidate, variant, score, excerpt)
}

// ParseNameList parses a model response expected to be a JSON array of names.
// Falls back to line splitting because smaller models drift from the format.
func ParseNameList(text string) []string {
	text = strings.TrimSpace(text)

	if start := strings.Index(text, "["); start >= 0 {
		if end := strings.LastIndex(text, "]"); end > start {
			var names []string
			if err := json.Unmarshal([]byte(text[start:end+1]), &names); err == nil {
				return cleanNames(names)
			}
		}
	}

	var names []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*0123456789.) ")
		line = strings.Trim(line, `"',`)
		if line != "" {
			names = append(names, line)
		}
	}
	return cleanNames(names)
}

func cleanNames(names []string) []string {
	var out []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// ParseDisambiguation parses the delegate's JSON verdict
func ParseDisambiguation(text string) (bool, string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return false, "", fmt.Errorf("no JSON object in response: %q", truncate(text, 120))
	}

	var verdict struct {
		Match     bool   `json:"match"`
		Rationale string `json:"rationale"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &verdict); err != nil {
		return false, "", fmt.Errorf("parse disambiguation response: %w", err)
	}

	return verdict.Match, strings.TrimSpace(verdict.Rationale), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
