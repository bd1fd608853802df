package variants

import (
	"strings"

	"github.com/ppiankov/namescreen/internal/model"
)

var honorifics = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "miss": true, "dr": true,
	"prof": true, "sir": true, "dame": true, "rev": true, "hon": true,
}

var suffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true, "v": true,
	"phd": true, "md": true, "esq": true,
}

// ParseName splits a raw name into components. Parsing never fails: anything
// that cannot be split degrades to a last-name-only target with Parsed=false.
func ParseName(raw string) model.TargetName {
	target := model.TargetName{Raw: raw}

	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(raw)) {
		trimmed := strings.Trim(tok, ".,")
		if trimmed == "" {
			continue
		}
		if len(tokens) == 0 && honorifics[trimmed] {
			continue
		}
		tokens = append(tokens, trimmed)
	}

	if len(tokens) == 0 {
		target.Last = strings.ToLower(strings.TrimSpace(raw))
		return target
	}

	// Peel a recognized suffix off the end, but never the only token
	if len(tokens) > 1 && suffixes[tokens[len(tokens)-1]] {
		target.Suffix = tokens[len(tokens)-1]
		tokens = tokens[:len(tokens)-1]
	}

	switch len(tokens) {
	case 1:
		target.Last = tokens[0]
	default:
		target.First = tokens[0]
		target.Last = tokens[len(tokens)-1]
		if len(tokens) > 2 {
			target.Middle = strings.Join(tokens[1:len(tokens)-1], " ")
		}
		target.Parsed = true
	}

	return target
}
