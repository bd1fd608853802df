package model

// TargetName holds the raw screening subject plus its parsed components.
// Immutable once parsed.
type TargetName struct {
	Raw    string `json:"raw"`              // Name exactly as supplied
	First  string `json:"first,omitempty"`  // First name component (lowercase)
	Middle string `json:"middle,omitempty"` // Middle name(s), space-joined (lowercase)
	Last   string `json:"last"`             // Last name component (lowercase)
	Suffix string `json:"suffix,omitempty"` // Jr, Sr, III, ...
	Parsed bool   `json:"parsed"`           // False when parsing degraded to last-name-only
}

// VariantKind classifies how a name variant was derived
type VariantKind string

const (
	VariantExact     VariantKind = "exact"               // Full name or first+last as given
	VariantNickname  VariantKind = "nickname"            // Static nickname substitution (William -> Bill)
	VariantInitials  VariantKind = "initials"            // Initials plus surname (J. Smith, M.E. Anderson)
	VariantReordered VariantKind = "reordered"           // Surname-first or middle-as-first orderings
	VariantCultural  VariantKind = "cultural-normalized" // Diacritic-stripped, hyphen splits, LLM-suggested forms
)

// NameVariant is one plausible surface form of the target name.
// Text is always lowercase and whitespace-normalized.
type NameVariant struct {
	Text string      `json:"text"`
	Kind VariantKind `json:"kind"`
}

// VariantSet is the generated variant collection for one target name.
// Always non-empty: at minimum it contains the normalized original name.
type VariantSet struct {
	Target    TargetName    `json:"target"`
	Variants  []NameVariant `json:"variants"`
	Partial   bool          `json:"partial"`    // LLM augmentation was requested but failed
	FromCache bool          `json:"from_cache"` // Served from the variant cache
}

// ExtractionMethod identifies which cascade stage produced a candidate
type ExtractionMethod string

const (
	MethodStructuredParser ExtractionMethod = "structured-parser"
	MethodPattern          ExtractionMethod = "pattern"
	MethodGenerative       ExtractionMethod = "fallback-generative"
)

// Candidate is a person-name mention extracted from article text.
// Text preserves the original casing for display; matching normalizes it.
type Candidate struct {
	Text     string           `json:"text"`
	Method   ExtractionMethod `json:"method"`
	Position int              `json:"position"` // Byte offset of first occurrence, -1 if unknown
}

// ScoredPair is one (variant, candidate) comparison
type ScoredPair struct {
	Variant   NameVariant `json:"variant"`
	Candidate Candidate   `json:"candidate"`
	Score     int         `json:"score"` // 0-100
}
