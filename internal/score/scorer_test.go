package score

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"John Smith", "john smith"},
		{"  John   Smith  ", "john smith"},
		{"O'Brien, J.", "o brien j"},
		{"JOHNSON-SMITH", "johnson smith"},
		{"", ""},
		{"...", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.expected {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSimilarity_IdenticalNames(t *testing.T) {
	if got := Similarity("John Smith", "John Smith"); got != 100 {
		t.Errorf("expected 100 for identical names, got %d", got)
	}

	// Normalization-equal forms must also score exactly 100
	if got := Similarity("john  SMITH", "John Smith"); got != 100 {
		t.Errorf("expected 100 for normalization-equal names, got %d", got)
	}
}

func TestSimilarity_WordOrder(t *testing.T) {
	if got := Similarity("john smith", "smith john"); got != 100 {
		t.Errorf("expected 100 for reordered tokens, got %d", got)
	}
}

func TestSimilarity_Empty(t *testing.T) {
	if got := Similarity("", "john smith"); got != 0 {
		t.Errorf("expected 0 against empty string, got %d", got)
	}
	if got := Similarity("...", "john smith"); got != 0 {
		t.Errorf("expected 0 when one side normalizes to empty, got %d", got)
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"michael brown", "michelle brown"},
		{"mary anderson", "m e anderson"},
		{"jose gonzalez", "josé gonzález"},
		{"john smith", "entirely different"},
	}

	for _, p := range pairs {
		ab := Similarity(p[0], p[1])
		ba := Similarity(p[1], p[0])
		if ab != ba {
			t.Errorf("Similarity(%q, %q) = %d but reversed = %d", p[0], p[1], ab, ba)
		}
	}
}

func TestSimilarity_Bounds(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"},
		{"john smith", "jane doe"},
		{"x", "a very much longer name string"},
		{"michael brown", "michelle brown"},
	}

	for _, p := range pairs {
		got := Similarity(p[0], p[1])
		if got < 0 || got > 100 {
			t.Errorf("Similarity(%q, %q) = %d, out of [0,100]", p[0], p[1], got)
		}
	}
}

// Michael Brown vs Michelle Brown shares a surname and most of the first
// name. The token-set measure scores this 89, above the default high
// threshold; this is the documented false-positive tradeoff of the measure.
func TestSimilarity_SimilarButDifferentPerson(t *testing.T) {
	got := Similarity("michael brown", "michelle brown")
	if got != 89 {
		t.Errorf("expected 89 for michael/michelle brown, got %d", got)
	}
}

func TestSimilarity_UnrelatedNames(t *testing.T) {
	got := Similarity("john smith", "wei zhang")
	if got >= 70 {
		t.Errorf("expected low score for unrelated names, got %d", got)
	}
}

func TestSimilarity_SubsetTokens(t *testing.T) {
	// Token-set comparison: shared tokens dominate, extra tokens are tolerated
	got := Similarity("mary elizabeth anderson", "mary anderson")
	if got < 85 {
		t.Errorf("expected high score for token subset, got %d", got)
	}
}

func TestIndelRatio(t *testing.T) {
	if got := indelRatio("", ""); got != 100 {
		t.Errorf("indelRatio of two empty strings = %d, want 100", got)
	}
	if got := indelRatio("abc", "abc"); got != 100 {
		t.Errorf("indelRatio of equal strings = %d, want 100", got)
	}
	if got := indelRatio("abc", "xyz"); got != 0 {
		t.Errorf("indelRatio of disjoint strings = %d, want 0", got)
	}
	// 2*LCS/(la+lb): LCS("brown michael","brown michelle") = 12
	if got := indelRatio("brown michael", "brown michelle"); got != 89 {
		t.Errorf("indelRatio = %d, want 89", got)
	}
}

func TestLevenshteinRatio(t *testing.T) {
	if got := levenshteinRatio("smith", "smith"); got != 100 {
		t.Errorf("expected 100 for equal strings, got %d", got)
	}
	// distance 1 over length 5
	if got := levenshteinRatio("smith", "smyth"); got != 80 {
		t.Errorf("expected 80, got %d", got)
	}
}
