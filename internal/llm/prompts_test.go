package llm

import (
	"strings"
	"testing"
)

func TestParseNameList_JSONArray(t *testing.T) {
	got := ParseNameList(`["jose gonzalez", "gonzalez, jose", "pepe gonzalez"]`)
	if len(got) != 3 || got[0] != "jose gonzalez" {
		t.Errorf("unexpected names: %v", got)
	}
}

func TestParseNameList_JSONWithSurroundingText(t *testing.T) {
	got := ParseNameList("Here are the variants:\n[\"bill johnson\", \"will johnson\"]\nLet me know if you need more.")
	if len(got) != 2 || got[0] != "bill johnson" || got[1] != "will johnson" {
		t.Errorf("unexpected names: %v", got)
	}
}

func TestParseNameList_LineFallback(t *testing.T) {
	got := ParseNameList("- John Smith\n- Maria Lopez\n2. Wei Zhang")
	if len(got) != 3 {
		t.Fatalf("expected 3 names, got %v", got)
	}
	if got[0] != "John Smith" || got[1] != "Maria Lopez" || got[2] != "Wei Zhang" {
		t.Errorf("unexpected names: %v", got)
	}
}

func TestParseNameList_Empty(t *testing.T) {
	if got := ParseNameList("[]"); len(got) != 0 {
		t.Errorf("expected no names, got %v", got)
	}
	if got := ParseNameList("   "); len(got) != 0 {
		t.Errorf("expected no names for blank response, got %v", got)
	}
}

func TestParseDisambiguation(t *testing.T) {
	match, rationale, err := ParseDisambiguation(`{"match": true, "rationale": "same employer and city"}`)
	if err != nil {
		t.Fatalf("ParseDisambiguation: %v", err)
	}
	if !match || rationale != "same employer and city" {
		t.Errorf("unexpected verdict: %t %q", match, rationale)
	}
}

func TestParseDisambiguation_EmbeddedJSON(t *testing.T) {
	match, _, err := ParseDisambiguation("Based on the excerpt:\n{\"match\": false, \"rationale\": \"different profession\"}\n")
	if err != nil {
		t.Fatalf("ParseDisambiguation: %v", err)
	}
	if match {
		t.Error("expected match=false")
	}
}

func TestParseDisambiguation_Malformed(t *testing.T) {
	if _, _, err := ParseDisambiguation("I think it is probably the same person."); err == nil {
		t.Error("expected error for non-JSON response")
	}
	if _, _, err := ParseDisambiguation(`{"match": "maybe"}`); err == nil {
		t.Error("expected error for wrong field type")
	}
}

func TestBuildDisambiguationPrompt_CarriesEvidence(t *testing.T) {
	prompt := BuildDisambiguationPrompt("Michael Brown", "michael brown", "Michelle Brown", "…award for her research…", 89)
	for _, want := range []string{"Michael Brown", "michael brown", "Michelle Brown", "89"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
