package variants

import "testing"

func TestParseName_FirstLast(t *testing.T) {
	got := ParseName("John Smith")
	if !got.Parsed {
		t.Error("expected Parsed=true")
	}
	if got.First != "john" || got.Last != "smith" || got.Middle != "" {
		t.Errorf("unexpected parse: %+v", got)
	}
}

func TestParseName_Middle(t *testing.T) {
	got := ParseName("Mary Elizabeth Anderson")
	if got.First != "mary" || got.Middle != "elizabeth" || got.Last != "anderson" {
		t.Errorf("unexpected parse: %+v", got)
	}
}

func TestParseName_HonorificAndSuffix(t *testing.T) {
	got := ParseName("Dr. James Robert Wilson Jr.")
	if got.First != "james" || got.Middle != "robert" || got.Last != "wilson" {
		t.Errorf("unexpected parse: %+v", got)
	}
	if got.Suffix != "jr" {
		t.Errorf("expected suffix jr, got %q", got.Suffix)
	}
}

func TestParseName_SingleToken(t *testing.T) {
	got := ParseName("Madonna")
	if got.Parsed {
		t.Error("expected degraded parse for single token")
	}
	if got.Last != "madonna" {
		t.Errorf("expected last-only target, got %+v", got)
	}
}

func TestParseName_SuffixNeverOnlyToken(t *testing.T) {
	got := ParseName("Jr")
	if got.Last != "jr" || got.Suffix != "" {
		t.Errorf("a lone suffix token must stay the last name, got %+v", got)
	}
}

func TestParseName_Hyphenated(t *testing.T) {
	got := ParseName("Sarah Johnson-Smith")
	if got.First != "sarah" || got.Last != "johnson-smith" {
		t.Errorf("unexpected parse: %+v", got)
	}
}
