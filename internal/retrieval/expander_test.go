package retrieval

import (
	"strings"
	"testing"
)

func TestExpand_OriginalFirst(t *testing.T) {
	got := Expand("what are requirements")
	if len(got) == 0 {
		t.Fatal("Expand returned no variants")
	}
	if got[0] != "what are requirements" {
		t.Errorf("first variant = %q, want the original query", got[0])
	}
}

func TestExpand_WordSynonyms(t *testing.T) {
	got := Expand("what is a stakeholder")

	want := "what is a user"
	found := false
	for _, v := range got {
		if v == want {
			found = true
		}
	}
	if !found {
		t.Errorf("Expand did not produce %q; got %v", want, got)
	}
}

func TestExpand_PhraseSynonyms(t *testing.T) {
	got := Expand("explain gap analysis")

	found := false
	for _, v := range got {
		if strings.Contains(v, "current state analysis") {
			found = true
		}
	}
	if !found {
		t.Errorf("phrase synonym not applied; got %v", got)
	}
}

func TestExpand_NoSynonyms(t *testing.T) {
	got := Expand("completely unrelated words here")
	if len(got) != 1 {
		t.Errorf("expected only the original query, got %v", got)
	}
}

func TestExpand_WholeTokenOnly(t *testing.T) {
	// "bank" contains "ba" as a substring but not as a token, so the
	// "ba" synonym must not fire.
	for _, v := range Expand("bank reconciliation") {
		if strings.Contains(v, "business analysis") {
			t.Errorf("substring token expanded: %q", v)
		}
	}
}

func TestExpand_Dedup(t *testing.T) {
	got := Expand("business analysis of business analysis")
	seen := make(map[string]bool)
	for _, v := range got {
		if seen[v] {
			t.Errorf("duplicate variant %q", v)
		}
		seen[v] = true
	}
}
