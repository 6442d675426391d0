package eligibility

import "testing"

func TestDefaultClassifier(t *testing.T) {
	c := NewKeywordClassifier(nil)

	eligible := map[string]string{
		"CVS Pharmacy":              "pharmacy",
		"Walgreens":                 "pharmacy",
		"Doctor's Office":           "doctor",
		"Downtown Family CLINIC":    "doctor",
		"Bright Smile Dental":       "dental",
		"LensCrafters Optical":      "vision",
		"St. Mary's Hospital":       "hospital",
		"  rite aid #442  ":         "pharmacy",
		"Pediatric Urgent Care Ctr": "doctor",
	}
	for desc, want := range eligible {
		got, ok := c.Classify(desc)
		if !ok {
			t.Fatalf("expected %q to be eligible", desc)
		}
		if got != want {
			t.Fatalf("%q: expected category %s, got %s", desc, want, got)
		}
		if !c.IsEligible(desc) {
			t.Fatalf("IsEligible(%q) disagrees with Classify", desc)
		}
	}

	for _, desc := range []string{"Movie Tickets", "Grocery Store", "", "   ", "Gas Station"} {
		if c.IsEligible(desc) {
			t.Fatalf("expected %q to be ineligible", desc)
		}
	}
}

func TestClassifierIsDeterministic(t *testing.T) {
	c := NewKeywordClassifier(nil)
	for i := 0; i < 100; i++ {
		if !c.IsEligible("CVS Pharmacy") || c.IsEligible("Movie Tickets") {
			t.Fatalf("classification changed on iteration %d", i)
		}
	}
}

func TestConfiguredKeywordsReplaceDefaults(t *testing.T) {
	c := NewKeywordClassifier(RulesFromKeywords([]string{" Chiropractor ", "", "acupuncture"}))

	if !c.IsEligible("Back Chiropractor LLC") {
		t.Fatal("expected configured keyword to match")
	}
	if cat, _ := c.Classify("city acupuncture"); cat != "acupuncture" {
		t.Fatalf("expected acupuncture category, got %q", cat)
	}
	if c.IsEligible("CVS Pharmacy") {
		t.Fatal("defaults should not apply once rules are configured")
	}
}
