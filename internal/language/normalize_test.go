package language

import "testing"

func TestStandardize(t *testing.T) {
	t.Parallel()

	if got, err := Standardize(" EN_us "); err != nil || got != "en-US" {
		t.Fatalf("unexpected standardized code: %q (err %v)", got, err)
	}
	if got, err := Standardize("pt-br"); err != nil || got != "pt-BR" {
		t.Fatalf("unexpected standardized code: %q (err %v)", got, err)
	}
	if got, err := Standardize("de"); err != nil || got != "de" {
		t.Fatalf("unexpected standardized code: %q (err %v)", got, err)
	}
	if got, err := Standardize("en--GB"); err != nil || got != "en-GB" {
		t.Fatalf("unexpected collapsed code: %q (err %v)", got, err)
	}
	if _, err := Standardize("  "); err == nil {
		t.Fatal("expected error for blank code")
	}
	if _, err := Standardize("en_123"); err == nil {
		t.Fatal("expected error for malformed code")
	}
}

func TestNonRegional(t *testing.T) {
	t.Parallel()

	if got := NonRegional(" EN-us "); got != "en" {
		t.Fatalf("unexpected non-regional code: %q", got)
	}
	if got := NonRegional("zh"); got != "zh" {
		t.Fatalf("unexpected non-regional code: %q", got)
	}
	if got := NonRegional(" "); got != "" {
		t.Fatalf("expected empty code for blank input, got %q", got)
	}
}
