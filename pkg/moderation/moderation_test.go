package moderation

import (
	"strings"
	"testing"
)

func TestValidateRejectsScriptInjection(t *testing.T) {
	gate := NewGate()

	cases := []string{
		"<script>alert(1)</script>",
		"halo <SCRIPT src='x'>boo</SCRIPT>",
		"javascript:alert(1)",
		"<img src=x onerror=alert(1)>",
	}

	for _, text := range cases {
		res := gate.Validate(text)
		if res.Valid {
			t.Fatalf("expected rejection for %q", text)
		}
		if !strings.Contains(res.Message, "XSS") {
			t.Fatalf("expected XSS reason for %q, got %q", text, res.Message)
		}
	}
}

func TestValidateRejectsProfanity(t *testing.T) {
	gate := NewGate()

	for _, text := range []string{"kontol", "dasar GOBLOK banget", "what the fuck"} {
		res := gate.Validate(text)
		if res.Valid {
			t.Fatalf("expected rejection for %q", text)
		}
		if !strings.Contains(res.Message, "tidak pantas") {
			t.Fatalf("expected profanity reason for %q, got %q", text, res.Message)
		}
	}
}

func TestValidateAcceptsCleanText(t *testing.T) {
	gate := NewGate()

	for _, text := range []string{"Ahmad Fulan", "semangat puasanya!", "", "analisis data"} {
		if res := gate.Validate(text); !res.Valid {
			t.Fatalf("expected %q accepted, got %q", text, res.Message)
		}
	}
}

// "analisis" memuat substring "anal" tapi bukan kata kasar; batas kata harus
// mencegah false positive.
func TestContainsProfanityWordBoundary(t *testing.T) {
	if ContainsProfanity("analisis kelas") {
		t.Fatal("substring inside a longer word must not match")
	}
	if !ContainsProfanity("dia asu banget") {
		t.Fatal("standalone word must match")
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	gate := NewGate()
	input := "<script>alert(1)</script>"

	first := gate.Validate(input)
	for i := 0; i < 50; i++ {
		if got := gate.Validate(input); got != first {
			t.Fatalf("verdict changed between calls: %+v vs %+v", first, got)
		}
	}
}

func TestGateWithCustomPredicate(t *testing.T) {
	gate := NewGateWithPredicate(func(text string) bool {
		return strings.Contains(text, "terlarang")
	})

	if gate.Validate("kata terlarang").Valid {
		t.Fatal("custom predicate must be honored")
	}
	if !gate.Validate("kontol").Valid {
		t.Fatal("default list must not apply when predicate replaced")
	}
}

func TestEscapeFiveCharacters(t *testing.T) {
	got := Escape(`& < > " '`)
	for _, raw := range []string{"<", ">", `"`, "'"} {
		if strings.Contains(got, raw) {
			t.Fatalf("character %q left unescaped in %q", raw, got)
		}
	}
	if !strings.Contains(got, "&amp;") {
		t.Fatalf("ampersand not escaped in %q", got)
	}
}

func TestStripMarkupRemovesTags(t *testing.T) {
	got := StripMarkup(`<b>Budi</b> <script>alert(1)</script>`)
	if strings.Contains(got, "<b>") || strings.Contains(got, "<script>") {
		t.Fatalf("markup left in output: %q", got)
	}
	if !strings.Contains(got, "Budi") {
		t.Fatalf("text content lost: %q", got)
	}
}

func TestValidateFieldNamesOffendingField(t *testing.T) {
	gate := NewGate()

	err := gate.ValidateField("Komentar", "javascript:void(0)")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Komentar") {
		t.Fatalf("field name missing from %q", err.Error())
	}
}
