package service

import (
	"math/rand"
	"testing"

	"anoa.com/ramadhanpitstop/internal/model"
)

func TestThemeForCyclesPalette(t *testing.T) {
	name1, color1 := themeFor(1)
	if name1 != "Ketupat Racing" || color1 != "#FFC845" {
		t.Fatalf("unexpected first theme: %s %s", name1, color1)
	}

	name22, _ := themeFor(22)
	if name22 != "Sirup Speed" {
		t.Fatalf("expected last palette entry without suffix, got %s", name22)
	}

	name23, color23 := themeFor(23)
	if name23 != "Ketupat Racing 2" {
		t.Fatalf("expected suffixed theme past palette, got %s", name23)
	}
	if color23 != color1 {
		t.Fatalf("expected color to cycle, got %s", color23)
	}

	name45, _ := themeFor(45)
	if name45 != "Ketupat Racing 3" {
		t.Fatalf("expected third round suffix, got %s", name45)
	}
}

func sectionParticipants(counts map[string]int) []model.Participant {
	var out []model.Participant
	id := uint(0)
	for _, section := range []string{"X", "Y", "Z", ""} {
		for i := 0; i < counts[section]; i++ {
			id++
			out = append(out, model.Participant{ID: id, Section: section, IsCheckedIn: true})
		}
	}
	return out
}

func TestBalancedOrderKeepsEveryParticipantOnce(t *testing.T) {
	participants := sectionParticipants(map[string]int{"X": 3, "Y": 2, "Z": 2})
	rng := rand.New(rand.NewSource(1))

	ordered := balancedOrder(participants, rng)
	if len(ordered) != len(participants) {
		t.Fatalf("expected %d participants, got %d", len(participants), len(ordered))
	}

	seen := make(map[uint]bool)
	for _, p := range ordered {
		if seen[p.ID] {
			t.Fatalf("participant %d appears twice", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestBalancedOrderInterleavesSections(t *testing.T) {
	participants := sectionParticipants(map[string]int{"X": 3, "Y": 3, "Z": 3})
	rng := rand.New(rand.NewSource(42))

	ordered := balancedOrder(participants, rng)

	// Tiga ronde round-robin: tiap ronde memuat tepat satu dari tiap section.
	for round := 0; round < 3; round++ {
		sections := make(map[string]bool)
		for i := 0; i < 3; i++ {
			sections[ordered[round*3+i].Section] = true
		}
		if len(sections) != 3 {
			t.Fatalf("round %d does not contain all sections: %v", round, sections)
		}
	}
}

func TestBalancedOrderBucketsEmptySection(t *testing.T) {
	participants := []model.Participant{
		{ID: 1, Section: ""},
		{ID: 2, Section: "Ops"},
	}
	rng := rand.New(rand.NewSource(7))

	ordered := balancedOrder(participants, rng)
	if len(ordered) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(ordered))
	}
}
