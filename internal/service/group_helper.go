package service

import (
	"fmt"
	"math/rand"
	"sort"

	"anoa.com/ramadhanpitstop/internal/model"
)

// groupThemes adalah palet nama+warna kelompok bertema Ramadhan. Berulang
// dengan akhiran angka kalau jumlah kelompok melebihi panjang palet.
var groupThemes = []struct {
	Name  string
	Color string
}{
	{"Ketupat Racing", "#FFC845"},
	{"Opor Speedster", "#4ade80"},
	{"Rendang Nitro", "#ef4444"},
	{"Marjan Turbo", "#f472b6"},
	{"Sarung Drift", "#60a5fa"},
	{"Peci Power", "#a78bfa"},
	{"Kurma Kinetic", "#fb923c"},
	{"Bedug Boom", "#14b8a6"},
	{"Kolak Express", "#d97706"},
	{"Takjil Turbo", "#e879f9"},
	{"Sahur Sonic", "#1e3a8a"},
	{"Imsak Impulse", "#94a3b8"},
	{"Mudik Motion", "#06b6d4"},
	{"THR Thunder", "#facc15"},
	{"Santri Sprint", "#84cc16"},
	{"Masjid Mach", "#10b981"},
	{"Tadarus Torque", "#8b5cf6"},
	{"Zakat Zoom", "#6366f1"},
	{"Puasa Power", "#f43f5e"},
	{"Lebaran Light", "#fde047"},
	{"Ngabuburit Nitro", "#f97316"},
	{"Sirup Speed", "#ec4899"},
}

// themeFor mengembalikan nama dan warna untuk kelompok ke-n (1-based).
// Lewat dari panjang palet, nama diberi akhiran nomor putaran.
func themeFor(n int) (string, string) {
	theme := groupThemes[(n-1)%len(groupThemes)]
	if n > len(groupThemes) {
		round := (n + len(groupThemes) - 1) / len(groupThemes)
		return fmt.Sprintf("%s %d", theme.Name, round), theme.Color
	}
	return theme.Name, theme.Color
}

// balancedOrder menyusun peserta menjadi satu urutan yang cenderung
// menyelang-nyeling section: partisi per section, acak tiap partisi
// (Fisher-Yates), lalu ambil satu-satu dari tiap section secara round-robin
// dengan urutan section yang stabil. Ini heuristik pemerataan, bukan jaminan
// keseimbangan keras.
func balancedOrder(participants []model.Participant, rng *rand.Rand) []model.Participant {
	buckets := make(map[string][]model.Participant)
	for _, p := range participants {
		section := p.Section
		if section == "" {
			section = model.SectionUnassigned
		}
		buckets[section] = append(buckets[section], p)
	}

	sections := make([]string, 0, len(buckets))
	for section := range buckets {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	for _, section := range sections {
		bucket := buckets[section]
		rng.Shuffle(len(bucket), func(i, j int) {
			bucket[i], bucket[j] = bucket[j], bucket[i]
		})
	}

	ordered := make([]model.Participant, 0, len(participants))
	for round := 0; len(ordered) < len(participants); round++ {
		for _, section := range sections {
			bucket := buckets[section]
			if round < len(bucket) {
				ordered = append(ordered, bucket[round])
			}
		}
	}

	return ordered
}
