// Package moderation menyaring input bebas dari peserta: heuristik XSS
// sederhana dan daftar kata kasar (Indonesia + Inggris). Bukan sanitizer
// penuh; hanya penjaga gerbang sebelum data disimpan.
package moderation

import (
	"fmt"
	"html"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var profanityList = []string{
	// Indo - hewan & makian dasar
	"anj", "anjing", "babi", "bangsat", "bgst", "asu", "monyet", "kunyuk", "bajingan", "kampret", "keparat", "bejat", "edan", "sinting", "coeg", "su", "anjrit", "anjir", "njir",
	// Indo - kelamin & seksual
	"kontol", "kntl", "memek", "mmk", "jembut", "jmbt", "itil", "pentil", "titit", "tytyd", "peler", "bijik", "ngaceng", "sange", "sangek",
	"ngentot", "ngntt", "entot", "ewe", "ngewe", "bokep", "porno", "colok", "coli", "peju", "crot", "smean", "wikwik",
	// Indo - hinaan fisik/mental/status
	"tolol", "goblok", "bodoh", "bego", "idiot", "autis", "cacat", "gila", "bencong", "banci", "homo", "lesbi", "maho", "gay", "sarap", "gembel",
	// Indo - kasar daerah/lainnya
	"pantek", "puki", "pukimak", "cukimay", "matamu", "ndasmu", "haram", "kafir", "setan", "iblis", "dajjal", "sialan", "brengsek",
	// Indo - profesi negatif
	"lonte", "lonthe", "pelacur", "perek", "bispak", "jablay", "ayam kampus", "kimcil",
	// English
	"fuck", "fck", "shit", "sh1t", "bitch", "b1tch", "asshole", "dick", "cock", "pussy", "cunt", "whore", "slut", "bastard",
	"motherfucker", "faggot", "nigger", "nigga", "retard", "sex", "porn", "xxx", "nude", "boobs", "tits",
}

var (
	scriptTagPattern    = regexp.MustCompile(`(?is)<script\b[^>]*>(.*?)</script>`)
	jsSchemePattern     = regexp.MustCompile(`(?i)javascript:`)
	eventHandlerPattern = regexp.MustCompile(`(?i)on\w+=`)

	// Word-boundary match per kata untuk menghindari false positive
	// pada substring (mis. "analisis").
	profanityPatterns = compileProfanity(profanityList)

	strictPolicy = bluemonday.StrictPolicy()
)

func compileProfanity(words []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, word := range words {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(word)+`\b`))
	}
	return patterns
}

// Result adalah hasil pemeriksaan satu teks.
type Result struct {
	Valid   bool
	Message string
}

// Gate memeriksa teks bebas. Predikat kata terlarang bisa diganti
// tanpa mengubah alur pemeriksaan.
type Gate struct {
	disallowed func(string) bool
}

func NewGate() *Gate {
	return &Gate{disallowed: ContainsProfanity}
}

func NewGateWithPredicate(disallowed func(string) bool) *Gate {
	return &Gate{disallowed: disallowed}
}

// Validate memeriksa teks terhadap pola XSS dasar lalu daftar kata kasar.
// Fungsi murni: input sama selalu menghasilkan putusan sama.
func (g *Gate) Validate(text string) Result {
	if text == "" {
		return Result{Valid: true}
	}

	if scriptTagPattern.MatchString(text) || jsSchemePattern.MatchString(text) || eventHandlerPattern.MatchString(text) {
		return Result{Valid: false, Message: "Input mengandung karakter berbahaya (XSS detected)."}
	}

	if g.disallowed(text) {
		return Result{Valid: false, Message: "Input mengandung kata-kata yang tidak pantas. Harap gunakan bahasa yang sopan."}
	}

	return Result{Valid: true}
}

// ValidateField membungkus pesan penolakan dengan nama field yang bermasalah.
func (g *Gate) ValidateField(field, text string) error {
	if res := g.Validate(text); !res.Valid {
		return fmt.Errorf("%s: %s", field, res.Message)
	}
	return nil
}

// ContainsProfanity adalah predikat default untuk Gate.
func ContainsProfanity(text string) bool {
	if text == "" {
		return false
	}
	for _, pattern := range profanityPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// Escape meng-escape lima karakter HTML (& < > " ') untuk teks yang akan
// dirender kembali ke pengguna. Dipakai saat render, bukan saat simpan.
func Escape(text string) string {
	return html.EscapeString(text)
}

// StripMarkup membuang seluruh markup HTML dari teks sebelum keluar
// lewat endpoint publik.
func StripMarkup(text string) string {
	return strictPolicy.Sanitize(text)
}
