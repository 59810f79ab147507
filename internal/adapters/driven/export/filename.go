package export

import (
	"math/rand/v2"
	"strings"
)

// baseNameLength is the length of every generated base filename.
const baseNameLength = 15

// alphanumerics is the character set used to pad base names.
const alphanumerics = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomBaseName derives a 15-character alphanumeric base filename
// from a URL: the first 8 alphanumeric characters after the scheme,
// padded with random characters. The prefix keeps exports visually
// groupable by site while the suffix avoids collisions.
func RandomBaseName(url string) string {
	trimmed := strings.TrimPrefix(url, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")

	var b strings.Builder
	for _, r := range trimmed {
		if b.Len() >= 8 {
			break
		}
		if ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	for b.Len() < baseNameLength {
		b.WriteByte(alphanumerics[rand.IntN(len(alphanumerics))])
	}
	return b.String()
}
