package export

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/flake"
)

// maxSeedSlug bounds the seed portion of generated file names.
const maxSeedSlug = 40

// FileName returns a deterministic, filesystem-safe name for the clamped
// parameter tuple, e.g. "snowflake-ada-lovelace-6-10-c6-t10-4.33in.stl".
// ext may be given with or without a leading dot; empty omits it.
func FileName(p flake.Params, ext string) string {
	p = p.Clamp()
	name := fmt.Sprintf("snowflake-%s-c%d-t%s-%sin",
		SeedSlug(p.Seed),
		p.Complexity,
		strconv.FormatFloat(p.Thickness, 'f', -1, 64),
		strconv.FormatFloat(p.SizeInches, 'f', 2, 64),
	)
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return name
	}
	return name + "." + ext
}

// SeedSlug folds seed text to lowercase ASCII: accents are stripped, runs of
// any other character become a single dash. An empty result becomes "flake".
func SeedSlug(seed string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		seed,
	)
	if err != nil {
		folded = seed
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if b.Len() >= maxSeedSlug {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "flake"
	}
	return slug
}
