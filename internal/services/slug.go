package services

import (
	"strings"
	"unicode"

	"github.com/Tomas-vilte/IssueMate/internal/regex"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLength = 60

// Slugify convierte un título en un slug apto para nombre de archivo:
// normaliza a NFKD, descarta lo que no sea ASCII y colapsa separadores.
func Slugify(title string) string {
	normalized := norm.NFKD.String(title)

	var ascii strings.Builder
	for _, r := range normalized {
		if r < unicode.MaxASCII {
			ascii.WriteRune(r)
		}
	}

	cleaned := regex.SlugSeparator.ReplaceAllString(ascii.String(), "-")
	cleaned = strings.ToLower(strings.Trim(cleaned, "-"))

	if cleaned == "" {
		return "issue"
	}
	if len(cleaned) > maxSlugLength {
		cleaned = strings.Trim(cleaned[:maxSlugLength], "-")
	}
	return cleaned
}
