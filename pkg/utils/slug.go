package utils

import (
	"strings"

	"github.com/gosimple/slug"
)

// Slugify transliterates s to ASCII and joins its words with single dashes.
func Slugify(s string) string {
	return slug.Make(s)
}

// EscapeLike escapes the LIKE wildcards so user input matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
