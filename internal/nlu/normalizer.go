// Package nlu implementa el entendimiento del lenguaje por reglas:
// normalización de texto, clasificación de intenciones por frases clave
// y extracción de entidades (producto y cantidad).
package nlu

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize pasa a minúsculas conservando tildes ("Envío" -> "envío")
func Normalize(s string) string {
	return strings.ToLower(s)
}

// NormalizeStrict pasa a minúsculas y quita tildes y diéresis
// ("Envío" -> "envio"). Es la forma usada para todo el matching de
// intenciones, categorías y nombres de producto.
func NormalizeStrict(s string) string {
	out, _, err := transform.String(stripMarks, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
