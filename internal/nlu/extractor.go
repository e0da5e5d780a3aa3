package nlu

import (
	"context"
	"regexp"
	"strconv"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
)

var quantityRe = regexp.MustCompile(`\b\d+\b`)

// ProductFinder lo que el extractor necesita del catálogo
type ProductFinder interface {
	FindByText(ctx context.Context, utterance string) (*entity.Product, bool)
}

// Extractor saca producto y cantidad de un texto libre
type Extractor struct {
	finder ProductFinder
}

// NewExtractor crea el extractor sobre un índice de catálogo
func NewExtractor(finder ProductFinder) *Extractor {
	return &Extractor{finder: finder}
}

// ExtractQuantity primera secuencia de dígitos que aparezca como token
// suelto. Sin número, o con cero, la cantidad es 1: pedir "0 martillos"
// no tiene sentido en una conversación de compra.
func ExtractQuantity(text string) int {
	m := quantityRe.FindString(text)
	if m == "" {
		return 1
	}
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ExtractProduct resuelve el producto mencionado (match difuso contra el
// catálogo) junto con la cantidad pedida. ok=false si ningún producto
// hizo match.
func (e *Extractor) ExtractProduct(ctx context.Context, text string) (*entity.Product, int, bool) {
	p, found := e.finder.FindByText(ctx, text)
	if !found {
		return nil, 0, false
	}
	return p, ExtractQuantity(text), true
}
