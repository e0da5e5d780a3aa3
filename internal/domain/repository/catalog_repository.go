package repository

import (
	"context"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
)

// CatalogRepository índice inmutable del catálogo de productos.
// No encontrar un producto es un resultado normal, no un error, por eso
// las búsquedas devuelven (producto, ok) en vez de error.
type CatalogRepository interface {
	// FindByText busca el producto mencionado en un texto libre (match difuso:
	// substring del nombre, substring sin tildes, solapamiento de tokens).
	// Lo usan agregar al carrito y consultar precio.
	FindByText(ctx context.Context, utterance string) (*entity.Product, bool)

	// FindExact busca por igualdad exacta del nombre normalizado.
	// Es la estrategia separada que usa quitar del carrito.
	FindExact(ctx context.Context, name string) (*entity.Product, bool)

	// ByCategory productos cuya categoría normalizada contiene la categoría dada,
	// en orden del catálogo
	ByCategory(ctx context.Context, category string) []entity.Product

	// Categories categorías normalizadas presentes en el catálogo, sin duplicados
	Categories(ctx context.Context) []string

	// SuggestionsFor resuelve los nombres sugeridos del producto contra el índice;
	// los nombres que no existan se descartan en silencio
	SuggestionsFor(ctx context.Context, p entity.Product) []entity.Product

	// All catálogo completo en orden de carga
	All(ctx context.Context) []entity.Product
}
