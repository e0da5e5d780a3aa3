package storage

import (
	"context"
	"strings"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/constants"
	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
	"github.com/yourusername/ferreteria-chat-bot/internal/domain/repository"
	"github.com/yourusername/ferreteria-chat-bot/internal/nlu"
)

// indexedProduct un producto junto con sus formas normalizadas,
// calculadas una sola vez al construir el índice
type indexedProduct struct {
	product        entity.Product
	nameLower      string   // minúsculas, tildes conservadas
	nameStrict     string   // minúsculas, sin tildes
	categoryStrict string   // categoría en minúsculas, sin tildes
	tokens         []string // tokens del nombre sin tildes, de largo >= MinFuzzyTokenLen
}

type memoryCatalogRepository struct {
	products   []indexedProduct
	byStrict   map[string]int // nombre normalizado -> índice en products
	categories []string       // normalizadas, sin duplicados, en orden del catálogo
}

// NewMemoryCatalogRepository construye el índice en memoria del catálogo.
// El índice es inmutable después de construido, así que se puede compartir
// entre transportes sin lock.
func NewMemoryCatalogRepository(products []entity.Product) repository.CatalogRepository {
	repo := &memoryCatalogRepository{
		byStrict: make(map[string]int, len(products)),
	}
	seen := make(map[string]struct{})
	for _, p := range products {
		strict := nlu.NormalizeStrict(p.Name)
		cat := nlu.NormalizeStrict(p.Category)
		repo.products = append(repo.products, indexedProduct{
			product:        p,
			nameLower:      nlu.Normalize(p.Name),
			nameStrict:     strict,
			categoryStrict: cat,
			tokens:         fuzzyTokens(strict),
		})
		if _, dup := repo.byStrict[strict]; !dup {
			repo.byStrict[strict] = len(repo.products) - 1
		}
		if _, dup := seen[cat]; !dup && cat != "" {
			seen[cat] = struct{}{}
			repo.categories = append(repo.categories, cat)
		}
	}
	return repo
}

// FindByText match difuso en tres estrategias, en orden: (a) el nombre en
// minúsculas aparece dentro del texto, (b) lo mismo sin tildes en ambos
// lados, (c) solapamiento de tokens. Dentro de cada estrategia gana el
// primer producto en orden del catálogo.
func (m *memoryCatalogRepository) FindByText(ctx context.Context, utterance string) (*entity.Product, bool) {
	lower := nlu.Normalize(utterance)
	for i := range m.products {
		if strings.Contains(lower, m.products[i].nameLower) {
			p := m.products[i].product
			return &p, true
		}
	}

	strict := nlu.NormalizeStrict(utterance)
	for i := range m.products {
		if strings.Contains(strict, m.products[i].nameStrict) {
			p := m.products[i].product
			return &p, true
		}
	}

	uttTokens := fuzzyTokens(strict)
	for i := range m.products {
		if tokensOverlap(m.products[i].tokens, uttTokens) {
			p := m.products[i].product
			return &p, true
		}
	}
	return nil, false
}

// FindExact igualdad exacta del nombre normalizado sin tildes
func (m *memoryCatalogRepository) FindExact(ctx context.Context, name string) (*entity.Product, bool) {
	i, ok := m.byStrict[nlu.NormalizeStrict(name)]
	if !ok {
		return nil, false
	}
	p := m.products[i].product
	return &p, true
}

// ByCategory productos cuya categoría normalizada contiene la pedida
func (m *memoryCatalogRepository) ByCategory(ctx context.Context, category string) []entity.Product {
	want := nlu.NormalizeStrict(category)
	if want == "" {
		return nil
	}
	var out []entity.Product
	for i := range m.products {
		if strings.Contains(m.products[i].categoryStrict, want) {
			out = append(out, m.products[i].product)
		}
	}
	return out
}

// Categories categorías presentes en el catálogo
func (m *memoryCatalogRepository) Categories(ctx context.Context) []string {
	out := make([]string, len(m.categories))
	copy(out, m.categories)
	return out
}

// SuggestionsFor resuelve los nombres sugeridos contra el índice;
// los que no existan se descartan sin avisar
func (m *memoryCatalogRepository) SuggestionsFor(ctx context.Context, p entity.Product) []entity.Product {
	var out []entity.Product
	for _, name := range p.Suggestions {
		if i, ok := m.byStrict[nlu.NormalizeStrict(name)]; ok {
			out = append(out, m.products[i].product)
		}
	}
	return out
}

// All catálogo completo, copia defensiva
func (m *memoryCatalogRepository) All(ctx context.Context) []entity.Product {
	out := make([]entity.Product, len(m.products))
	for i := range m.products {
		out[i] = m.products[i].product
	}
	return out
}

func fuzzyTokens(strict string) []string {
	var out []string
	for _, tok := range strings.Fields(strict) {
		if len(tok) >= constants.MinFuzzyTokenLen {
			out = append(out, tok)
		}
	}
	return out
}

// tokensOverlap hay match si algún token del nombre es substring de algún
// token del texto, o al revés ("clavo" pedido encuentra "Clavos")
func tokensOverlap(nameTokens, uttTokens []string) bool {
	for _, nt := range nameTokens {
		for _, ut := range uttTokens {
			if strings.Contains(ut, nt) || strings.Contains(nt, ut) {
				return true
			}
		}
	}
	return false
}
