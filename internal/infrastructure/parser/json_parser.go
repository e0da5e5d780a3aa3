// Package parser carga el catálogo de productos desde archivos.
package parser

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
)

// JSONParser lee el catálogo en el formato original data/productos.json
type JSONParser struct{}

// NewJSONParser crea el parser de catálogo JSON
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse lee y valida el archivo de productos
func (p *JSONParser) Parse(path string) ([]entity.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el catálogo %s: %w", path, err)
	}

	var products []entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("catálogo %s con JSON inválido: %w", path, err)
	}
	if err := validate(products); err != nil {
		return nil, fmt.Errorf("catálogo %s: %w", path, err)
	}
	return products, nil
}

func validate(products []entity.Product) error {
	if len(products) == 0 {
		return fmt.Errorf("el catálogo está vacío")
	}
	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if p.Name == "" {
			return fmt.Errorf("producto %d sin nombre", i)
		}
		if p.Price < 0 {
			return fmt.Errorf("producto %q con precio negativo", p.Name)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("producto %q duplicado", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
