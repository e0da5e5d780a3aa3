package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "productos.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("no se pudo escribir el fixture: %v", err)
	}
	return path
}

func TestJSONParserParse(t *testing.T) {
	path := writeCatalog(t, `[
		{"nombre": "Martillo", "categoria": "Herramientas", "precio": 15000,
		 "descripcion": "Martillo de uña.", "sugerencias": ["Puntillas"]},
		{"nombre": "Brocha", "categoria": "Pinturas", "precio": 7000,
		 "descripcion": "Brocha de 3 pulgadas."}
	]`)

	products, err := NewJSONParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse falló: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("llegaron %d productos, se esperaban 2", len(products))
	}
	if products[0].Name != "Martillo" || products[0].Price != 15000 {
		t.Errorf("producto inesperado: %+v", products[0])
	}
	if len(products[0].Suggestions) != 1 || products[0].Suggestions[0] != "Puntillas" {
		t.Errorf("sugerencias inesperadas: %v", products[0].Suggestions)
	}
}

func TestJSONParserRejectsBadCatalogs(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"json inválido", `{esto no es json`},
		{"catálogo vacío", `[]`},
		{"sin nombre", `[{"categoria": "Herramientas", "precio": 100}]`},
		{"precio negativo", `[{"nombre": "Martillo", "categoria": "Herramientas", "precio": -5}]`},
		{"nombre duplicado", `[
			{"nombre": "Martillo", "categoria": "Herramientas", "precio": 100},
			{"nombre": "Martillo", "categoria": "Herramientas", "precio": 200}
		]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewJSONParser().Parse(writeCatalog(t, tc.content)); err == nil {
				t.Error("se esperaba error")
			}
		})
	}
}

func TestJSONParserMissingFile(t *testing.T) {
	if _, err := NewJSONParser().Parse("/no/existe.json"); err == nil {
		t.Error("se esperaba error con archivo inexistente")
	}
}
