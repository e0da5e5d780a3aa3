package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
)

// ExcelParser lee el catálogo desde una hoja de cálculo .xlsx.
// Columnas esperadas en la primera hoja, con encabezado:
// Nombre | Categoria | Precio | Descripcion | Sugerencias
type ExcelParser struct{}

// NewExcelParser crea el parser de catálogo Excel
func NewExcelParser() *ExcelParser {
	return &ExcelParser{}
}

// Parse lee y valida la hoja de productos
func (p *ExcelParser) Parse(path string) ([]entity.Product, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir el catálogo %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catálogo %s sin hojas", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("no se pudieron leer las filas de %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("catálogo %s sin filas de productos", path)
	}

	var products []entity.Product
	for i, row := range rows[1:] { // saltar encabezado
		if len(row) == 0 || strings.TrimSpace(cell(row, 0)) == "" {
			continue
		}
		price, err := strconv.Atoi(strings.TrimSpace(cell(row, 2)))
		if err != nil {
			return nil, fmt.Errorf("fila %d de %s: precio inválido %q", i+2, path, cell(row, 2))
		}
		product := entity.Product{
			Name:        strings.TrimSpace(cell(row, 0)),
			Category:    strings.TrimSpace(cell(row, 1)),
			Price:       price,
			Description: strings.TrimSpace(cell(row, 3)),
		}
		for _, s := range strings.Split(cell(row, 4), ",") {
			if s = strings.TrimSpace(s); s != "" {
				product.Suggestions = append(product.Suggestions, s)
			}
		}
		products = append(products, product)
	}

	if err := validate(products); err != nil {
		return nil, fmt.Errorf("catálogo %s: %w", path, err)
	}
	return products, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
