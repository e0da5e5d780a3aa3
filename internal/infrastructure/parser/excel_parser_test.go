package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook arma un .xlsx de prueba con encabezado y las filas dadas
func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	header := []interface{}{"Nombre", "Categoria", "Precio", "Descripcion", "Sugerencias"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("no se pudo escribir el encabezado: %v", err)
	}
	for i, row := range rows {
		cellRef, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatalf("no se pudo escribir la fila %d: %v", i+2, err)
		}
	}

	path := filepath.Join(t.TempDir(), "catalogo.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("no se pudo guardar el libro: %v", err)
	}
	return path
}

func TestExcelParserParse(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Martillo", "Herramientas", 15000, "Martillo de uña.", "Puntillas, Flexómetro"},
		{"Brocha", "Pinturas", 17000, "Brocha de 3 pulgadas.", ""},
	})

	products, err := NewExcelParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse falló: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("se esperaban 2 productos, hay %d", len(products))
	}

	martillo := products[0]
	if martillo.Name != "Martillo" || martillo.Category != "Herramientas" || martillo.Price != 15000 {
		t.Errorf("producto inesperado: %+v", martillo)
	}
	if len(martillo.Suggestions) != 2 || martillo.Suggestions[0] != "Puntillas" || martillo.Suggestions[1] != "Flexómetro" {
		t.Errorf("sugerencias: %v", martillo.Suggestions)
	}
	if len(products[1].Suggestions) != 0 {
		t.Errorf("la celda vacía no debería producir sugerencias: %v", products[1].Suggestions)
	}
}

func TestExcelParserSkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Martillo", "Herramientas", 15000, "Martillo de uña.", ""},
		{"", "", "", "", ""},
		{"Brocha", "Pinturas", 17000, "Brocha de 3 pulgadas.", ""},
	})

	products, err := NewExcelParser().Parse(path)
	if err != nil {
		t.Fatalf("Parse falló: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("las filas en blanco no deberían contar: %d productos", len(products))
	}
}

func TestExcelParserRejectsBadPrice(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Martillo", "Herramientas", "gratis", "Martillo de uña.", ""},
	})

	if _, err := NewExcelParser().Parse(path); err == nil {
		t.Error("un precio no numérico debería fallar")
	}
}

func TestExcelParserMissingFile(t *testing.T) {
	if _, err := NewExcelParser().Parse(filepath.Join(t.TempDir(), "no-existe.xlsx")); err == nil {
		t.Error("un archivo inexistente debería fallar")
	}
}
