package storage

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"

	"github.com/yourusername/ferreteria-chat-bot/internal/domain/entity"
)

// LoadPostgres lee el catálogo desde una tabla `productos` de Postgres.
// Es una fuente alternativa al archivo JSON/Excel: se lee una vez al
// arranque y el índice sigue siendo inmutable en memoria.
//
// Esquema esperado:
//
//	CREATE TABLE productos (
//	    id          SERIAL PRIMARY KEY,
//	    nombre      TEXT NOT NULL,
//	    categoria   TEXT NOT NULL,
//	    precio      INTEGER NOT NULL,
//	    descripcion TEXT NOT NULL DEFAULT '',
//	    sugerencias TEXT -- nombres separados por coma
//	);
func LoadPostgres(dsn string) ([]entity.Product, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir la conexión a postgres: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("no se pudo conectar a postgres: %w", err)
	}

	rows, err := db.Query(`SELECT nombre, categoria, precio, descripcion, COALESCE(sugerencias, '')
		FROM productos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la tabla productos: %w", err)
	}
	defer rows.Close()

	var products []entity.Product
	for rows.Next() {
		var p entity.Product
		var suggestions string
		if err := rows.Scan(&p.Name, &p.Category, &p.Price, &p.Description, &suggestions); err != nil {
			return nil, fmt.Errorf("fila de producto inválida: %w", err)
		}
		for _, s := range strings.Split(suggestions, ",") {
			if s = strings.TrimSpace(s); s != "" {
				p.Suggestions = append(p.Suggestions, s)
			}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error recorriendo productos: %w", err)
	}
	return products, nil
}
