package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/talentoplus/talento-api/internal/application/ports"
)

var _ ports.RawQueryExecutor = (*RawQueryExecutor)(nil)

// RawQueryExecutor ejecuta SQL arbitrario sobre una conexión dedicada,
// abierta y cerrada alrededor de cada ejecución (no usa el pool: el puente
// de consultas pide explícitamente una conexión por invocación).
//
// El SQL llega tal cual desde el servicio de completado; este adaptador no
// valida ni restringe el tipo de sentencia. Endurecer implica un rol de DB
// read-only, no un filtro aquí.
type RawQueryExecutor struct {
	dsn string
}

// NewRawQueryExecutor construye el ejecutor con el DSN de la base.
func NewRawQueryExecutor(dsn string) *RawQueryExecutor {
	return &RawQueryExecutor{dsn: dsn}
}

// QueryFirstValue ejecuta sqlQuery y devuelve la primera columna de la
// primera fila. found es false si el result set viene vacío.
func (x *RawQueryExecutor) QueryFirstValue(ctx context.Context, sqlQuery string) (any, bool, error) {
	conn, err := pgx.Connect(ctx, x.dsn)
	if err != nil {
		return nil, false, fmt.Errorf("abrir conexión: %w", err)
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, sqlQuery)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, false, err
		}
		return nil, false, nil
	}
	values, err := rows.Values()
	if err != nil {
		return nil, false, err
	}
	if len(values) == 0 {
		return nil, false, nil
	}
	return values[0], true, nil
}
