package cloud

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // Driver Postgres (importe outros no main.go se necessário)
)

// sqlQueryTimeout limita a duração das consultas SQL dos helpers.
const sqlQueryTimeout = 5 * time.Second

// LoadRecordsFromSQL executa uma query e devolve as linhas como registros.
// driver: "postgres", "mysql", etc. dsn: connection string.
func LoadRecordsFromSQL(ctx context.Context, driver, dsn, query string, args []interface{}) ([]map[string]interface{}, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query não informada", ErrInvalidInput)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão SQL: %w", err)
	}
	defer db.Close()

	ctxDb, cancel := context.WithTimeout(ctx, sqlQueryTimeout)
	defer cancel()

	rows, err := db.QueryContext(ctxDb, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro na query SQL: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// scanRecords faz o mapeamento dinâmico de colunas para registros.
func scanRecords(rows *sql.Rows) ([]map[string]interface{}, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler colunas: %w", err)
	}

	count := len(columns)
	values := make([]interface{}, count)
	valuePtrs := make([]interface{}, count)

	var records []map[string]interface{}
	for rows.Next() {
		for i := range columns {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, err
		}

		record := make(map[string]interface{})
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				record[col] = string(b)
			} else {
				record[col] = values[i]
			}
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
