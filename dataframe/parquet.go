package dataframe

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/parquet-go/parquet-go"
)

// parquetSchema monta o schema parquet a partir dos tipos das séries do
// dataframe. Todas as colunas são opcionais para aceitar valores ausentes.
func parquetSchema(df dataframe.DataFrame) *parquet.Schema {
	group := parquet.Group{}
	names := df.Names()
	types := df.Types()
	for i, name := range names {
		var node parquet.Node
		switch types[i] {
		case series.Int:
			node = parquet.Int(64)
		case series.Float:
			node = parquet.Leaf(parquet.DoubleType)
		case series.Bool:
			node = parquet.Leaf(parquet.BooleanType)
		default:
			node = parquet.String()
		}
		group[name] = parquet.Optional(node)
	}
	return parquet.NewSchema("dataframe", group)
}

// writeParquet serializa o dataframe como parquet em memória.
func writeParquet(df dataframe.DataFrame) ([]byte, error) {
	buf := new(bytes.Buffer)
	writer := parquet.NewGenericWriter[map[string]any](buf, parquetSchema(df))

	rows := make([]map[string]any, 0, df.Nrow())
	for _, record := range df.Maps() {
		row := make(map[string]any, len(record))
		for k, v := range record {
			row[k] = v
		}
		rows = append(rows, row)
	}

	if _, err := writer.Write(rows); err != nil {
		return nil, fmt.Errorf("erro ao converter dataframe para parquet: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar escrita parquet: %w", err)
	}
	return buf.Bytes(), nil
}

// readParquet cria um dataframe a partir de conteúdo parquet. As linhas são
// lidas com o schema do próprio arquivo, já que registros dinâmicos (mapas)
// não carregam schema próprio.
func readParquet(contents []byte) (dataframe.DataFrame, error) {
	file, err := parquet.OpenFile(bytes.NewReader(contents), int64(len(contents)))
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("erro ao abrir conteúdo parquet: %w", err)
	}

	// Colunas folha na ordem do schema; para schemas planos o primeiro
	// segmento do path é o nome da coluna.
	paths := file.Schema().Columns()
	names := make([]string, len(paths))
	for i, path := range paths {
		names[i] = path[0]
	}

	var records []map[string]interface{}
	for _, rowGroup := range file.RowGroups() {
		groupRecords, err := readRowGroup(rowGroup, names)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		records = append(records, groupRecords...)
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: arquivo parquet sem registros", ErrInvalidInput)
	}

	df := dataframe.LoadMaps(records)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("erro ao montar dataframe parquet: %w", df.Err)
	}
	return df, nil
}

// readRowGroup converte as linhas de um row group em registros.
func readRowGroup(rowGroup parquet.RowGroup, names []string) ([]map[string]interface{}, error) {
	rows := rowGroup.Rows()
	defer rows.Close()

	var records []map[string]interface{}
	buf := make([]parquet.Row, 64)
	for {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			record := make(map[string]interface{}, len(names))
			for _, value := range row {
				if value.IsNull() {
					continue
				}
				record[names[value.Column()]] = parquetValue(value)
			}
			records = append(records, record)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return records, nil
			}
			return nil, fmt.Errorf("erro ao ler linhas parquet: %w", err)
		}
		if n == 0 {
			return records, nil
		}
	}
}

// parquetValue converte um valor parquet para o tipo Go correspondente.
func parquetValue(v parquet.Value) interface{} {
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return int(v.Int32())
	case parquet.Int64:
		return int(v.Int64())
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	default:
		return v.String()
	}
}
