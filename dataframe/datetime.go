package dataframe

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// canonicalDatetimeLayout é o layout padrão das colunas de data/hora
// após a normalização.
const canonicalDatetimeLayout = "2006-01-02 15:04:05"

// defaultDatetimeLayouts são os layouts testados na detecção automática.
var defaultDatetimeLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseDatetime tenta interpretar o valor com os layouts informados.
func parseDatetime(value string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ConvertToDatetime detecta colunas de texto cujos valores não nulos são todos
// datas válidas e as normaliza para o layout "2006-01-02 15:04:05". A operação
// é idempotente: colunas já normalizadas continuam válidas. Layouts extras
// podem ser informados além dos padrões.
func ConvertToDatetime(df dataframe.DataFrame, layouts ...string) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe inválido: %w", df.Err)
	}

	allLayouts := append(append([]string(nil), defaultDatetimeLayouts...), layouts...)
	out := df
	names := df.Names()
	types := df.Types()

	for i, name := range names {
		if types[i] != series.String {
			continue
		}

		col := df.Col(name)
		values := col.Records()
		converted := make([]string, len(values))
		allParse := true
		anyValue := false

		for j, raw := range values {
			elem := col.Elem(j)
			if isEmptyValue(raw, elem.IsNA()) {
				converted[j] = raw
				continue
			}
			anyValue = true
			t, ok := parseDatetime(raw, allLayouts)
			if !ok {
				allParse = false
				break
			}
			converted[j] = t.Format(canonicalDatetimeLayout)
		}

		if allParse && anyValue {
			out = out.Mutate(series.New(converted, series.String, name))
			if out.Err != nil {
				return dataframe.DataFrame{}, fmt.Errorf("erro ao converter coluna %s: %w", name, out.Err)
			}
		}
	}
	return out, nil
}

// FormatDatetimeColumns reformata colunas de data/hora já normalizadas para o
// layout informado. Quando outputColumns é informado, o resultado de cada
// coluna é escrito na coluna de saída correspondente; caso contrário a
// própria coluna é sobrescrita.
func FormatDatetimeColumns(df dataframe.DataFrame, columns []string, layout string, outputColumns ...string) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe inválido: %w", df.Err)
	}
	if len(columns) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: nenhuma coluna informada", ErrInvalidInput)
	}
	if layout == "" {
		return dataframe.DataFrame{}, fmt.Errorf("%w: layout vazio", ErrInvalidInput)
	}
	if len(outputColumns) > 0 && len(outputColumns) != len(columns) {
		return dataframe.DataFrame{}, fmt.Errorf("%w: outputColumns deve ter o mesmo tamanho de columns", ErrInvalidInput)
	}

	out := df
	for idx, name := range columns {
		if !hasColumn(df, name) {
			return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrColumnNotFound, name)
		}

		col := df.Col(name)
		values := col.Records()
		formatted := make([]string, len(values))

		for j, raw := range values {
			elem := col.Elem(j)
			if isEmptyValue(raw, elem.IsNA()) {
				formatted[j] = raw
				continue
			}
			t, ok := parseDatetime(raw, []string{canonicalDatetimeLayout})
			if !ok {
				return dataframe.DataFrame{}, fmt.Errorf("%w: coluna %s não contém datas normalizadas", ErrInvalidInput, name)
			}
			formatted[j] = t.Format(layout)
		}

		target := name
		if len(outputColumns) > 0 {
			target = outputColumns[idx]
		}
		out = out.Mutate(series.New(formatted, series.String, target))
		if out.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("erro ao formatar coluna %s: %w", name, out.Err)
		}
	}
	return out, nil
}
