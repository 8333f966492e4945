package dataframe

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// isEmptyValue reproduz o critério de valor ausente: campo vazio,
// "nan"/"NaN" ou NA da própria série.
func isEmptyValue(raw string, isNA bool) bool {
	if isNA {
		return true
	}
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.EqualFold(trimmed, "nan") || trimmed == "<nil>"
}

// Clean remove linhas que contenham valor ausente em qualquer coluna.
// Linhas duplicadas são preservadas.
func Clean(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe inválido: %w", df.Err)
	}

	names := df.Names()
	keep := make([]int, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		complete := true
		for _, name := range names {
			elem := df.Col(name).Elem(i)
			if isEmptyValue(elem.String(), elem.IsNA()) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}

	out := df.Subset(keep)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("erro ao limpar dataframe: %w", out.Err)
	}
	return out, nil
}

// RemoveEmptyValues remove as linhas com valor ausente na coluna informada.
func RemoveEmptyValues(df dataframe.DataFrame, column string) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe inválido: %w", df.Err)
	}
	if !hasColumn(df, column) {
		return dataframe.DataFrame{}, fmt.Errorf("%w: %s", ErrColumnNotFound, column)
	}

	col := df.Col(column)
	keep := make([]int, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		elem := col.Elem(i)
		if !isEmptyValue(elem.String(), elem.IsNA()) {
			keep = append(keep, i)
		}
	}

	out := df.Subset(keep)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("erro ao remover valores vazios: %w", out.Err)
	}
	return out, nil
}

// Combine concatena dois dataframes, opcionalmente ordenando as colunas
// do resultado em ordem alfabética.
func Combine(a, b dataframe.DataFrame, sortColumns bool) (dataframe.DataFrame, error) {
	if a.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe inválido: %w", a.Err)
	}
	if b.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe inválido: %w", b.Err)
	}

	out := a.Concat(b)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("erro ao combinar dataframes: %w", out.Err)
	}
	if sortColumns {
		out = out.Select(sortedNames(out))
		if out.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("erro ao ordenar colunas: %w", out.Err)
		}
	}
	return out, nil
}
