package dataframe

import (
	"testing"

	gota "github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParquetRoundTrip(t *testing.T) {
	t.Run("deve escrever e reler registros sem perder linhas", func(t *testing.T) {
		df, err := FromRecords([]map[string]interface{}{
			{"name": "Alice", "age": 30, "score": 7.5, "active": true},
			{"name": "Bob", "age": 25, "score": 9.1, "active": false},
			{"name": "Carol", "age": 41, "score": 3.2, "active": true},
		})
		require.NoError(t, err)

		contents, err := ToBytes(df, FormatParquet, nil)
		require.NoError(t, err)
		require.NotEmpty(t, contents)

		back, err := New(contents, FormatParquet, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, back.Nrow())
		assert.ElementsMatch(t, []string{"name", "age", "score", "active"}, back.Names())
	})

	t.Run("deve preservar os tipos das colunas", func(t *testing.T) {
		df, err := FromRecords([]map[string]interface{}{
			{"name": "Alice", "age": 30, "score": 7.5, "active": true},
			{"name": "Bob", "age": 25, "score": 9.1, "active": false},
		})
		require.NoError(t, err)

		contents, err := ToBytes(df, FormatParquet, nil)
		require.NoError(t, err)

		back, err := New(contents, FormatParquet, nil)
		require.NoError(t, err)

		types := map[string]series.Type{}
		for i, name := range back.Names() {
			types[name] = back.Types()[i]
		}
		assert.Equal(t, series.String, types["name"])
		assert.Equal(t, series.Int, types["age"])
		assert.Equal(t, series.Float, types["score"])
		assert.Equal(t, series.Bool, types["active"])
	})

	t.Run("deve preservar os valores", func(t *testing.T) {
		df, err := FromRecords([]map[string]interface{}{
			{"name": "Alice", "age": 30},
			{"name": "Bob", "age": 25},
		})
		require.NoError(t, err)

		contents, err := ToBytes(df, FormatParquet, nil)
		require.NoError(t, err)

		back, err := New(contents, FormatParquet, nil)
		require.NoError(t, err)

		sorted := back.Arrange(gota.Sort("age"))
		require.NoError(t, sorted.Err)
		assert.Equal(t, []string{"Bob", "Alice"}, sorted.Col("name").Records())
	})

	t.Run("deve falhar com conteúdo que não é parquet", func(t *testing.T) {
		_, err := New([]byte("definitivamente não é parquet"), FormatParquet, nil)
		assert.Error(t, err)
	})
}
