package dataframe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "name,age,city\nAlice,30,Lisboa\nBob,25,Porto\nCarol,41,Braga\n"

const sampleJSON = `[
	{"name": "Alice", "age": 30, "city": "Lisboa"},
	{"name": "Bob", "age": 25, "city": "Porto"}
]`

const sampleYAML = `- name: Alice
  age: 30
  city: Lisboa
- name: Bob
  age: 25
  city: Porto
`

func TestNew(t *testing.T) {
	t.Run("deve criar dataframe a partir de CSV", func(t *testing.T) {
		df, err := New([]byte(sampleCSV), FormatCSV, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, df.Nrow())
		assert.ElementsMatch(t, []string{"name", "age", "city"}, df.Names())
	})

	t.Run("deve respeitar delimitador customizado", func(t *testing.T) {
		contents := strings.ReplaceAll(sampleCSV, ",", ";")
		df, err := New([]byte(contents), FormatCSV, &Options{Delimiter: ';'})
		require.NoError(t, err)
		assert.Equal(t, 3, df.Nrow())
	})

	t.Run("deve criar dataframe a partir de JSON", func(t *testing.T) {
		df, err := New([]byte(sampleJSON), FormatJSON, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, df.Nrow())
	})

	t.Run("deve criar dataframe a partir de YAML", func(t *testing.T) {
		df, err := New([]byte(sampleYAML), FormatYAML, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, df.Nrow())
		assert.ElementsMatch(t, []string{"name", "age", "city"}, df.Names())
	})

	t.Run("deve falhar com conteúdo vazio", func(t *testing.T) {
		_, err := New(nil, FormatCSV, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("deve falhar com formato desconhecido", func(t *testing.T) {
		_, err := New([]byte(sampleCSV), Format(99), nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestFromRecords(t *testing.T) {
	t.Run("deve criar dataframe a partir de registros", func(t *testing.T) {
		df, err := FromRecords([]map[string]interface{}{
			{"name": "Alice", "age": 30},
			{"name": "Bob", "age": 25},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, df.Nrow())
	})

	t.Run("deve falhar sem registros", func(t *testing.T) {
		_, err := FromRecords(nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestToBytes(t *testing.T) {
	df, err := New([]byte(sampleCSV), FormatCSV, nil)
	require.NoError(t, err)

	t.Run("deve serializar como CSV", func(t *testing.T) {
		out, err := ToBytes(df, FormatCSV, nil)
		require.NoError(t, err)
		assert.Contains(t, string(out), "Alice")
	})

	t.Run("deve serializar como JSON", func(t *testing.T) {
		out, err := ToBytes(df, FormatJSON, nil)
		require.NoError(t, err)

		back, err := New(out, FormatJSON, nil)
		require.NoError(t, err)
		assert.Equal(t, df.Nrow(), back.Nrow())
	})

	t.Run("deve serializar como YAML", func(t *testing.T) {
		out, err := ToBytes(df, FormatYAML, nil)
		require.NoError(t, err)

		back, err := New(out, FormatYAML, nil)
		require.NoError(t, err)
		assert.Equal(t, df.Nrow(), back.Nrow())
	})

	t.Run("deve serializar e recarregar parquet", func(t *testing.T) {
		out, err := ToBytes(df, FormatParquet, nil)
		require.NoError(t, err)
		require.NotEmpty(t, out)

		back, err := New(out, FormatParquet, nil)
		require.NoError(t, err)
		assert.Equal(t, df.Nrow(), back.Nrow())
		assert.ElementsMatch(t, df.Names(), back.Names())
	})
}

func TestToRecords(t *testing.T) {
	df, err := New([]byte(sampleJSON), FormatJSON, nil)
	require.NoError(t, err)

	records, err := ToRecords(df)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Alice", records[0]["name"])
}
