package dataframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFormatNumericToString(t *testing.T) {
	csv := "product,price\nA,1234.567\nB,89.4\nC,1000000\n"

	t.Run("deve formatar com os defaults brasileiros", func(t *testing.T) {
		df, err := New([]byte(csv), FormatCSV, nil)
		require.NoError(t, err)

		out, err := FormatNumericToString(df, []string{"price"}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"1.234,57", "89,40", "1.000.000,00"},
			out.Col("price").Records())
	})

	t.Run("deve aplicar 2 casas quando o formato não define DecimalPlaces", func(t *testing.T) {
		df, err := New([]byte(csv), FormatCSV, nil)
		require.NoError(t, err)

		out, err := FormatNumericToString(df, []string{"price"}, &NumericFormat{
			DecimalSeparator:   ",",
			ThousandsSeparator: ".",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"1.234,57", "89,40", "1.000.000,00"},
			out.Col("price").Records())
	})

	t.Run("deve aceitar zero casas decimais explícito", func(t *testing.T) {
		df, err := New([]byte(csv), FormatCSV, nil)
		require.NoError(t, err)

		out, err := FormatNumericToString(df, []string{"price"}, &NumericFormat{
			DecimalPlaces: intPtr(0),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"1.235", "89", "1.000.000"},
			out.Col("price").Records())
	})

	t.Run("deve aceitar separadores customizados", func(t *testing.T) {
		df, err := New([]byte(csv), FormatCSV, nil)
		require.NoError(t, err)

		out, err := FormatNumericToString(df, []string{"price"}, &NumericFormat{
			DecimalSeparator:   ".",
			ThousandsSeparator: ",",
			DecimalPlaces:      intPtr(1),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"1,234.6", "89.4", "1,000,000.0"},
			out.Col("price").Records())
	})

	t.Run("deve falhar com casas decimais negativas", func(t *testing.T) {
		df, err := New([]byte(csv), FormatCSV, nil)
		require.NoError(t, err)

		_, err = FormatNumericToString(df, []string{"price"}, &NumericFormat{DecimalPlaces: intPtr(-1)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decimal_places must be >= 0")
	})

	t.Run("deve falhar com separadores iguais", func(t *testing.T) {
		df, err := New([]byte(csv), FormatCSV, nil)
		require.NoError(t, err)

		_, err = FormatNumericToString(df, []string{"price"}, &NumericFormat{
			DecimalSeparator:   ",",
			ThousandsSeparator: ",",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("deve falhar quando o separador temporário conflita", func(t *testing.T) {
		df, err := New([]byte(csv), FormatCSV, nil)
		require.NoError(t, err)

		_, err = FormatNumericToString(df, []string{"price"}, &NumericFormat{
			TempSeparator: ",",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("deve falhar com colunas desconhecidas", func(t *testing.T) {
		df, err := New([]byte(csv), FormatCSV, nil)
		require.NoError(t, err)

		_, err = FormatNumericToString(df, []string{"price", "discount"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Columns not found")
	})
}
