package dataframe

import (
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumericFormat controla a formatação de colunas numéricas como texto.
type NumericFormat struct {
	// DecimalSeparator é o separador decimal do resultado (default ",").
	DecimalSeparator string
	// ThousandsSeparator é o separador de milhar do resultado (default ".").
	ThousandsSeparator string
	// DecimalPlaces é o número de casas decimais. Nil aplica o default 2;
	// zero explícito é válido e arredonda para inteiro.
	DecimalPlaces *int
	// TempSeparator é o marcador interno usado na troca de separadores
	// (default "#"); não pode coincidir com os separadores finais.
	TempSeparator string
}

func (f *NumericFormat) applyDefaults() {
	if f.DecimalSeparator == "" {
		f.DecimalSeparator = ","
	}
	if f.ThousandsSeparator == "" {
		f.ThousandsSeparator = "."
	}
	if f.DecimalPlaces == nil {
		places := 2
		f.DecimalPlaces = &places
	}
	if f.TempSeparator == "" {
		f.TempSeparator = "#"
	}
}

func (f *NumericFormat) validate() error {
	if *f.DecimalPlaces < 0 {
		return fmt.Errorf("%w: decimal_places must be >= 0", ErrInvalidInput)
	}
	if f.DecimalSeparator == f.ThousandsSeparator {
		return fmt.Errorf("%w: decimal and thousands separators must differ", ErrInvalidInput)
	}
	if f.TempSeparator == f.DecimalSeparator || f.TempSeparator == f.ThousandsSeparator {
		return fmt.Errorf("%w: temp separator conflicts with output separators", ErrInvalidInput)
	}
	return nil
}

// FormatNumericToString converte colunas numéricas para texto formatado com
// separadores de milhar e decimal configuráveis. Os defaults produzem o
// padrão brasileiro ("1.234,57"). Colunas inexistentes geram erro.
func FormatNumericToString(df dataframe.DataFrame, columns []string, format *NumericFormat) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe inválido: %w", df.Err)
	}
	if len(columns) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: nenhuma coluna informada", ErrInvalidInput)
	}

	cfg := NumericFormat{}
	if format != nil {
		cfg = *format
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return dataframe.DataFrame{}, err
	}

	var missing []string
	for _, name := range columns {
		if !hasColumn(df, name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: Columns not found: %s", ErrColumnNotFound, strings.Join(missing, ", "))
	}

	printer := message.NewPrinter(language.English)
	out := df
	for _, name := range columns {
		col := df.Col(name)
		values := make([]string, df.Nrow())
		for i := 0; i < df.Nrow(); i++ {
			elem := col.Elem(i)
			if elem.IsNA() {
				values[i] = ""
				continue
			}
			formatted := printer.Sprintf("%v", number.Decimal(col.Float()[i],
				number.Scale(*cfg.DecimalPlaces)))
			// Troca dos separadores do locale inglês pelos configurados.
			formatted = strings.ReplaceAll(formatted, ",", cfg.TempSeparator)
			formatted = strings.ReplaceAll(formatted, ".", cfg.DecimalSeparator)
			formatted = strings.ReplaceAll(formatted, cfg.TempSeparator, cfg.ThousandsSeparator)
			values[i] = formatted
		}
		out = out.Mutate(series.New(values, series.String, name))
		if out.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("erro ao formatar coluna %s: %w", name, out.Err)
		}
	}
	return out, nil
}
