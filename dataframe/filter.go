package dataframe

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/checker/decls"
)

// Filter seleciona as linhas do dataframe para as quais a expressão CEL
// avaliada sobre a variável "record" retorna true. Cada linha é exposta como
// um mapa coluna -> valor.
//
// Exemplo de expressão: `record.status == "active" && record.amount > 100.0`.
func Filter(df dataframe.DataFrame, expression string) (dataframe.DataFrame, error) {
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("dataframe inválido: %w", df.Err)
	}
	if expression == "" {
		return df, nil
	}

	// Ambiente CEL com suporte a tipos dinâmicos (Dyn)
	env, err := cel.NewEnv(
		cel.StdLib(),
		cel.Declarations(
			decls.NewVar("record", decls.Dyn), // A linha corrente do dataframe
		),
	)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("erro fatal CEL init: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return dataframe.DataFrame{}, fmt.Errorf("erro compilação CEL '%s': %s", expression, issues.Err())
	}

	prg, err := env.Program(ast)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("erro programa CEL: %w", err)
	}

	keep := make([]int, 0, df.Nrow())
	for i, record := range df.Maps() {
		out, _, err := prg.Eval(map[string]interface{}{"record": record})
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("erro execução CEL na linha %d: %w", i, err)
		}
		val, ok := out.Value().(bool)
		if !ok {
			return dataframe.DataFrame{}, fmt.Errorf("resultado não é booleano: %q", expression)
		}
		if val {
			keep = append(keep, i)
		}
	}

	result := df.Subset(keep)
	if result.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("erro ao filtrar dataframe: %w", result.Err)
	}
	return result, nil
}
