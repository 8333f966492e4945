// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package dataframe

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"gopkg.in/yaml.v3"
)

// Format identifica o formato de serialização de um dataframe.
type Format int

const (
	// FormatParquet é o formato colunar (via parquet-go).
	FormatParquet Format = iota + 1
	// FormatCSV é texto delimitado com cabeçalho.
	FormatCSV
	// FormatJSON é um array JSON de registros.
	FormatJSON
	// FormatYAML é uma lista YAML de registros.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatParquet:
		return "parquet"
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Options ajusta a leitura/escrita de formatos delimitados.
type Options struct {
	// Delimiter é o separador de campos do CSV (default ',').
	Delimiter rune
	// NoHeader indica que o CSV não tem linha de cabeçalho.
	NoHeader bool
}

// New cria um dataframe a partir do conteúdo serializado no formato informado.
func New(contents []byte, format Format, opts *Options) (dataframe.DataFrame, error) {
	if len(contents) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: conteúdo vazio", ErrInvalidInput)
	}

	var df dataframe.DataFrame
	switch format {
	case FormatCSV:
		loadOpts := []dataframe.LoadOption{}
		if opts != nil && opts.Delimiter != 0 {
			loadOpts = append(loadOpts, dataframe.WithDelimiter(opts.Delimiter))
		}
		if opts != nil && opts.NoHeader {
			loadOpts = append(loadOpts, dataframe.HasHeader(false))
		}
		df = dataframe.ReadCSV(bytes.NewReader(contents), loadOpts...)
	case FormatJSON:
		df = dataframe.ReadJSON(bytes.NewReader(contents))
	case FormatYAML:
		var records []map[string]interface{}
		if err := yaml.Unmarshal(contents, &records); err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("erro ao criar dataframe a partir de YAML: %w", err)
		}
		df = dataframe.LoadMaps(records)
	case FormatParquet:
		return readParquet(contents)
	default:
		return dataframe.DataFrame{}, fmt.Errorf("%w: formato desconhecido: %v", ErrInvalidInput, format)
	}

	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("erro ao criar dataframe (%s): %w", format, df.Err)
	}
	return df, nil
}

// FromRecords cria um dataframe a partir de registros em memória.
func FromRecords(records []map[string]interface{}) (dataframe.DataFrame, error) {
	if len(records) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("%w: nenhum registro informado", ErrInvalidInput)
	}

	df := dataframe.LoadMaps(records)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("erro ao criar dataframe a partir de registros: %w", df.Err)
	}
	return df, nil
}

// ToBytes serializa o dataframe no formato informado.
func ToBytes(df dataframe.DataFrame, format Format, opts *Options) ([]byte, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("dataframe inválido: %w", df.Err)
	}

	buf := new(bytes.Buffer)
	switch format {
	case FormatCSV:
		writeOpts := []dataframe.WriteOption{}
		if opts != nil && opts.NoHeader {
			writeOpts = append(writeOpts, dataframe.WriteHeader(false))
		}
		if err := df.WriteCSV(buf, writeOpts...); err != nil {
			return nil, fmt.Errorf("erro ao converter dataframe para CSV: %w", err)
		}
	case FormatJSON:
		if err := df.WriteJSON(buf); err != nil {
			return nil, fmt.Errorf("erro ao converter dataframe para JSON: %w", err)
		}
	case FormatYAML:
		out, err := yaml.Marshal(df.Maps())
		if err != nil {
			return nil, fmt.Errorf("erro ao converter dataframe para YAML: %w", err)
		}
		return out, nil
	case FormatParquet:
		return writeParquet(df)
	default:
		return nil, fmt.Errorf("%w: formato desconhecido: %v", ErrInvalidInput, format)
	}
	return buf.Bytes(), nil
}

// ToRecords devolve o dataframe como registros em memória.
func ToRecords(df dataframe.DataFrame) ([]map[string]interface{}, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("dataframe inválido: %w", df.Err)
	}
	return df.Maps(), nil
}

// hasColumn verifica a existência de uma coluna pelo nome.
func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, col := range df.Names() {
		if col == name {
			return true
		}
	}
	return false
}

// sortedNames devolve os nomes das colunas em ordem alfabética.
func sortedNames(df dataframe.DataFrame) []string {
	names := append([]string(nil), df.Names()...)
	sort.Strings(names)
	return names
}
