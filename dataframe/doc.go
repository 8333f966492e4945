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
//
// Package dataframe oferece helpers de manipulação de dados tabulares em
// cima do gota, cobrindo as conversões e limpezas mais comuns dos nossos
// fluxos de dados.
//
// Funcionalidades:
//   - Conversão entre formatos: parquet (colunar), CSV (delimitado), JSON
//     (registro estruturado), YAML e registros em memória.
//   - Combinação de dataframes com ordenação opcional de colunas.
//   - Limpeza: remoção de linhas com valores vazios, em todo o dataframe
//     (Clean) ou restrita a uma coluna (RemoveEmptyValues).
//   - Datas: detecção e normalização de colunas de data (ConvertToDatetime)
//     e formatação para string (FormatDatetimeColumns).
//   - Números: formatação localizada para string com separadores
//     configuráveis (FormatNumericToString).
//   - Filtro de registros por expressão CEL (Filter).
//
// Os helpers nunca modificam o dataframe recebido; todos devolvem um novo.
package dataframe
