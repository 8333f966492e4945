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
// Package emulator fornece um servidor HTTP mock de coleções estilo OData,
// configurável via YAML, para desenvolvimento local e testes de integração
// do cliente de registros sem depender do serviço real.
//
// Visão Geral:
// O `emulator` serve coleções de registros pré-definidas com o envelope
// OData: as listagens retornam `value` com uma página de registros e o campo
// `@odata.nextLink` enquanto houver páginas seguintes. Criações respondem
// 201 com o header `OData-EntityId` no formato `.../colecao(<id>)` e
// exclusões respondem 204 quando o registro existe e 404 quando não existe.
//
// Funcionalidades Principais:
//   - Paginação: tamanho de página configurável por coleção, com
//     `@odata.nextLink` montado a partir do host da requisição.
//   - Criação: POST gera um id novo (UUID) e devolve o header
//     `OData-EntityId`, opcionalmente omitido para simular serviços que
//     não informam o id.
//   - Exclusão: DELETE em `/colecao(<id>)` responde 204 ou 404.
//   - Configuração YAML: coleções e registros iniciais descritos em arquivo.
//
// Exemplo de Configuração (emulator.yaml):
//
//	collections:
//	  - name: accounts
//	    page_size: 2
//	    records:
//	      - { id: "1", name: "Alice" }
//	      - { id: "2", name: "Bob" }
//	      - { id: "3", name: "Carol" }
//
// Exemplo de Inicialização Programática (Go):
//
//	cfg, err := emulator.LoadConfig("emulator.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := emulator.New(cfg)
//	log.Fatal(http.ListenAndServe(":8080", srv.Router()))
package emulator
