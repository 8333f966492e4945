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
// Package records fornece acesso autenticado a coleções de registros de um
// serviço de dados remoto no padrão OData, com paginação transparente.
//
// Visão Geral:
// Uma Session mantém a URL base e a credencial bearer do serviço, ambas
// imutáveis após a construção. As operações expostas são diretas: Get lê
// uma coleção inteira seguindo os links de continuação retornados pelo
// servidor, Post cria um registro e extrai o identificador gerado, e
// Delete remove um registro retornando um indicador booleano de sucesso.
//
// Funcionalidades Principais:
//   - Paginação transparente via "@odata.nextLink" — o resultado de Get é a
//     concatenação ordenada de todas as páginas visitadas.
//   - Opções explícitas por chamada (CallOptions): timeout, query params e
//     headers adicionais, sem repasse aberto de parâmetros.
//   - Sem retry e sem cache: falhas de transporte são propagadas ao caller
//     e resultados parciais são descartados.
//
// Exemplo Básico:
//
//	session, err := records.NewSession("https://org.example.com/api/data/v9.2", token)
//	if err != nil {
//		// Tratar erro de construção
//	}
//
//	contacts, err := session.Get(ctx, "contacts", &records.CallOptions{
//		Params: url.Values{"$select": []string{"fullname"}},
//	})
//	if err != nil {
//		// Tratar erro de transporte
//	}
//	fmt.Printf("Total de registros: %d\n", len(contacts))
//
// Autenticação:
// O token bearer normalmente é obtido via auth.TokenService (fluxo
// client-credentials) e repassado na construção da Session.
package records
