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
// Package cloud reúne helpers finos sobre os SDKs da AWS, reduzindo o
// boilerplate das operações mais comuns dos nossos serviços de dados.
//
// Cada helper é uma sequência direta de chamadas ao SDK com validação leve
// de entrada e tradução de erros — nada de retry, cache ou gerenciamento de
// ciclo de vida além do que o próprio SDK fornece.
//
// Funcionalidades:
//   - Secrets Manager: leitura de segredos JSON (GetSecretData).
//   - AppConfig / SSM: carga de configuração gerenciada (GetAppConfig,
//     GetParameter) e validação de catálogo de datasets (ValidateDataset).
//   - S3: leitura, gravação (com SSE-KMS opcional) e URLs pré-assinadas.
//   - Orquestração: disparo de pipelines via Step Functions ou fila SQS.
//   - Tabular: gravação e consulta de registros no DynamoDB, leitura de
//     registros via SQL (Postgres) e Redis.
//
// Todos os wrappers expõem a lógica interna através de interfaces mínimas
// de cliente, permitindo mock nos testes sem tocar a AWS.
package cloud
