// Package cloud_data_helpers fornece um conjunto de utilitários e abstrações
// para acelerar o desenvolvimento de rotinas de dados em Go, focados no
// acesso a registros de APIs paginadas, integração com serviços AWS e
// manipulação de dataframes.
//
// Visão Geral:
// Este módulo é uma caixa de ferramentas para construir pipelines e funções
// de dados de forma rápida e eficiente, fornecendo soluções modulares para:
// 1. Acesso a Registros (records): Cliente HTTP com paginação OData transparente.
// 2. Autenticação (auth): Obtenção de tokens OAuth2 client credentials.
// 3. Nuvem (cloud): Secrets Manager, AppConfig, S3, Step Functions, SQS,
// DynamoDB, SQL e Redis em chamadas de alto nível.
// 4. Dataframes (dataframe): Conversão de formatos, limpeza, datas, números
// e filtros CEL sobre dataframes gota.
// 5. Configuração (envloader): Variáveis de ambiente para structs tipadas.
// 6. Respostas (responder): Envelope padrão para funções Lambda.
//
// O design é focado na composabilidade e testabilidade, utilizando interfaces
// pequenas sobre os clientes AWS para garantir fácil mocking.
//
// Sub-Pacotes Principais:
//
// 1. records:
//   - Session autenticada por bearer token.
//   - Get com paginação automática via @odata.nextLink.
//   - Post com extração do id criado e Delete com resultado booleano.
//
// 2. cloud:
//   - Segredos, configurações e parâmetros (Secrets Manager, AppConfig, SSM).
//   - Arquivos em S3 com URLs pré-assinadas.
//   - Catálogo de datasets com validação de status.
//   - Disparo de pipelines (Step Functions) e notificações (SQS).
//
// 3. dataframe:
//   - Leitura e escrita em parquet, CSV, JSON, YAML e registros em memória.
//   - Limpeza de valores ausentes, normalização de datas e formatação numérica.
//   - Filtros declarativos com expressões CEL.
//
// Exemplo de Início Rápido:
//
// Demonstração da combinação de envloader, auth e records para consumir
// uma API paginada.
//
//	package main
//
//	import (
//		"context"
//		"log"
//
//		"github.com/raywall/cloud-data-helpers/auth"
//		"github.com/raywall/cloud-data-helpers/envloader"
//		"github.com/raywall/cloud-data-helpers/records"
//	)
//
//	// Estrutura para ser preenchida pelo envloader
//	type AppConfig struct {
//		APIHost      string `env:"API_HOST"`
//		ClientID     string `env:"CLIENT_ID"`
//		ClientSecret string `env:"CLIENT_SECRET"`
//	}
//
//	func main() {
//		// 1. Carregar configuração usando envloader
//		var cfg AppConfig
//		if err := envloader.Load(&cfg); err != nil {
//			log.Fatalf("Erro ao carregar env: %v", err)
//		}
//
//		// 2. Obter o token de acesso
//		svc := auth.NewTokenService()
//		svc.Configurations["default"] = auth.TokenConfig{
//			GrantType:    "client_credentials",
//			ClientID:     cfg.ClientID,
//			ClientSecret: cfg.ClientSecret,
//			Host:         cfg.APIHost + "/oauth2/token",
//		}
//		token, err := svc.GetToken(context.Background(), "default")
//		if err != nil {
//			log.Fatalf("Erro ao obter token: %v", err)
//		}
//
//		// 3. Consumir a API com paginação transparente
//		session, err := records.NewSession(cfg.APIHost, token)
//		if err != nil {
//			log.Fatal(err)
//		}
//		accounts, err := session.Get(context.Background(), "accounts", nil)
//		if err != nil {
//			log.Fatalf("Erro ao listar registros: %v", err)
//		}
//		log.Printf("Registros: %d", len(accounts))
//	}
package cloud_data_helpers
