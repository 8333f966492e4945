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

// Package responder padroniza as respostas HTTP de funções Lambda atrás de
// um API Gateway. O corpo sempre carrega o payload em "response" e um campo
// "status" derivado do código HTTP ("OK" para 2xx, "NOK" caso contrário).
package responder

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// payload é o envelope JSON de toda resposta construída pelo pacote.
type payload struct {
	Response interface{} `json:"response"`
	Status   string      `json:"status"`
}

// Build monta uma resposta de API Gateway com o envelope padrão. O campo
// "status" é "OK" quando statusCode está na faixa 2xx e "NOK" nos demais
// casos. message pode ser qualquer valor serializável em JSON.
func Build(message interface{}, statusCode int) (events.APIGatewayProxyResponse, error) {
	status := "NOK"
	if statusCode >= 200 && statusCode < 300 {
		status = "OK"
	}

	body, err := json.Marshal(payload{Response: message, Status: status})
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("erro ao serializar resposta: %w", err)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(body),
	}, nil
}

// BuildError é um atalho para respostas de falha: serializa a mensagem do
// erro no envelope padrão com o código informado.
func BuildError(err error, statusCode int) (events.APIGatewayProxyResponse, error) {
	return Build(err.Error(), statusCode)
}
