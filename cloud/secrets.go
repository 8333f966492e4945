package cloud

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsClient abstrai o cliente do Secrets Manager (permite mocking).
type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// GetSecretData busca um segredo JSON no AWS Secrets Manager e o devolve
// como mapa. O nome é obrigatório e o segredo precisa ser um documento JSON.
func GetSecretData(ctx context.Context, region, secretName string) (map[string]interface{}, error) {
	if secretName == "" {
		return nil, fmt.Errorf("%w: nome do segredo não informado", ErrInvalidInput)
	}

	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return getSecretInternal(ctx, secretsmanager.NewFromConfig(cfg), secretName)
}

// getSecretInternal: lógica pura testável via mock.
func getSecretInternal(ctx context.Context, client SecretsClient, secretName string) (map[string]interface{}, error) {
	out, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretName,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar segredo %s: %w", secretName, err)
	}

	if out.SecretString == nil {
		return nil, fmt.Errorf("segredo %s não contém valor em texto", secretName)
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(*out.SecretString), &data); err != nil {
		return nil, fmt.Errorf("erro ao transformar segredo %s em JSON: %w", secretName, err)
	}
	return data, nil
}
