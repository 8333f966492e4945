package cloud

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/appconfigdata"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// --- Mocks ---

type MockAppConfig struct {
	StartConfigurationSessionFunc func(ctx context.Context, params *appconfigdata.StartConfigurationSessionInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.StartConfigurationSessionOutput, error)
	GetLatestConfigurationFunc    func(ctx context.Context, params *appconfigdata.GetLatestConfigurationInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.GetLatestConfigurationOutput, error)
}

func (m *MockAppConfig) StartConfigurationSession(ctx context.Context, params *appconfigdata.StartConfigurationSessionInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.StartConfigurationSessionOutput, error) {
	return m.StartConfigurationSessionFunc(ctx, params, optFns...)
}

func (m *MockAppConfig) GetLatestConfiguration(ctx context.Context, params *appconfigdata.GetLatestConfigurationInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.GetLatestConfigurationOutput, error) {
	return m.GetLatestConfigurationFunc(ctx, params, optFns...)
}

type MockSSM struct {
	GetParameterFunc func(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

func (m *MockSSM) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	return m.GetParameterFunc(ctx, params, optFns...)
}

func newMockAppConfig(t *testing.T, document string, startErr, getErr error) *MockAppConfig {
	t.Helper()
	token := "session-token"
	return &MockAppConfig{
		StartConfigurationSessionFunc: func(ctx context.Context, params *appconfigdata.StartConfigurationSessionInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.StartConfigurationSessionOutput, error) {
			if startErr != nil {
				return nil, startErr
			}
			return &appconfigdata.StartConfigurationSessionOutput{InitialConfigurationToken: &token}, nil
		},
		GetLatestConfigurationFunc: func(ctx context.Context, params *appconfigdata.GetLatestConfigurationInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.GetLatestConfigurationOutput, error) {
			if getErr != nil {
				return nil, getErr
			}
			if *params.ConfigurationToken != token {
				t.Errorf("Token de sessão incorreto: %s", *params.ConfigurationToken)
			}
			return &appconfigdata.GetLatestConfigurationOutput{Configuration: []byte(document)}, nil
		},
	}
}

// --- Testes ---

func TestGetAppConfig(t *testing.T) {
	t.Run("Sucesso", func(t *testing.T) {
		mockClient := newMockAppConfig(t, `{"feature": {"enabled": true}}`, nil, nil)

		cfg, err := getAppConfigInternal(context.Background(), mockClient, "app", "env", "profile")
		if err != nil {
			t.Fatalf("Erro inesperado: %v", err)
		}
		if _, ok := cfg["feature"]; !ok {
			t.Error("Configuração decodificada incorretamente")
		}
	})

	t.Run("Documento inválido", func(t *testing.T) {
		mockClient := newMockAppConfig(t, "isso não é JSON", nil, nil)

		if _, err := getAppConfigInternal(context.Background(), mockClient, "app", "env", "profile"); err == nil {
			t.Error("Esperava erro de decodificação, recebido nil")
		}
	})

	t.Run("Erro na sessão", func(t *testing.T) {
		mockClient := newMockAppConfig(t, "", errors.New("AWS down"), nil)

		if _, err := getAppConfigInternal(context.Background(), mockClient, "app", "env", "profile"); err == nil {
			t.Error("Esperava erro, recebido nil")
		}
	})

	t.Run("Parâmetros obrigatórios", func(t *testing.T) {
		if _, err := GetAppConfig(context.Background(), "", "", "env", "profile"); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Esperava ErrInvalidInput, recebido %v", err)
		}
	})
}

func TestGetParameter(t *testing.T) {
	t.Run("Sucesso", func(t *testing.T) {
		mockVal := "my-config-value"
		mockClient := &MockSSM{
			GetParameterFunc: func(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
				if *params.Name != "/app/config" {
					t.Errorf("Path esperado /app/config, recebido %s", *params.Name)
				}
				if !*params.WithDecryption {
					t.Error("Esperado WithDecryption true")
				}
				return &ssm.GetParameterOutput{
					Parameter: &ssmtypes.Parameter{Value: &mockVal},
				}, nil
			},
		}

		value, err := getParameterInternal(context.Background(), mockClient, "/app/config", true)
		if err != nil {
			t.Fatalf("Erro inesperado: %v", err)
		}
		if value != mockVal {
			t.Errorf("Valor incorreto: %v", value)
		}
	})

	t.Run("Erro na AWS", func(t *testing.T) {
		mockClient := &MockSSM{
			GetParameterFunc: func(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
				return nil, errors.New("AWS down")
			},
		}

		if _, err := getParameterInternal(context.Background(), mockClient, "/app/config", true); err == nil {
			t.Error("Esperava erro, recebido nil")
		}
	})
}
