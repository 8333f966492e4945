package cloud

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/appconfigdata"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// AppConfigClient abstrai a API de sessão do AppConfigData (permite mocking).
type AppConfigClient interface {
	StartConfigurationSession(ctx context.Context, params *appconfigdata.StartConfigurationSessionInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.StartConfigurationSessionOutput, error)
	GetLatestConfiguration(ctx context.Context, params *appconfigdata.GetLatestConfigurationInput, optFns ...func(*appconfigdata.Options)) (*appconfigdata.GetLatestConfigurationOutput, error)
}

// SSMClient abstrai o cliente do Parameter Store (permite mocking).
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// GetAppConfig carrega uma configuração JSON do AWS AppConfig.
//
// Application, environment e profile são obrigatórios; a carga usa a API de
// sessão do AppConfigData (StartConfigurationSession + GetLatestConfiguration).
func GetAppConfig(ctx context.Context, region, application, environment, profile string) (map[string]interface{}, error) {
	if application == "" {
		return nil, fmt.Errorf("%w: application não informada", ErrInvalidInput)
	}
	if environment == "" {
		return nil, fmt.Errorf("%w: environment não informado", ErrInvalidInput)
	}
	if profile == "" {
		return nil, fmt.Errorf("%w: profile não informado", ErrInvalidInput)
	}

	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return getAppConfigInternal(ctx, appconfigdata.NewFromConfig(cfg), application, environment, profile)
}

// getAppConfigInternal: lógica pura testável via mock.
func getAppConfigInternal(ctx context.Context, client AppConfigClient, application, environment, profile string) (map[string]interface{}, error) {
	raw, err := getRawAppConfigInternal(ctx, client, application, environment, profile)
	if err != nil {
		return nil, err
	}

	var config map[string]interface{}
	if err := json.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração do AppConfig: %w", err)
	}
	return config, nil
}

// getRawAppConfigInternal executa o fluxo de sessão do AppConfigData e
// devolve o documento bruto.
func getRawAppConfigInternal(ctx context.Context, client AppConfigClient, application, environment, profile string) ([]byte, error) {
	session, err := client.StartConfigurationSession(ctx, &appconfigdata.StartConfigurationSessionInput{
		ApplicationIdentifier:          &application,
		EnvironmentIdentifier:          &environment,
		ConfigurationProfileIdentifier: &profile,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao iniciar sessão no AppConfig: %w", err)
	}

	out, err := client.GetLatestConfiguration(ctx, &appconfigdata.GetLatestConfigurationInput{
		ConfigurationToken: session.InitialConfigurationToken,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração do AppConfig: %w", err)
	}
	return out.Configuration, nil
}

// GetParameter busca um parâmetro no SSM Parameter Store.
func GetParameter(ctx context.Context, region, path string, decrypt bool) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path do parâmetro não informado", ErrInvalidInput)
	}

	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return "", err
	}
	return getParameterInternal(ctx, ssm.NewFromConfig(cfg), path, decrypt)
}

// getParameterInternal: lógica pura testável via mock.
func getParameterInternal(ctx context.Context, client SSMClient, path string, decrypt bool) (string, error) {
	out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           &path,
		WithDecryption: &decrypt,
	})
	if err != nil {
		return "", fmt.Errorf("erro no SSM GetParameter: %w", err)
	}
	return *out.Parameter.Value, nil
}
