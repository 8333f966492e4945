package cloud

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/sfn"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SFNClient abstrai o cliente do Step Functions (permite mocking).
type SFNClient interface {
	StartExecution(ctx context.Context, params *sfn.StartExecutionInput, optFns ...func(*sfn.Options)) (*sfn.StartExecutionOutput, error)
}

// SQSClient abstrai o cliente do SQS (permite mocking).
type SQSClient interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// StartPipeline dispara a execução de um pipeline (state machine do Step
// Functions) com o payload informado e devolve o ARN da execução.
func StartPipeline(ctx context.Context, region, stateMachineARN string, input map[string]interface{}) (string, error) {
	if stateMachineARN == "" {
		return "", fmt.Errorf("%w: ARN da state machine não informado", ErrInvalidInput)
	}

	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return "", err
	}
	return startPipelineInternal(ctx, sfn.NewFromConfig(cfg), stateMachineARN, input)
}

// startPipelineInternal: lógica pura testável via mock.
func startPipelineInternal(ctx context.Context, client SFNClient, stateMachineARN string, input map[string]interface{}) (string, error) {
	payload := "{}"
	if input != nil {
		raw, err := json.Marshal(input)
		if err != nil {
			return "", fmt.Errorf("erro ao serializar payload do pipeline: %w", err)
		}
		payload = string(raw)
	}

	out, err := client.StartExecution(ctx, &sfn.StartExecutionInput{
		StateMachineArn: &stateMachineARN,
		Input:           &payload,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao disparar pipeline %s: %w", stateMachineARN, err)
	}
	return *out.ExecutionArn, nil
}

// NotifyPipeline publica o payload em uma fila SQS que alimenta um pipeline,
// devolvendo o id da mensagem.
func NotifyPipeline(ctx context.Context, region, queueURL string, payload map[string]interface{}) (string, error) {
	if queueURL == "" {
		return "", fmt.Errorf("%w: URL da fila não informada", ErrInvalidInput)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: payload vazio", ErrInvalidInput)
	}

	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return "", err
	}
	return notifyPipelineInternal(ctx, sqs.NewFromConfig(cfg), queueURL, payload)
}

// notifyPipelineInternal: lógica pura testável via mock.
func notifyPipelineInternal(ctx context.Context, client SQSClient, queueURL string, payload map[string]interface{}) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar mensagem: %w", err)
	}
	body := string(raw)

	out, err := client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &queueURL,
		MessageBody: &body,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao publicar na fila %s: %w", queueURL, err)
	}

	if out.MessageId == nil {
		return "", nil
	}
	return *out.MessageId, nil
}
