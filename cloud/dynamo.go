package cloud

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// batchWriteLimit é o máximo de itens aceito pelo BatchWriteItem.
const batchWriteLimit = 25

// DynamoDBClient abstrai o cliente DynamoDB (permite mocking).
type DynamoDBClient interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// SaveRecordsToTable grava uma lista de registros em uma tabela DynamoDB,
// em lotes de até 25 itens.
func SaveRecordsToTable(ctx context.Context, region, table string, records []map[string]interface{}) error {
	if table == "" {
		return fmt.Errorf("%w: nome da tabela não informado", ErrInvalidInput)
	}
	if len(records) == 0 {
		return fmt.Errorf("%w: nenhum registro para gravar", ErrInvalidInput)
	}

	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return err
	}
	return saveRecordsInternal(ctx, dynamodb.NewFromConfig(cfg), table, records)
}

// saveRecordsInternal: lógica pura testável via mock.
func saveRecordsInternal(ctx context.Context, client DynamoDBClient, table string, records []map[string]interface{}) error {
	for start := 0; start < len(records); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(records) {
			end = len(records)
		}

		requests := make([]types.WriteRequest, 0, end-start)
		for _, record := range records[start:end] {
			item, err := attributevalue.MarshalMap(record)
			if err != nil {
				return fmt.Errorf("erro ao converter registro para o DynamoDB: %w", err)
			}
			requests = append(requests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}

		_, err := client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{table: requests},
		})
		if err != nil {
			return fmt.Errorf("erro no BatchWriteItem da tabela %s: %w", table, err)
		}
	}
	return nil
}

// QueryTable consulta uma tabela DynamoDB pela chave de partição e devolve
// os itens como registros.
func QueryTable(ctx context.Context, region, table, keyName string, keyValue interface{}) ([]map[string]interface{}, error) {
	if table == "" {
		return nil, fmt.Errorf("%w: nome da tabela não informado", ErrInvalidInput)
	}
	if keyName == "" {
		return nil, fmt.Errorf("%w: nome da chave não informado", ErrInvalidInput)
	}

	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return queryTableInternal(ctx, dynamodb.NewFromConfig(cfg), table, keyName, keyValue)
}

// queryTableInternal: lógica pura testável via mock.
func queryTableInternal(ctx context.Context, client DynamoDBClient, table, keyName string, keyValue interface{}) ([]map[string]interface{}, error) {
	keyCond := expression.Key(keyName).Equal(expression.Value(keyValue))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("erro ao montar expressão de consulta: %w", err)
	}

	out, err := client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 &table,
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return nil, fmt.Errorf("erro na consulta da tabela %s: %w", table, err)
	}

	var records []map[string]interface{}
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
		return nil, fmt.Errorf("erro ao converter itens da tabela %s: %w", table, err)
	}
	return records, nil
}
