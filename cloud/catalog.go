package cloud

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/appconfigdata"
	"github.com/go-playground/validator/v10"
)

// DatasetEntry descreve um dataset dentro do catálogo gerenciado no AppConfig.
type DatasetEntry struct {
	// DatasetType é a extensão do arquivo no bucket (csv, json, parquet...).
	DatasetType string `json:"dataset_type" validate:"required"`
	// APIStatus controla se o dataset pode ser entregue via API.
	APIStatus string `json:"api_status" validate:"required,oneof=active inactive"`
}

// Catalog mapeia data handler -> lista de grupos de datasets.
//
// O catálogo vive no AppConfig com o formato:
//
//	{
//	  "data_handler_1": [
//	    {
//	      "dataset_1": {"dataset_type": "csv", "api_status": "active"},
//	      "dataset_2": {"dataset_type": "json", "api_status": "inactive"}
//	    }
//	  ]
//	}
type Catalog map[string][]map[string]DatasetEntry

var catalogValidator = validator.New()

// ParseCatalog decodifica e valida o documento de catálogo.
func ParseCatalog(raw []byte) (Catalog, error) {
	var catalog Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("erro ao decodificar catálogo de datasets: %w", err)
	}

	for handler, groups := range catalog {
		for _, group := range groups {
			for dataset, entry := range group {
				if err := catalogValidator.Struct(entry); err != nil {
					return nil, fmt.Errorf("catálogo inválido para %s/%s: %w", handler, dataset, err)
				}
			}
		}
	}
	return catalog, nil
}

// LoadCatalog busca o catálogo de datasets no AppConfig.
func LoadCatalog(ctx context.Context, region, application, environment, profile string) (Catalog, error) {
	if application == "" || environment == "" || profile == "" {
		return nil, fmt.Errorf("%w: identificação do AppConfig incompleta", ErrInvalidInput)
	}

	cfg, err := AWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}

	raw, err := getRawAppConfigInternal(ctx, appconfigdata.NewFromConfig(cfg), application, environment, profile)
	if err != nil {
		return nil, err
	}
	return ParseCatalog(raw)
}

// DatasetPath valida a existência do dataset no catálogo e devolve o caminho
// completo do arquivo no S3 ("<handler>/<dataset>.<tipo>").
//
// O handler funciona como diretório e o dataset como nome de arquivo.
// Datasets com api_status diferente de "active" são rejeitados.
func (c Catalog) DatasetPath(handler, dataset string) (string, error) {
	if handler == "" {
		return "", fmt.Errorf("%w: data handler não informado", ErrInvalidInput)
	}
	if dataset == "" {
		return "", fmt.Errorf("%w: dataset não informado", ErrInvalidInput)
	}

	groups, ok := c[handler]
	if !ok || len(groups) == 0 {
		return "", fmt.Errorf("validação falhou para o data handler %s", handler)
	}

	entry, ok := groups[0][dataset]
	if !ok {
		return "", fmt.Errorf("validação falhou para o dataset %s", dataset)
	}

	if entry.DatasetType == "" {
		return "", fmt.Errorf("validação falhou para o tipo do dataset %s", dataset)
	}
	if entry.APIStatus != "active" {
		return "", fmt.Errorf("%w: %s/%s", ErrDatasetNotAllowed, handler, dataset)
	}

	return fmt.Sprintf("%s/%s.%s", handler, dataset, entry.DatasetType), nil
}
