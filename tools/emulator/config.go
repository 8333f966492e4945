package emulator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultPageSize é usado quando a coleção não define page_size.
const defaultPageSize = 100

// CollectionConfig descreve uma coleção servida pelo emulador.
type CollectionConfig struct {
	// Name é o segmento de URL da coleção (ex: "accounts").
	Name string `yaml:"name"`
	// PageSize é o tamanho de página das listagens (default 100).
	PageSize int `yaml:"page_size"`
	// Records são os registros iniciais da coleção.
	Records []map[string]interface{} `yaml:"records"`
	// OmitEntityID simula serviços que não devolvem o header
	// OData-EntityId ao criar registros.
	OmitEntityID bool `yaml:"omit_entity_id"`
}

// Config representa o arquivo YAML de configuração do emulador.
type Config struct {
	Collections []CollectionConfig `yaml:"collections"`
}

// LoadConfig carrega a configuração a partir de um arquivo YAML.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("erro ao ler arquivo de configuração: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("erro ao parsear yaml: %w", err)
	}

	for i := range cfg.Collections {
		if cfg.Collections[i].PageSize <= 0 {
			cfg.Collections[i].PageSize = defaultPageSize
		}
	}
	return cfg, nil
}
