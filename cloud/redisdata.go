package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	redisClients   = make(map[string]*redis.Client)
	redisClientsMu sync.Mutex
)

// getRedisClient evita recriar clientes Redis a cada chamada.
func getRedisClient(addr, password string) *redis.Client {
	redisClientsMu.Lock()
	defer redisClientsMu.Unlock()

	key := addr + password
	if client, ok := redisClients[key]; ok {
		return client
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	redisClients[key] = client
	return client
}

// LoadRecordFromRedis lê uma chave do Redis e devolve o valor decodificado.
//
// Valores JSON são decodificados; qualquer outro conteúdo volta como string.
// Chave inexistente devolve nil sem erro.
func LoadRecordFromRedis(ctx context.Context, addr, password, key string) (interface{}, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: chave não informada", ErrInvalidInput)
	}

	client := getRedisClient(addr, password)

	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil // chave não encontrada
	} else if err != nil {
		return nil, fmt.Errorf("erro ao ler chave %s do redis: %w", key, err)
	}

	var data interface{}
	if err := json.Unmarshal([]byte(val), &data); err == nil {
		return data, nil
	}
	return val, nil
}
