// Package dedup protege el endpoint de registro contra envíos dobles
// accidentales (doble clic de la recepcionista, reintento del navegador).
package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const guardTTL = 5 * time.Minute

// Guard marca en Redis cada combinación celular+tipo recién escrita.
// Key format: registro:<celular>:<tipo>
type Guard struct {
	client *redis.Client
}

func NewGuard(client *redis.Client) *Guard {
	return &Guard{client: client}
}

// Connect crea el cliente y valida conectividad con un ping.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// IsDuplicate reporta si el mismo celular+tipo fue registrado hace poco.
func (g *Guard) IsDuplicate(ctx context.Context, celular, tipo string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(celular, tipo)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark registra el envío; expira tras guardTTL.
func (g *Guard) Mark(ctx context.Context, celular, tipo string) error {
	return g.client.Set(ctx, g.key(celular, tipo), "1", guardTTL).Err()
}

func (g *Guard) key(celular, tipo string) string {
	return fmt.Sprintf("registro:%s:%s", celular, tipo)
}
