package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	precioCacheTTL = 4 * time.Hour
	sinPrecio      = "-"
)

// PrecioCache stores resolved prices in Redis. Keys embed a per-day version
// number; registering any price for a day bumps the version, which orphans
// every cached resolution for that day (including general-price fallbacks).
type PrecioCache struct {
	rdb *redis.Client
}

func NewPrecioCache(rdb *redis.Client) *PrecioCache {
	return &PrecioCache{rdb: rdb}
}

func versionKey(fecha string) string { return "precio:ver:" + fecha }

func (c *PrecioCache) key(ctx context.Context, clienteID *uint, productoID uint, fecha, tipo string) (string, error) {
	ver, err := c.rdb.Get(ctx, versionKey(fecha)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}
	cliente := "otro"
	if clienteID != nil {
		cliente = fmt.Sprint(*clienteID)
	}
	return fmt.Sprintf("precio:%s:v%d:%s:%d:%s", fecha, ver, cliente, productoID, tipo), nil
}

// Get reports hit=false when the caller must query the database. A hit with a
// nil price is a cached "no price". On a miss, llave is the versioned key the
// caller must pass to Set, so a resolution read before an Invalidar lands
// under the old version and is never served.
func (c *PrecioCache) Get(ctx context.Context, clienteID *uint, productoID uint, fecha, tipo string) (precio *decimal.Decimal, llave string, hit bool) {
	if c == nil || c.rdb == nil {
		return nil, "", false
	}
	k, err := c.key(ctx, clienteID, productoID, fecha, tipo)
	if err != nil {
		return nil, "", false
	}
	raw, err := c.rdb.Get(ctx, k).Result()
	if err != nil {
		return nil, k, false
	}
	if raw == sinPrecio {
		return nil, k, true
	}
	p, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, k, false
	}
	return &p, k, true
}

// Set caches a resolution under the key returned by Get; precio nil caches
// the absence of a price. An empty llave is ignored. Best effort.
func (c *PrecioCache) Set(ctx context.Context, llave string, precio *decimal.Decimal) {
	if c == nil || c.rdb == nil || llave == "" {
		return
	}
	val := sinPrecio
	if precio != nil {
		val = precio.String()
	}
	_ = c.rdb.Set(ctx, llave, val, precioCacheTTL).Err()
}

// Invalidar bumps the day's version. Best effort.
func (c *PrecioCache) Invalidar(ctx context.Context, fecha string) {
	if c == nil || c.rdb == nil {
		return
	}
	pipe := c.rdb.TxPipeline()
	pipe.Incr(ctx, versionKey(fecha))
	pipe.Expire(ctx, versionKey(fecha), 2*precioCacheTTL)
	_, _ = pipe.Exec(ctx)
}
