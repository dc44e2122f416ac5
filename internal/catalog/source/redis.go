package source

import (
	"context"

	"github.com/catalog-explorer/server/internal/catalog/loader"
	"github.com/catalog-explorer/server/internal/catalog/model"
	errx "github.com/catalog-explorer/server/internal/core/error"
	logx "github.com/catalog-explorer/server/pkg/logger"
	"github.com/redis/go-redis/v9"
)

// RedisSource reads the catalog document stored as a string under key.
type RedisSource struct {
	rdb redis.Cmdable
	key string
}

func NewRedisSource(rdb redis.Cmdable, key string) *RedisSource {
	return &RedisSource{rdb: rdb, key: key}
}

func (s *RedisSource) Name() string {
	return "redis:" + s.key
}

func (s *RedisSource) Fetch(ctx context.Context) ([]*model.RawRecord, error) {
	data, err := s.rdb.Get(ctx, s.key).Bytes()
	if err != nil {
		logx.Error().Err(err).Str("key", s.key).Msg("failed to read catalog from redis")
		return nil, errx.WrapRedis(err)
	}
	logx.Debug().Str("key", s.key).Int("bytes", len(data)).Msg("read catalog from redis")

	records, err := Decode(data)
	if err != nil {
		return nil, errx.WrapSource(err, s.Name())
	}
	return records, nil
}

var _ loader.Source = (*RedisSource)(nil)
