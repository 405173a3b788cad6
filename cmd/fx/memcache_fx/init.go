package memcache_fx

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/config"
	"github.com/professorSergio12/MUSAFIR-ADMIN-sub001/internal/infra"
	mem "github.com/professorSergio12/MUSAFIR-ADMIN-sub001/pkg/memcache"
)

var Module = fx.Provide(provideRevoker)

// provideRevoker keeps revoked tokens in Redis when configured, in process memory otherwise.
func provideRevoker(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (mem.TokenRevoker, error) {
	client, err := infra.InitRedis(context.Background(), cfg, log)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return mem.NewRevokedTokens(), nil
	}

	registerClose(lc, client, log)
	return mem.NewRedisRevoker(client), nil
}

func registerClose(lc fx.Lifecycle, client *redis.Client, log *zap.Logger) {
	lc.Append(fx.StopHook(func(context.Context) error {
		return closeRedis(client, log)
	}))
}

func closeRedis(client *redis.Client, log *zap.Logger) error {
	if err := client.Close(); err != nil {
		log.Error("error closing redis connection", zap.Error(err))
		return err
	}
	log.Info("redis connection closed")
	return nil
}
