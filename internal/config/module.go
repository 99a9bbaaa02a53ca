package config

import (
	"github.com/go-core-fx/fiberfx"
	"github.com/vigyat/agrostore/internal/assets"
	"github.com/vigyat/agrostore/internal/auth"
	"github.com/vigyat/agrostore/internal/catalog"
	"github.com/vigyat/agrostore/internal/storage"
	"github.com/vigyat/agrostore/pkg/badgerfx"
	"github.com/vigyat/agrostore/pkg/openapifx"
	"github.com/vigyat/agrostore/pkg/redisfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) openapifx.Config {
			return openapifx.Config{
				Enabled:    cfg.HTTP.OpenAPI.Enabled,
				PublicHost: cfg.HTTP.OpenAPI.PublicHost,
				PublicPath: cfg.HTTP.OpenAPI.PublicPath,
			}
		}),
		fx.Provide(func(cfg Config) storage.Config {
			return storage.Config{
				Driver: storage.Driver(cfg.Storage.Driver),
			}
		}),
		fx.Provide(func(cfg Config) redisfx.Config {
			return redisfx.Config{
				URL:      cfg.Storage.Redis.URL,
				Address:  cfg.Storage.Redis.Address,
				Username: cfg.Storage.Redis.Username,
				Password: cfg.Storage.Redis.Password,
				DB:       cfg.Storage.Redis.DB,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir:      cfg.Storage.Badger.Dir,
				InMemory: cfg.Storage.Badger.InMemory,
			}
		}),
		fx.Provide(func(cfg Config) auth.Config {
			var secret []byte
			if cfg.Auth.Secret != "" {
				secret = []byte(cfg.Auth.Secret)
			}

			return auth.Config{
				Username:     cfg.Auth.Username,
				Password:     cfg.Auth.Password,
				PasswordHash: cfg.Auth.PasswordHash,
				SecretKey:    secret,
				Issuer:       cfg.Auth.Issuer,
				SessionTTL:   cfg.Auth.SessionTTL,
				CookieSecure: cfg.Auth.CookieSecure,
			}
		}),
		fx.Provide(func(cfg Config) assets.Config {
			return assets.Config{
				MaxSize:    cfg.Assets.MaxSize,
				PublicPath: cfg.Assets.PublicPath,
			}
		}),
		fx.Provide(func(cfg Config) catalog.Config {
			return catalog.Config{
				Seed: cfg.Catalog.Seed,
			}
		}),
	)
}
