// @title         mastoshim
// @version       4.2.0
// @description   Mastodon REST API over the platform GraphQL API
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"os/signal"
	"syscall"

	"mastoshim/internal/adapters/platform/auth"
	"mastoshim/internal/adapters/platform/lookups"
	"mastoshim/internal/core/mapper"
	"mastoshim/internal/core/markup"
	"mastoshim/internal/core/version"
	"mastoshim/internal/modkit"
	"mastoshim/internal/modkit/repokit"
	"mastoshim/internal/platform/config"
	"mastoshim/internal/platform/graphql"
	"mastoshim/internal/platform/logger"
	phttp "mastoshim/internal/platform/net/http"
	"mastoshim/internal/platform/net/middleware"
	"mastoshim/internal/platform/net/rest"
	"mastoshim/internal/platform/store"

	"mastoshim/internal/services/api"
)

func main() {
	set := config.Load()
	apiCfg := config.New().Prefix(config.APIPrefix) // instance text and docs read this view directly

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gql := graphql.NewClient(graphql.Config{
		Endpoint:   set.Platform.GraphQLURL,
		UserAgent:  version.UserAgent(),
		Timeout:    set.Platform.Timeout,
		MaxRetries: set.Platform.MaxRetries,
		RetryBase:  set.Platform.RetryBase,
	})

	// the lookup database is optional; without it counters and fallbacks read as zero
	st, err := store.Open(ctx, store.Config{
		AppName: "mastoshim-api",
		PG: store.PGConfig{
			Enabled:     set.Database.Enabled,
			URL:         set.Database.URL,
			MaxConns:    int32(set.Database.MaxConns),
			SlowQueryMs: set.Database.SlowQueryMs,
			LogSQL:      set.Database.LogSQL,
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		pg      repokit.TxRunner
		lookupP mapper.Lookups
	)
	if st.Enabled() {
		repokit.MustGuard(ctx, st)
		pg = repokit.WithBeginHooks(st.PG, repokit.StatementTimeout(set.Database.StatementTimeout))
		lookupP = lookups.New(pg, lookups.Options{FollowersCircles: set.Platform.FollowersCircles})
	}

	m := mapper.New(mapper.Config{
		BaseURL:     set.API.BaseURL,
		LocalDomain: set.API.LocalDomain,
		ACL: mapper.ACLPresets{
			RemotePublic: set.Platform.ACLRemotePublic,
			Public:       set.Platform.ACLPublic,
			Local:        set.Platform.ACLLocal,
		},
		DefaultAvatar: set.API.DefaultAvatar,
		DefaultHeader: set.API.DefaultHeader,
		PreviewCards:  set.API.PreviewCards,
	}, lookupP, markup.New(set.API.MarkupCache))

	deps := modkit.Deps{
		Log:          l,
		Cfg:          apiCfg,
		PG:           pg,
		GQL:          gql,
		Mapper:       m,
		Batch:        mapper.NewBatchLoader(lookupP),
		REST:         rest.New(rest.Config{Env: set.API.Env}),
		DefaultLimit: set.API.DefaultLimit,
		MaxLimit:     set.API.MaxLimit,
	}

	srv := phttp.NewServer(phttp.ServerOptions{
		Addr:          set.API.Addr,
		ShutdownGrace: set.API.ShutdownGrace,
	})

	api.Mount(srv.Router(), api.Options{
		Deps: deps,
		Auth: auth.NewResolver(gql, auth.Options{
			CacheSize: set.API.TokenCache,
			TTL:       set.API.TokenTTL,
		}),
		CORS: middleware.CORSOptions{
			AllowedOrigins: set.API.CORSOrigins,
			MaxAge:         set.API.CORSMaxAge,
		},
		EnableSwagger:  set.API.Swagger,
		EnableProfiler: set.API.Profiler,
	})

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
