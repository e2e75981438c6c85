// Package bootstrap monta o grafo de dependências compartilhado entre a API e a CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/cache"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/migration"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/repository"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/decisioning"
)

type Options struct {
	// WithStore conecta o Postgres (e o Redis, quando habilitado) para persistir relatórios
	WithStore bool
}

type App struct {
	Config *config.Config
	Engine *decisioning.Service
	Tokens *metaclient.TokenManager
	DB     *postgres.Connection
	Cache  *cache.ReportCache

	closers []func() error
}

func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	app := &App{Config: cfg}

	app.Tokens = metaclient.NewTokenManager(cfg)
	metaClient := metaclient.NewClient(cfg, app.Tokens)
	metaIntegrator := meta.New(cfg, metaClient)

	executor := decisioning.NewExecutor(metaIntegrator, decisioning.ExecutorOptions{
		DryRun:      cfg.Execution.DryRun,
		ApplyBudget: cfg.Execution.ApplyBudget,
	})
	app.Engine = decisioning.NewService(metaIntegrator, executor, cfg.Decision.Defaults(), cfg.Decision.MaxConcurrentFetches)

	if !opts.WithStore {
		return app, nil
	}

	if err := app.openStore(ctx); err != nil {
		app.Close()
		return nil, err
	}

	var reportCache decisioning.ReportCache
	if app.Cache != nil {
		reportCache = app.Cache
	}
	app.Engine.WithStore(repository.NewAnalysisReportRepository(app.DB), reportCache)

	return app, nil
}

func (a *App) openStore(ctx context.Context) error {
	conn, err := postgres.NewConnection(ctx, a.Config.Database)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}
	a.DB = conn
	a.closers = append(a.closers, conn.Close)
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	if a.Config.Database.AutoMigrate {
		applied, err := migration.Apply(ctx, conn)
		if err != nil {
			return fmt.Errorf("erro ao aplicar migrations: %w", err)
		}
		if len(applied) > 0 {
			logrus.WithField("versions", applied).Info("Migrations aplicadas")
		}
	}

	if !a.Config.Redis.Enabled {
		return nil
	}

	client, err := cache.NewRedisClient(ctx, a.Config.Redis)
	if err != nil {
		// Sem cache a leitura do último relatório vai direto ao banco
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache de relatórios")
		return nil
	}
	a.closers = append(a.closers, client.Close)
	a.Cache = cache.NewReportCache(client, a.Config.Redis.ReportTTL)

	return nil
}

// Close libera as conexões na ordem inversa da abertura
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar recurso")
		}
	}
	a.closers = nil
}
