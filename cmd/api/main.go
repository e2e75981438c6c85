package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/internal/api"
	"github.com/vfg2006/ads-autopilot-api/internal/api/handler"
	"github.com/vfg2006/ads-autopilot-api/internal/bootstrap"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/scheduler"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.New(ctx, cfg, bootstrap.Options{WithStore: true})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar dependências")
	}
	defer app.Close()

	if cfg.Meta.TokenRefreshEnabled {
		go app.Tokens.StartAutoRefresh(ctx)
		defer app.Tokens.StopAutoRefresh()
	}

	analysisSyncService, err := scheduler.NewAnalysisSyncService(app.Engine, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar a análise periódica")
	}

	if err := analysisSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de análise periódica")
	} else {
		logrus.Info("Agendador de análise periódica iniciado com sucesso")
	}

	healthChecks := map[string]handler.Pinger{"postgres": app.DB}
	if app.Cache != nil {
		healthChecks["redis"] = app.Cache
	}

	server, err := api.New(cfg, app.Engine, analysisSyncService, healthChecks)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
