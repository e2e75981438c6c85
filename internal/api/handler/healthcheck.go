package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Pinger é qualquer dependência que a verificação de saúde consegue testar
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(deps map[string]Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := make(map[string]string, len(deps))
		status := http.StatusOK
		for name, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				logrus.WithError(err).WithField("dependency", name).Warn("http: healthcheck dependency down")
				checks[name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			checks[name] = "up"
		}

		writeJSON(w, status, map[string]any{
			"time":   time.Now().Format(time.RFC3339),
			"checks": checks,
		})
	})
}
