package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/api/responses"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/config"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/db"
	pkgerrors "github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/errors"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/logger"
	"github.com/kevinharijanto/Shipping-Single-PoS-sub000/pkg/redis"
)

const readyCheckTimeout = 2 * time.Second

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Kurasyit-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the hard dependencies so the orchestrator can hold
// traffic until they answer.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Kurasyit-Env", cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
		defer cancel()

		if dbP != nil {
			if err := dbP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unreachable"))
				return
			}
		}
		if redisP != nil {
			if err := redisP.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
