package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/ferdiebergado/legacyprocs/internal/assistant"
	"github.com/ferdiebergado/legacyprocs/internal/client"
	"github.com/ferdiebergado/legacyprocs/internal/config"
	"github.com/ferdiebergado/legacyprocs/internal/middleware"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/message"
	"github.com/ferdiebergado/legacyprocs/internal/pkg/web"
	"github.com/ferdiebergado/legacyprocs/internal/platform/router"
	"github.com/ferdiebergado/legacyprocs/internal/platform/validation"
	"github.com/ferdiebergado/legacyprocs/internal/serviceorder"
	"github.com/ferdiebergado/legacyprocs/internal/technician"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const healthCheckTimeout = 2 * time.Second

type apiHandlers struct {
	client     *client.Handler
	technician *technician.Handler
	order      *serviceorder.Handler
	assistant  *assistant.Handler
}

type HealthData struct {
	Status string `json:"status"`
}

func mountSystemRoutes(r router.Router, dbConn *sql.DB, reg *prometheus.Registry) {
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), healthCheckTimeout)
		defer cancel()

		if err := dbConn.PingContext(ctx); err != nil {
			web.RespondServiceUnavailable(w, err, message.Unhealthy)
			return
		}
		web.RespondOK(w, nil, &HealthData{Status: "up"})
	})

	r.Get("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}).ServeHTTP)
}

func mountAPIRoutes(r router.Router, h *apiHandlers, cfg *config.Config, p *Provider) {
	var guards []router.Middleware
	if cfg.JWT.Enabled {
		guards = append(guards, middleware.RequireToken(p.Signer))
	}

	maxBody := cfg.Server.MaxBodyBytes
	v := p.Validator

	r.Group("/api", func(gr router.Router) {
		gr.Get("/clients", h.client.List)
		gr.Get("/clients/{id}", h.client.Get)
		gr.Post("/clients", h.client.Create, payload[client.Params](maxBody, v)...)
		gr.Put("/clients/{id}", h.client.Update, payload[client.UpdateParams](maxBody, v)...)
		gr.Delete("/clients/{id}", h.client.Delete)

		gr.Get("/technicians", h.technician.List)
		gr.Get("/technicians/available", h.technician.ListAvailable)
		gr.Get("/technicians/{id}", h.technician.Get)
		gr.Post("/technicians", h.technician.Create, payload[technician.Params](maxBody, v)...)
		gr.Put("/technicians/{id}", h.technician.Update, payload[technician.UpdateParams](maxBody, v)...)
		gr.Delete("/technicians/{id}", h.technician.Delete)

		gr.Get("/service-orders", h.order.List)
		gr.Get("/service-orders/paged", h.order.ListPaged)
		gr.Get("/service-orders/{id}", h.order.Get)
		gr.Post("/service-orders", h.order.Create, payload[serviceorder.Params](maxBody, v)...)
		gr.Put("/service-orders/{id}", h.order.Update, payload[serviceorder.UpdateParams](maxBody, v)...)
		gr.Delete("/service-orders/{id}", h.order.Delete)

		gr.Post("/assistant/description", h.assistant.GenerateDescription, payload[assistant.TitleParams](maxBody, v)...)
		gr.Post("/assistant/technician", h.assistant.SuggestTechnician, payload[assistant.DescriptionParams](maxBody, v)...)
		gr.Post("/assistant/priority", h.assistant.AnalyzePriority, payload[assistant.DescriptionParams](maxBody, v)...)
		gr.Post("/assistant/estimate", h.assistant.EstimateTime, payload[assistant.DescriptionParams](maxBody, v)...)
		gr.Get("/assistant/models", h.assistant.Model)
	}, guards...)
}

func payload[T any](maxBody int64, v validation.Validator) []router.Middleware {
	return []router.Middleware{
		middleware.DecodePayload[T](maxBody),
		middleware.ValidateInput[T](v),
	}
}
