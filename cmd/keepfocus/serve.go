package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/vango-dev/keepfocus/pkg/reconcile"
	"github.com/vango-dev/keepfocus/pkg/server"
	"github.com/vango-dev/keepfocus/pkg/telemetry"
)

func serveCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the playground server",
		Long: `Serve the playground API:

  POST /v1/patch    stateless patch of two descriptions
  GET  /v1/session  websocket session streaming binary patch frames
  GET  /metrics     Prometheus metrics (metrics.enabled)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := server.ConfigFrom(a.cfg)
			if addr != "" {
				sc.Address = addr
			}
			srv := server.New(sc, a.serverOptions()...)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.host and server.port)")
	return cmd
}

// serverOptions wires logging, metrics and tracing from the config.
func (a *app) serverOptions() []server.Option {
	opts := []server.Option{
		server.WithLogger(a.logger.With("component", "server")),
	}

	var observer reconcile.Observer
	if a.cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m := telemetry.NewMetrics(
			telemetry.WithRegistry(reg),
			telemetry.WithNamespace(a.cfg.Metrics.Namespace),
		)
		observer = m
		opts = append(opts, server.WithMetrics(m, metricsHandler(reg)))
	}
	return append(opts, server.WithEngine(a.engine(observer)))
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

