package action

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackwhich/jenkins_api/pkg/config"
	"github.com/jackwhich/jenkins_api/pkg/exporter"
	"github.com/jackwhich/jenkins_api/pkg/internal/storage"
	"github.com/jackwhich/jenkins_api/pkg/jenkins"
	"github.com/jackwhich/jenkins_api/pkg/middleware"
	"github.com/jackwhich/jenkins_api/pkg/version"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/exporter-toolkit/web"
)

// Server handles the server sub-command.
func Server(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("launching jenkins_api",
		"version", version.String,
		"revision", version.Revision,
		"date", version.Date,
		"go", version.Go,
	)

	username, err := config.Value(cfg.Target.Username)

	if err != nil {
		logger.Error("failed to load username",
			"err", err,
		)

		return err
	}

	password, err := config.Value(cfg.Target.Password)

	if err != nil {
		logger.Error("failed to load password",
			"err", err,
		)

		return err
	}

	client, err := jenkins.NewClient(
		jenkins.WithEndpoint(cfg.Target.Address),
		jenkins.WithUsername(username),
		jenkins.WithPassword(password),
		jenkins.WithTimeout(cfg.Target.Timeout),
		jenkins.WithLogger(logger),
	)

	if err != nil {
		logger.Error("failed to prepare client",
			"address", cfg.Target.Address,
			"err", err,
		)

		return err
	}

	var repo *storage.JobRepo

	if cfg.Database.Path != "" {
		db, err := storage.NewSQLite(cfg.Database.Path, logger)

		if err != nil {
			logger.Error("failed to open state database",
				"path", cfg.Database.Path,
				"err", err,
			)

			return err
		}

		defer func() {
			_ = db.Close()
		}()

		repo = storage.NewJobRepo(db, logger)
	}

	var gr run.Group

	{
		server := &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      handler(cfg, logger, client, repo),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: cfg.Server.Timeout,
		}

		gr.Add(func() error {
			logger.Info("starting metrics server",
				"address", cfg.Server.Addr,
			)

			return web.ListenAndServe(
				server,
				&web.FlagConfig{
					WebListenAddresses: sliceP([]string{cfg.Server.Addr}),
					WebSystemdSocket:   boolP(false),
					WebConfigFile:      stringP(cfg.Server.Web),
				},
				logger,
			)
		}, func(reason error) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logger.Error("failed to shutdown metrics server gracefully",
					"err", err,
				)

				return
			}

			logger.Info("metrics server shutdown gracefully",
				"reason", reason,
			)
		})
	}

	if repo != nil {
		ctx, cancel := context.WithCancel(context.Background())

		gr.Add(func() error {
			return exporter.StartDiscovery(
				ctx,
				client,
				repo,
				cfg.Database.SyncInterval,
				cfg.Collector.Folders,
				logger,
			)
		}, func(_ error) {
			cancel()
		})
	}

	{
		stop := make(chan os.Signal, 1)

		gr.Add(func() error {
			signal.Notify(stop, os.Interrupt)

			<-stop

			return nil
		}, func(_ error) {
			close(stop)
		})
	}

	return gr.Run()
}

func handler(cfg *config.Config, logger *slog.Logger, client *jenkins.Client, repo *storage.JobRepo) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.Recoverer(logger))
	mux.Use(middleware.RealIP)
	mux.Use(middleware.Timeout)
	mux.Use(middleware.Cache)

	if cfg.Server.Pprof {
		mux.Mount("/debug", middleware.Profiler())
	}

	if cfg.Collector.Jobs {
		logger.Info("registered job collector",
			"build_details", cfg.Collector.BuildDetails,
			"folders", cfg.Collector.Folders,
		)

		registry.MustRegister(exporter.NewJobCollector(
			logger,
			client,
			requestFailures,
			requestDuration,
			cfg.Target,
			cfg.Collector.BuildDetails,
			cfg.Collector.Folders,
			repo,
		))
	}

	if cfg.Collector.Nodes {
		logger.Info("registered node collector")

		registry.MustRegister(exporter.NewNodeCollector(
			logger,
			client,
			requestFailures,
			requestDuration,
			cfg.Target,
		))
	}

	if cfg.Collector.Queue {
		logger.Info("registered queue collector")

		registry.MustRegister(exporter.NewQueueCollector(
			logger,
			client,
			requestFailures,
			requestDuration,
			cfg.Target,
		))
	}

	reg := promhttp.HandlerFor(
		registry,
		promhttp.HandlerOpts{
			ErrorLog: promLogger{logger},
		},
	)

	mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.Server.Path, http.StatusMovedPermanently)
	})

	mux.Route("/", func(root chi.Router) {
		root.Get(cfg.Server.Path, func(w http.ResponseWriter, r *http.Request) {
			reg.ServeHTTP(w, r)
		})

		root.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusOK)

			_, _ = io.WriteString(w, http.StatusText(http.StatusOK))
		})

		root.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusOK)

			_, _ = io.WriteString(w, http.StatusText(http.StatusOK))
		})
	})

	return mux
}

func boolP(i bool) *bool {
	return &i
}

func stringP(i string) *string {
	return &i
}

func sliceP(i []string) *[]string {
	return &i
}
