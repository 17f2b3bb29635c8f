package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nanokm/pola-backend/internal/assets"
	companydb "github.com/nanokm/pola-backend/internal/company/db"
	"github.com/nanokm/pola-backend/internal/config"
	productdb "github.com/nanokm/pola-backend/internal/product/db"
	"github.com/nanokm/pola-backend/internal/provider/krs"
	"github.com/nanokm/pola-backend/internal/provider/produkty"
	scannerhandler "github.com/nanokm/pola-backend/internal/scanner/handler"
	scannerservice "github.com/nanokm/pola-backend/internal/scanner/service"
	"github.com/nanokm/pola-backend/internal/web"
	webhandler "github.com/nanokm/pola-backend/internal/web/handler"
	minioclient "github.com/nanokm/pola-backend/pkg/client/minio"
	pgclient "github.com/nanokm/pola-backend/pkg/client/postgresql"
	pgtx "github.com/nanokm/pola-backend/pkg/transactor/postgresql"
	"go.uber.org/zap"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/nanokm/pola-backend/docs"
)

type App struct {
	HTTPServer *http.Server
}

func NewApp(log *zap.Logger, cfg config.Config) *App {
	pgClient, err := pgclient.NewClient(
		context.TODO(),
		pgclient.Config{
			Username: cfg.PostgreSQL.Username,
			Password: cfg.PostgreSQL.Password,
			Host:     cfg.PostgreSQL.Host,
			Port:     cfg.PostgreSQL.Port,
			Database: cfg.PostgreSQL.Database,
		},
	)
	if err != nil {
		log.Fatal(err.Error())
	}

	minioClient, err := minioclient.New(minioclient.Config{
		Endpoint:        cfg.Minio.Endpoint,
		AccessKeyID:     cfg.Minio.AccessKeyID,
		SecretAccessKey: cfg.Minio.SecretAccessKey,
		UseSSL:          cfg.Minio.UseSSL,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	router := chi.NewRouter()

	router.Use(
		LoggingMiddleware(log),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.HTTPServer.AllowedOrigins,
			AllowCredentials: cfg.HTTPServer.AllowCredentials,
		}),
		middleware.Recoverer,
	)

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Get("/ping", PingHandler)

		productRepository := productdb.NewRepository(pgClient, log)

		companyRepository := companydb.NewRepository(pgClient, log)

		produktyClient := produkty.NewClient(produkty.Config{
			BaseURL: cfg.Providers.Produkty.URL,
			APIKey:  cfg.Providers.Produkty.APIKey,
			Timeout: cfg.Providers.Produkty.Timeout,
		}, log)

		krsClient := krs.NewClient(krs.Config{
			BaseURL: cfg.Providers.KRS.URL,
			Timeout: cfg.Providers.KRS.Timeout,
		}, log)

		assetStorage := assets.New(assets.Config{
			Endpoint: cfg.Minio.Endpoint,
			Bucket:   cfg.Minio.PublicBucket,
			UseSSL:   cfg.Minio.UseSSL,
		})

		txManager := pgtx.NewPgManager(pgClient)

		scannerService := scannerservice.New(
			productRepository,
			companyRepository,
			produktyClient,
			krsClient,
			assetStorage,
			txManager,
			log,
		)

		scannerHandler := scannerhandler.New(scannerService, log)

		log.Info("register scanner handlers")

		scannerHandler.Register(r)
	})

	webService := web.New(minioClient, cfg.Minio.WebBucket, log)

	webHandler := webhandler.New(webService, log)

	log.Info("register web handlers")

	webHandler.Register(router)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		HTTPServer: srv,
	}
}

func (a *App) MustRun() {
	if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic("failed to start server")
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.HTTPServer.Shutdown(ctx)
}

func LoggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// @Tags		other
// @Success	200		{string}	string
// @Failure	400,500	{object}	apperror.AppError
// @Router		/ping [get]
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("pong"))
}
