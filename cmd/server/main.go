// Command server runs the blog HTTP API.
//
//	@title						Blog API
//	@version					1.0.0
//	@description				CRUD backend for blog posts with cookie or bearer token auth.
//	@BasePath					/
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/swaggo/swag"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/rayan25nov/Blog-task-backend/api"
	"github.com/rayan25nov/Blog-task-backend/internal/auth"
	"github.com/rayan25nov/Blog-task-backend/internal/blog"
	"github.com/rayan25nov/Blog-task-backend/internal/config"
	"github.com/rayan25nov/Blog-task-backend/internal/httpx"
	"github.com/rayan25nov/Blog-task-backend/internal/logger"
	"github.com/rayan25nov/Blog-task-backend/internal/middleware"
	"github.com/rayan25nov/Blog-task-backend/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// ── PostgreSQL ────────────────────────────────────────────
	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pgPool.Close()
	pgStore := store.NewPostgresStore(pgPool)
	if err := pgStore.Migrate(ctx); err != nil {
		log.Fatal("postgres migrate", zap.Error(err))
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("mongo connect", zap.Error(err))
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	mongoStore := store.NewMongoStore(mongoClient.Database(cfg.MongoDB))
	if err := mongoStore.EnsureIndexes(ctx); err != nil {
		log.Fatal("mongo indexes", zap.Error(err))
	}

	// ── Redis (optional) ─────────────────────────────────────
	var (
		rdb         *redis.Client
		authLimiter middleware.Limiter
	)
	if cfg.RedisAddr != "" {
		rdb, err = store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Fatal("redis connect", zap.Error(err))
		}
		defer func() { _ = rdb.Close() }()
		authLimiter = middleware.NewRedisLimiter(rdb, "auth", cfg.AuthRateLimit, cfg.AuthRateWindow)
	} else {
		log.Info("REDIS_ADDR not set, rate limiting in memory")
		authLimiter = middleware.NewMemoryLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow)
	}

	// ── MinIO ────────────────────────────────────────────────
	minioStore, err := store.NewMinioStore(
		ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
		cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL,
		cfg.MediaPublicURL,
	)
	if err != nil {
		log.Fatal("minio connect", zap.Error(err))
	}

	// ── Services & handlers ──────────────────────────────────
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, auth.TokenTTL)
	authHandler := auth.NewHandler(auth.NewService(pgStore, mongoStore, tokens), log, cfg.Env != "dev")
	blogHandler := blog.NewHandler(blog.NewService(mongoStore, pgStore, minioStore, log), log)
	requireAuth := middleware.RequireAuth(tokens)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Hello World!"))
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]func(context.Context) error{
			"postgres": pgStore.Ping,
			"mongo":    mongoStore.Ping,
		}
		if rdb != nil {
			checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
		status := map[string]string{}
		code := http.StatusOK
		for name, check := range checks {
			if err := check(ctx); err != nil {
				status[name] = err.Error()
				code = http.StatusServiceUnavailable
				continue
			}
			status[name] = "ok"
		}
		httpx.WriteJSON(w, code, status)
	})

	r.Get("/swagger.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := swag.ReadDoc(api.SwaggerInfo.InstanceName())
		if err != nil {
			httpx.Fail(w, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})
	r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/swagger.json")))

	// Body caps run before auth reads a token from the body.
	r.With(middleware.MaxBody(cfg.MaxJSONBytes)).Mount("/users",
		authHandler.Routes(requireAuth, middleware.RateLimit(authLimiter, log)))
	r.With(middleware.MaxBody(cfg.MaxUploadBytes)).Mount("/blogs", blogHandler.Routes(requireAuth))

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       2 * time.Minute,
		WriteTimeout:      2 * time.Minute,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
