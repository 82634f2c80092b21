package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"courserec-backend/internal/catalog"
	"courserec-backend/internal/ratings"
	"courserec-backend/internal/recommend"
	"courserec-backend/internal/shared/config"
	"courserec-backend/internal/shared/metrics"
	"courserec-backend/internal/shared/server/middleware"
	"courserec-backend/internal/shared/server/respond"
	"courserec-backend/internal/shared/storage/db"
	"courserec-backend/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	sqlDB := openDatabase(cfg)

	var catalogRepo catalog.Repo
	var ratingsRepo ratings.Repo
	if sqlDB != nil {
		catalogRepo = &catalog.SQLRepo{DB: sqlDB}
		ratingsRepo = &ratings.SQLRepo{DB: sqlDB}
	} else {
		memRepo := catalog.NewMemoryRepo()
		if cfg.SeedSampleData {
			seedSampleCourses(memRepo)
		}
		catalogRepo = memRepo
		ratingsRepo = ratings.NewMemoryRepo()
	}

	engine := recommend.New(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogRepo)
	recommendHandler := recommend.NewHandler(engine)
	ratingsSvc := ratings.NewService(ratingsRepo, catalogRepo)
	ratingsHandler := ratings.NewHandler(ratingsSvc)

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"RECOMMEND": {Rate: cfg.RecommendRate, Burst: cfg.RecommendBurst},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/recommendations" {
				return "RECOMMEND"
			}
			return ""
		},
	}))
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	catalogHandler.RegisterRoutes(api)
	recommendHandler.RegisterRoutes(api)
	ratingsHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// openDatabase connects per the configured driver and runs migrations. Any
// failure falls back to the in-memory repositories so dev setups keep working.
func openDatabase(cfg config.Config) *sql.DB {
	var dsn string
	switch cfg.DBDriver {
	case "postgres":
		dsn = cfg.DatabaseURL
	case "sqlite":
		dsn = cfg.SQLitePath
	default:
		return nil
	}
	if dsn == "" {
		return nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	conn, err := db.Connect(context.Background(), cfg.DBDriver, dsn, opts)
	if err != nil {
		telemetry.Warn("db.fallback_memory", map[string]any{
			"driver": cfg.DBDriver,
			"error":  err.Error(),
		})
		return nil
	}
	if err := db.RunMigrations(context.Background(), conn, cfg.DBDriver); err != nil {
		telemetry.Warn("db.migrate_failed", map[string]any{
			"driver": cfg.DBDriver,
			"error":  err.Error(),
		})
		conn.Close()
		return nil
	}
	return conn
}

func seedSampleCourses(repo catalog.Repo) {
	ctx := context.Background()
	for _, course := range catalog.SampleCourses() {
		if err := repo.Upsert(ctx, course); err != nil {
			log.Printf("failed to seed course %s: %v", course.ID, err)
		}
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
