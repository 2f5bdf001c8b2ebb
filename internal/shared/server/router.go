package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/comparisons"
	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/config"
	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/filings"
	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/shared/server/middleware"
	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/shared/server/respond"
	"github.com/Capital-W-Holdings/IntelligenceDB-sub000/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
// Without DATABASE_URL the service runs against in-memory repositories,
// which is sufficient for local development and tests.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
	)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var filingsRepo filings.Repo
	var comparisonsRepo comparisons.Repo
	if sqlDB != nil {
		filingsRepo = &filings.PGRepo{DB: sqlDB}
		comparisonsRepo = &comparisons.PGRepo{DB: sqlDB}
	} else {
		filingsRepo = filings.NewMemoryRepo()
		comparisonsRepo = comparisons.NewMemoryRepo()
	}

	filingsSvc := &filings.Service{Repo: filingsRepo}
	filingsHandler := filings.NewHandler(filingsSvc)
	comparisonsSvc := comparisons.NewService(comparisonsRepo, filingsRepo)
	comparisonsHandler := comparisons.NewHandler(comparisonsSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	filingsHandler.RegisterRoutes(api)
	comparisonsHandler.RegisterRoutes(api)

	return r
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
