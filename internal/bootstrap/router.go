package bootstrap

import (
	"time"

	httpapi "github.com/GoSim-25-26J-441/archgen-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/api/http/middleware"
	archhttp "github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/http"
	"github.com/GoSim-25-26J-441/archgen-backend/internal/architecture_generation/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Redis       *redis.Client
	DB          *pgxpool.Pool
	Service     *service.ArchitectureService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))
	r.Use(middleware.RequestIDMiddleware())
	r.SetHTMLTemplate(archhttp.Templates())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)

	h := archhttp.New(dep.Service)
	h.RegisterPages(r)
	h.Register(r.Group("/api/v1"))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders: []string{"X-Request-Id", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
