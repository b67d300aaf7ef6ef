package routes

import (
	"time"

	"surveyapi/config"
	"surveyapi/controllers"
	_ "surveyapi/docs"
	"surveyapi/repository"
	"surveyapi/services"
	"surveyapi/services/cache"
	"surveyapi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Deps holds everything the HTTP layer needs.
type Deps struct {
	Config     *config.AppConfig
	DB         *gorm.DB
	StatsCache cache.StatisticCache
}

// SetupRouter builds the gin engine with middleware and all API routes.
func SetupRouter(deps Deps) *gin.Engine {
	if deps.Config.Debug {
		gin.SetMode(gin.DebugMode)
	} else if deps.Config.IsTesting() {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	if deps.StatsCache == nil {
		deps.StatsCache = cache.NoopCache{}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.LoggerMiddleware())
	router.Use(cors.New(corsConfig(deps.Config.CORSAllowOrigins)))

	controllers.RegisterHealthRoutes(router, repository.NewBaseRepository(deps.DB))

	api := router.Group("")
	{
		controllers.RegisterCategoryRoutes(api, services.NewCategoryService(deps.DB))
		controllers.RegisterQuestionRoutes(api, services.NewQuestionService(deps.DB, deps.StatsCache),
			controllers.QuestionRouteOptions{
				LegacyGetStatusCreated: deps.Config.LegacyGetQuestionStatusCreated,
			})
		controllers.RegisterResponseRoutes(api, services.NewResponseService(deps.DB, deps.StatsCache))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", utils.RequestIDHeader},
		ExposeHeaders:    []string{utils.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
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
