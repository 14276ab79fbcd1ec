package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/restaurant-analytics/internal/analytics"
	"github.com/MikeMC777/restaurant-analytics/internal/health"
	"github.com/MikeMC777/restaurant-analytics/internal/httpx"
	"github.com/MikeMC777/restaurant-analytics/internal/restaurant"
)

type deps struct {
	restaurants *restaurant.Service
	analytics   *analytics.Service
	store       health.Pinger
	loc         *time.Location
	log         zerolog.Logger

	apiPrefix   string
	corsOrigins []string
	// basic auth is enabled when authUser is set
	authUser string
	authHash []byte
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(d.log), httpx.Logger(), httpx.CORS(d.corsOrigins))

	r.GET("/healthz", healthzHandler)
	r.GET("/readyz", readyzHandler(d.store))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(d.apiPrefix)
	if d.authUser != "" {
		api.Use(httpx.BasicAuth(d.authUser, d.authHash))
	}
	api.GET("/restaurants", listRestaurantsHandler(d.restaurants))
	api.GET("/restaurants/:id", getRestaurantHandler(d.restaurants))
	api.GET("/analytics/restaurant/:id/trends", restaurantTrendsHandler(d.analytics, d.loc))
	api.GET("/analytics/top-restaurants", topRestaurantsHandler(d.analytics, d.loc))
	api.GET("/analytics/filtered", filteredOrdersHandler(d.analytics, d.loc))
	return r
}
