// Package http wires the gin engine: middleware, routes, handlers.
package http

import (
	"github.com/gin-gonic/gin"

	"glowtrack/internal/interfaces/http/handlers"
	"glowtrack/internal/interfaces/http/middleware"
	"glowtrack/internal/shared/logger"
)

type Router struct {
	engine         *gin.Engine
	routineHandler *handlers.RoutineHandler
	trackerHandler *handlers.TrackerHandler
	healthHandler  *handlers.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	logger         logger.Interface
}

func NewRouter(
	routineHandler *handlers.RoutineHandler,
	trackerHandler *handlers.TrackerHandler,
	authMiddleware *middleware.AuthMiddleware,
	log logger.Interface,
) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(log))
	engine.Use(middleware.CORS([]string{"*"}))

	return &Router{
		engine:         engine,
		routineHandler: routineHandler,
		trackerHandler: trackerHandler,
		healthHandler:  handlers.NewHealthHandler(),
		authMiddleware: authMiddleware,
		logger:         log,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", r.healthHandler.Check)

	api := r.engine.Group("/api")
	api.Use(r.authMiddleware.RequireAuth())
	{
		routineGroup := api.Group("/routine")
		{
			routineGroup.POST("", r.routineHandler.Create)
			routineGroup.GET("", r.routineHandler.Get)
			routineGroup.PATCH("", r.routineHandler.Patch)
			routineGroup.GET("/today", r.routineHandler.GetToday)
			routineGroup.PUT("/update-day", r.routineHandler.UpdateDay)
			routineGroup.PUT("/session/mark-done", r.routineHandler.MarkSessionDone)
			routineGroup.PATCH("/update-push-token", r.routineHandler.UpdatePushToken)
			routineGroup.PATCH("/update-routine-name", r.routineHandler.UpdateName)
		}

		api.POST("/tracker", r.trackerHandler.Record)
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
