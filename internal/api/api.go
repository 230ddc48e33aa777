package api

import (
	"net/http"

	assistantHandler "vinoteca-server/internal/assistant/handler"
	authHandler "vinoteca-server/internal/auth/handler"
	catalogHandler "vinoteca-server/internal/catalog/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	authHandler      authHandler.Handler
	assistantHandler assistantHandler.Handler
	catalogHandler   catalogHandler.Handler
}

func New(router *gin.RouterGroup, authHandler authHandler.Handler,
	assistantHandler assistantHandler.Handler, catalogHandler catalogHandler.Handler) API {
	return API{
		router:           router,
		authHandler:      authHandler,
		assistantHandler: assistantHandler,
		catalogHandler:   catalogHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		apiGroup.GET("/wines", a.catalogHandler.HandleSearchWines)
		apiGroup.GET("/wines/:id", a.catalogHandler.HandleGetWine)
	}
	protectedGroup := apiGroup.Group("/protected", a.authHandler.HandleJWTMiddleware)
	{
		protectedGroup.POST("/assistant/chat", a.assistantHandler.HandleChat)
		protectedGroup.GET("/assistant/connections", a.assistantHandler.HandleListConnections)
		protectedGroup.POST("/assistant/connections", a.assistantHandler.HandleCreateConnection)
		protectedGroup.DELETE("/assistant/connections/:id", a.assistantHandler.HandleDeleteConnection)
		protectedGroup.GET("/assistant/connections/:id/messages", a.assistantHandler.HandleGetMessages)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
