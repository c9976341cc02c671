package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aletkin/carminder/internal/api/handlers/run"
	"github.com/aletkin/carminder/internal/api/handlers/subscription"
)

func New(runHandler *run.Handler, subHandler *subscription.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	api.POST("/engine/run", runHandler.Trigger)

	subs := api.Group("/subscriptions")
	subs.PUT("", subHandler.Register)
	subs.DELETE("", subHandler.Unregister)

	return e
}
