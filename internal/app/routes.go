package app

import (
	"net/http"

	"github.com/ferdiebergado/boring/internal/assistant"
	"github.com/ferdiebergado/boring/internal/item"
	"github.com/ferdiebergado/boring/internal/markdown"
	"github.com/ferdiebergado/boring/internal/middleware"
	"github.com/ferdiebergado/boring/internal/pkg/web"
	"github.com/ferdiebergado/boring/internal/platform/chain"
	"github.com/ferdiebergado/boring/internal/platform/router"
	"github.com/ferdiebergado/boring/internal/platform/static"
)

const apiPrefix = "/api/"

type healthResponse struct {
	Status string `json:"status"`
}

func health(w http.ResponseWriter, _ *http.Request) {
	web.OK(w, http.StatusOK, &healthResponse{Status: "ok"})
}

// newAPI assembles the handler chain served under /api/.
func (a *App) newAPI() *chain.Chain {
	maxBodySize := a.config.Server.MaxBodyBytes

	itemRepo := item.NewRepository(a.config.Storage.DataDir)
	itemService := item.NewService(itemRepo, nil)
	itemHandler := item.NewHandler(itemService)

	api := chain.New(
		item.Routes(itemHandler, a.validator, maxBodySize),
		markdown.Routes(markdown.NewHandler(a.renderer), a.validator, maxBodySize),
	)

	if a.generator != nil {
		api.Add(assistant.Routes(assistant.NewHandler(a.generator), a.validator, maxBodySize))
	}

	return api
}

func mountRoutes(r router.Router, api http.Handler, files *static.Server) {
	r.Get("/healthz", health)
	r.Handle(apiPrefix, api, middleware.CheckContentType)
	r.Handle("/", files)
}
