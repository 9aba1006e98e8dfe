// Package markdown serves the markdown preview endpoint.
package markdown

import (
	"net/http"

	"github.com/ferdiebergado/boring/internal/middleware"
	"github.com/ferdiebergado/boring/internal/pkg/message"
	"github.com/ferdiebergado/boring/internal/pkg/web"
	"github.com/ferdiebergado/boring/internal/platform/chain"
	"github.com/ferdiebergado/boring/internal/platform/markdown"
	"github.com/ferdiebergado/boring/internal/platform/validation"
)

const Path = "/api/markdown"

type RenderRequest struct {
	Markdown string `json:"markdown" validate:"max=100000"`
}

type RenderResponse struct {
	HTML string `json:"html"`
}

type Handler struct {
	renderer markdown.Renderer
}

func NewHandler(renderer markdown.Renderer) *Handler {
	return &Handler{
		renderer: renderer,
	}
}

func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	req, err := web.PayloadFromContext[RenderRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	html, err := h.renderer.Render(req.Markdown)
	if err != nil {
		web.RespondInternalServerError(w, err)
		return
	}

	web.OK(w, http.StatusOK, &RenderResponse{HTML: html})
}

func Routes(h *Handler, validator validation.Validator, maxBodySize int64) chain.Group {
	return chain.Group{
		chain.Route(http.MethodPost, Path, h.Render,
			middleware.DecodePayload[RenderRequest](maxBodySize),
			middleware.ValidateInput[RenderRequest](validator)),
	}
}
