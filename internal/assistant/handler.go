// Package assistant proxies chat prompts to the configured language model.
package assistant

import (
	"net/http"
	"strings"

	"github.com/ferdiebergado/boring/internal/middleware"
	errx "github.com/ferdiebergado/boring/internal/pkg/error"
	"github.com/ferdiebergado/boring/internal/pkg/message"
	"github.com/ferdiebergado/boring/internal/pkg/web"
	"github.com/ferdiebergado/boring/internal/platform/chain"
	"github.com/ferdiebergado/boring/internal/platform/llm"
	"github.com/ferdiebergado/boring/internal/platform/validation"
)

const Path = "/api/chat"

type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required,notblank,max=8000"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type Handler struct {
	generator llm.Generator
}

func NewHandler(generator llm.Generator) *Handler {
	return &Handler{
		generator: generator,
	}
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	req, err := web.PayloadFromContext[ChatRequest](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	reply, err := h.generator.Generate(r.Context(), strings.TrimSpace(req.Prompt))
	if err != nil {
		// only the client going away is a timeout, vendor deadlines are upstream failures.
		if errx.IsContextError(r.Context().Err()) {
			web.RespondRequestTimeout(w, err, message.RequestTimeout)
			return
		}
		web.RespondBadGateway(w, err, message.UpstreamFailed)
		return
	}

	web.OK(w, http.StatusOK, &ChatResponse{Reply: reply})
}

func Routes(h *Handler, validator validation.Validator, maxBodySize int64) chain.Group {
	return chain.Group{
		chain.Route(http.MethodPost, Path, h.Chat,
			middleware.DecodePayload[ChatRequest](maxBodySize),
			middleware.ValidateInput[ChatRequest](validator)),
	}
}
