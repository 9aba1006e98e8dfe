package item

import (
	"net/http"

	"github.com/ferdiebergado/boring/internal/middleware"
	"github.com/ferdiebergado/boring/internal/platform/chain"
	"github.com/ferdiebergado/boring/internal/platform/validation"
)

// Routes returns the item endpoints as one link of the API chain.
func Routes(h *Handler, validator validation.Validator, maxBodySize int64) chain.Group {
	return chain.Group{
		chain.Route(http.MethodGet, BasePath, h.List),
		chain.Route(http.MethodPost, BasePath, h.Create,
			middleware.DecodePayload[CreateParams](maxBodySize),
			middleware.ValidateInput[CreateParams](validator)),
		chain.Route(http.MethodGet, itemPath, h.Get),
		chain.Route(http.MethodPut, itemPath, h.Update,
			middleware.DecodePayload[UpdateParams](maxBodySize),
			middleware.ValidateInput[UpdateParams](validator)),
		chain.Route(http.MethodDelete, itemPath, h.Delete),
	}
}
