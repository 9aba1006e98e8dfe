package item

import (
	"errors"
	"net/http"

	errx "github.com/ferdiebergado/boring/internal/pkg/error"
	"github.com/ferdiebergado/boring/internal/pkg/message"
	"github.com/ferdiebergado/boring/internal/pkg/web"
	"github.com/ferdiebergado/boring/internal/platform/chain"
)

const (
	BasePath = "/api/items"
	paramID  = "id"
	itemPath = BasePath + "/:" + paramID
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{
		svc: svc,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		respondStorageError(w, err)
		return
	}

	web.OK(w, http.StatusOK, items)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	params, err := web.PayloadFromContext[CreateParams](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	created, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	w.Header().Set(web.HeaderLocation, BasePath+"/"+created.ID)
	web.OK(w, http.StatusCreated, &created)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.Find(r.Context(), chain.Param(r, paramID))
	if err != nil {
		respondStorageError(w, err)
		return
	}

	web.OK(w, http.StatusOK, &found)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	params, err := web.PayloadFromContext[UpdateParams](r.Context())
	if err != nil {
		web.RespondBadRequest(w, err, message.InvalidInput, nil)
		return
	}

	updated, err := h.svc.Update(r.Context(), chain.Param(r, paramID), params)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	web.OK(w, http.StatusOK, &updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chain.Param(r, paramID)); err != nil {
		respondStorageError(w, err)
		return
	}

	web.NoContent(w, http.StatusOK)
}

func respondStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		web.RespondNotFound(w, err, message.ItemNotFound)
	case errx.IsContextError(err):
		web.RespondRequestTimeout(w, err, message.RequestTimeout)
	default:
		web.RespondInternalServerError(w, err)
	}
}
