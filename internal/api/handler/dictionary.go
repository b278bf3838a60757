package handler

import (
	"net/http"

	"github.com/wordcrumble/wordcrumble-go/internal/api/response"
	"github.com/wordcrumble/wordcrumble-go/internal/model"
	"github.com/wordcrumble/wordcrumble-go/internal/services/dictionary"
)

// DictionaryHandler handles dictionary endpoints
type DictionaryHandler struct {
	dict dictionary.ServiceInterface
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(dict dictionary.ServiceInterface) *DictionaryHandler {
	return &DictionaryHandler{dict: dict}
}

// Get handles GET /api/v1/dictionary
func (h *DictionaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.dict.IsLoaded() {
		WriteError(w, model.ErrDictionaryNotLoaded)
		return
	}

	response.JSON(w, http.StatusOK, response.Dictionary{
		Version: h.dict.Version(),
		Words:   h.dict.Words(),
	})
}

// Version handles GET /api/v1/dictionary/version
func (h *DictionaryHandler) Version(w http.ResponseWriter, r *http.Request) {
	if !h.dict.IsLoaded() {
		WriteError(w, model.ErrDictionaryNotLoaded)
		return
	}

	response.JSON(w, http.StatusOK, response.DictionaryVersion{Version: h.dict.Version()})
}
