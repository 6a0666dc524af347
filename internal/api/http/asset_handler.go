package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"library-backend/internal/storage"
)

type AssetHandler struct {
	store storage.Storage
}

func NewAssetHandler(store storage.Storage) *AssetHandler {
	return &AssetHandler{store: store}
}

// Serve streams a stored image by its storage key. Keys are opaque
// uuid-based paths issued by the storage layer on upload.
func (h *AssetHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if key == "" {
		http.NotFound(w, r)
		return
	}

	rc, err := h.store.Open(r.Context(), key)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer rc.Close()

	if ct := mime.TypeByExtension(filepath.Ext(key)); ct != "" {
		w.Header().Set("Content-Type", ct)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}
	w.Header().Set("Cache-Control", "public, max-age=86400")
	io.Copy(w, rc)
}
