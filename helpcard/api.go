package helpcard

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/alovak/helpcard/cardview"
	"github.com/alovak/helpcard/helpcard/models"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// API is a HTTP API that renders posted card data
type API struct {
	renderer *cardview.Renderer
	logger   *slog.Logger
}

func NewAPI(renderer *cardview.Renderer, logger *slog.Logger) *API {
	return &API{
		renderer: renderer,
		logger:   logger,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/cards", func(r chi.Router) {
		r.Post("/render", a.renderCard)
		r.Post("/view", a.viewCard)
	})
}

// renderCard responds with the card as an HTML page, or only the card
// fragment when ?fragment=true.
func (a *API) renderCard(w http.ResponseWriter, r *http.Request) {
	card, err := models.DecodeCard(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	render := a.renderer.RenderPage
	if fragment, _ := strconv.ParseBool(r.URL.Query().Get("fragment")); fragment {
		render = a.renderer.Render
	}

	// buffer so a failed render never leaves a half-written 200
	var buf bytes.Buffer
	if err := render(&buf, card); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	a.write(w, r, "text/html; charset=utf-8", buf.Bytes())
}

func (a *API) viewCard(w http.ResponseWriter, r *http.Request) {
	card, err := models.DecodeCard(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	body, err := json.Marshal(a.renderer.View(card))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	a.write(w, r, "application/json", body)
}

func (a *API) write(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		a.logger.Warn("writing response", slog.String("path", r.URL.Path), slog.Any("err", err))
	}
}
