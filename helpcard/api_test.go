package helpcard_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alovak/helpcard/cardview"
	"github.com/alovak/helpcard/helpcard"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

const rinaCard = `{
	"cardId": "AS2024001234",
	"issueDate": "2024-03-07",
	"expiryDate": "2025-03-07",
	"headName": "Amit Das",
	"phone": "+91 90000 00000",
	"address": "Chakdulalpur, West Bengal",
	"planName": "Family",
	"members": [{"firstName": "Rina", "lastName": "Das", "relation": "Spouse", "dob": "1990-01-01"}]
}`

func newRouter(t *testing.T, logs *bytes.Buffer) chi.Router {
	t.Helper()
	if logs == nil {
		logs = &bytes.Buffer{}
	}
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	router := chi.NewRouter()
	helpcard.NewAPI(cardview.New(cardview.DefaultBranding()), logger).AppendRoutes(router)
	return router
}

func TestAPI(t *testing.T) {
	router := newRouter(t, nil)

	t.Run("render page", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/cards/render", bytes.NewBufferString(rinaCard))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

		body := w.Body.String()
		require.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
		require.Contains(t, body, "AS20 2400 1234")
		require.Contains(t, body, "07/03/2025")
		require.Contains(t, body, "Rina Das")
		require.Contains(t, body, "Spouse")
	})

	t.Run("render fragment", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/cards/render?fragment=true", bytes.NewBufferString(rinaCard))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotContains(t, w.Body.String(), "<!DOCTYPE html>")
		require.Contains(t, w.Body.String(), `class="helpcard"`)
	})

	t.Run("view", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/cards/view", bytes.NewBufferString(rinaCard))
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "application/json", w.Header().Get("Content-Type"))

		view := cardview.CardView{}
		err := json.Unmarshal(w.Body.Bytes(), &view)
		require.NoError(t, err)

		require.Equal(t, "AS20 2400 1234", view.CardID)
		require.Equal(t, "07/03/2025", view.Expiry)
		require.Equal(t, []cardview.MemberView{{Name: "Rina Das", Relation: "Spouse"}}, view.Members)
		require.Equal(t, "support@healthbridge.org", view.Branding.SupportEmail)
	})
}

func TestAPI_EmptyMembers(t *testing.T) {
	router := newRouter(t, nil)

	body := bytes.NewBufferString(`{"cardId":"X1","expiryDate":"2025-03-07","members":[]}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/cards/view", body))
	require.Equal(t, http.StatusOK, w.Code)

	var view cardview.CardView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	require.Empty(t, view.Members)
	require.Equal(t, "X1", view.CardID)
}

func TestAPI_BadRequest(t *testing.T) {
	router := newRouter(t, nil)

	for _, body := range []string{`not json`, `{"expiryDate":"someday"}`} {
		for _, path := range []string{"/cards/render", "/cards/view"} {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body)))
			require.Equal(t, http.StatusBadRequest, w.Code, "%s %s", path, body)
		}
	}
}

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (b brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestAPI_LogsWriteErrors(t *testing.T) {
	var logs bytes.Buffer
	router := newRouter(t, &logs)

	for _, path := range []string{"/cards/render", "/cards/view"} {
		logs.Reset()
		w := brokenWriter{httptest.NewRecorder()}
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(rinaCard)))

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, logs.String(), `"msg":"writing response"`)
		require.Contains(t, logs.String(), "connection reset")
		require.Contains(t, logs.String(), path)
	}
}
