package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/hanzicards/hanzicards-backend/internal/handlers"
	"github.com/hanzicards/hanzicards-backend/internal/history"
	"github.com/hanzicards/hanzicards-backend/internal/live"
	"github.com/hanzicards/hanzicards-backend/internal/routes"
	"github.com/hanzicards/hanzicards-backend/internal/session"
	"github.com/hanzicards/hanzicards-backend/internal/store"
)

// newTestServer wires the handlers to in-memory implementations of every
// collaborator and serves them over httptest.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := handlers.New(
		store.NewMemoryUserStore(),
		store.NewMemoryFlashcardStore(),
		session.NewMemoryStore(),
		history.NewMemoryRecorder(),
		live.NewMemoryBroadcaster(),
	)
	r := chi.NewRouter()
	routes.SetupRoutes(r, h)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// newClient returns an HTTP client with a cookie jar, behaving like one
// browser session.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

// doJSON sends a JSON request and decodes the JSON response body into a
// generic map. A nil body sends an empty request body.
func doJSON(t *testing.T, client *http.Client, method, url string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		decoded = nil
	}
	return resp.StatusCode, decoded
}

// register creates and logs in a user on the given client.
func register(t *testing.T, client *http.Client, baseURL, name, password string) {
	t.Helper()
	status, body := doJSON(t, client, http.MethodPost, baseURL+"/api/register",
		map[string]string{"name": name, "password": password})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, true, body["success"])
}

// addCard creates a flashcard and returns the decoded response body.
func addCard(t *testing.T, client *http.Client, baseURL string, card map[string]string) map[string]interface{} {
	t.Helper()
	status, body := doJSON(t, client, http.MethodPost, baseURL+"/api/flashcards", card)
	require.Equal(t, http.StatusOK, status)
	return body
}

// listCards fetches the client's flashcards.
func listCards(t *testing.T, client *http.Client, baseURL string) []map[string]interface{} {
	t.Helper()
	resp, err := client.Get(baseURL + "/api/flashcards")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cards []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cards))
	return cards
}

func cardURL(baseURL string, body map[string]interface{}) string {
	return fmt.Sprintf("%s/api/flashcards/%.0f", baseURL, body["id"].(float64))
}
