package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewHistoryRecordsUpdates(t *testing.T) {
	srv := newTestServer(t)
	client := newClient(t)
	register(t, client, srv.URL, "alice", "pw")

	created := addCard(t, client, srv.URL, map[string]string{
		"character": "你好", "pinyin": "nǐ hǎo", "meaning": "hello",
	})

	status, _ := doJSON(t, client, http.MethodPut, cardURL(srv.URL, created), map[string]interface{}{
		"level":          1,
		"lastReview":     time.Now(),
		"nextReview":     time.Now().Add(24 * time.Hour),
		"correctCount":   1,
		"incorrectCount": 0,
		"streak":         1,
	})
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, client, http.MethodGet, srv.URL+"/api/history", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["total"])

	events := body["events"].([]interface{})
	require.Len(t, events, 1)
	event := events[0].(map[string]interface{})
	assert.Equal(t, created["id"], event["card_id"])
	assert.Equal(t, float64(1), event["level"])
	assert.Equal(t, float64(1), event["correct_count"])
	assert.NotEmpty(t, event["event_id"])
}

func TestReviewHistoryNewestFirstAndPaginated(t *testing.T) {
	srv := newTestServer(t)
	client := newClient(t)
	register(t, client, srv.URL, "alice", "pw")

	created := addCard(t, client, srv.URL, map[string]string{
		"character": "水", "pinyin": "shuǐ", "meaning": "water",
	})

	for level := 1; level <= 3; level++ {
		status, _ := doJSON(t, client, http.MethodPut, cardURL(srv.URL, created), map[string]interface{}{
			"level":      level,
			"nextReview": time.Now().Add(24 * time.Hour),
		})
		require.Equal(t, http.StatusOK, status)
	}

	status, body := doJSON(t, client, http.MethodGet, srv.URL+"/api/history?limit=2", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(3), body["total"])

	events := body["events"].([]interface{})
	require.Len(t, events, 2)
	assert.Equal(t, float64(3), events[0].(map[string]interface{})["level"])
	assert.Equal(t, float64(2), events[1].(map[string]interface{})["level"])

	status, body = doJSON(t, client, http.MethodGet, srv.URL+"/api/history?limit=2&skip=2", nil)
	require.Equal(t, http.StatusOK, status)
	events = body["events"].([]interface{})
	require.Len(t, events, 1)
	assert.Equal(t, float64(1), events[0].(map[string]interface{})["level"])
}

func TestClearAlsoClearsHistory(t *testing.T) {
	srv := newTestServer(t)
	client := newClient(t)
	register(t, client, srv.URL, "alice", "pw")

	created := addCard(t, client, srv.URL, map[string]string{
		"character": "火", "pinyin": "huǒ", "meaning": "fire",
	})
	status, _ := doJSON(t, client, http.MethodPut, cardURL(srv.URL, created), map[string]interface{}{
		"level": 1, "nextReview": time.Now(),
	})
	require.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, client, http.MethodDelete, srv.URL+"/api/flashcards/clear", nil)
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, client, http.MethodGet, srv.URL+"/api/history", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["total"])
}

func TestReviewHistoryIsPerUser(t *testing.T) {
	srv := newTestServer(t)

	alice := newClient(t)
	register(t, alice, srv.URL, "alice", "pw1")
	bob := newClient(t)
	register(t, bob, srv.URL, "bob", "pw2")

	created := addCard(t, alice, srv.URL, map[string]string{
		"character": "山", "pinyin": "shān", "meaning": "mountain",
	})
	status, _ := doJSON(t, alice, http.MethodPut, cardURL(srv.URL, created), map[string]interface{}{
		"level": 1, "nextReview": time.Now(),
	})
	require.Equal(t, http.StatusOK, status)

	status, body := doJSON(t, bob, http.MethodGet, srv.URL+"/api/history", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["total"])
}
