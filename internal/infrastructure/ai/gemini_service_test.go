package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentoplus/talento-api/internal/infrastructure/ai"
)

// newTestService levanta un servidor HTTP de prueba y apunta el adaptador a él.
func newTestService(t *testing.T, handler http.HandlerFunc) (*ai.GeminiService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	svc := ai.NewGeminiServiceWithBaseURL("test-key", "gemini-pro", server.URL+"/models/%s:generateContent?key=%s")
	return svc, server
}

func TestComplete_DevuelveTextoDelPrimerCandidato(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.String(), "gemini-pro")
		assert.Contains(t, r.URL.String(), "key=test-key")

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "contents")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "SELECT COUNT(*) FROM employees"}}}},
			},
		})
	})

	out, err := svc.Complete(context.Background(), "how many employees?")
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM employees", out)
}

// El texto se devuelve crudo: los fences de markdown NO se limpian aquí.
func TestComplete_NoLimpiaFences(t *testing.T) {
	fenced := "```sql\nSELECT 1\n```"
	svc, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": fenced}}}},
			},
		})
	})

	out, err := svc.Complete(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, fenced, out)
}

func TestComplete_HTTPNo200_RetornaError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 429, "message": "quota exceeded"},
		})
	})

	_, err := svc.Complete(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestComplete_SinCandidatos_RetornaError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	_, err := svc.Complete(context.Background(), "q")
	assert.Error(t, err)
}

func TestComplete_SinAPIKey_RetornaError(t *testing.T) {
	svc := ai.NewGeminiService("", "gemini-pro")
	_, err := svc.Complete(context.Background(), "q")
	assert.Error(t, err)
}

func TestComplete_ContextoCancelado_RetornaError(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Complete(ctx, "q")
	assert.Error(t, err)
}
