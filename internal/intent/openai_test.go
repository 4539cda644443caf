// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIBackendComplete(t *testing.T) {
	var req map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"c1","object":"chat.completion","model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":"{\"title\":\"Dune\"}"},"finish_reason":"stop"}]}`))
	}))
	defer ts.Close()

	o := NewOpenAIBackend("sk-test", ts.URL+"/v1", "", 0, 0, ts.Client())
	reply, err := o.Complete(context.Background(), "find dune")
	require.NoError(t, err)

	assert.Equal(t, `{"title":"Dune"}`, reply)
	assert.Equal(t, "gpt-4o-mini", req["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, req["response_format"])
	msgs, ok := req["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	assert.Equal(t, "find dune", msgs[0].(map[string]any)["content"])
}

func TestOpenAIBackendErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"bad key","type":"invalid_request_error"}}`, "calling OpenAI API"},
		{"no choices", http.StatusOK, `{"id":"c1","object":"chat.completion","choices":[]}`, "empty reply"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			o := NewOpenAIBackend("sk-test", ts.URL+"/v1", "gpt-4o-mini", 0.1, 256, ts.Client())
			_, err := o.Complete(context.Background(), "p")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
