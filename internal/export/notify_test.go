package export

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierSend(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	err := NewNotifier(server.URL).Send(context.Background(), []string{"first", "second"})
	require.NoError(t, err)
	assert.Equal(t, "**Errors:**\r\nfirst\r\nsecond", got["text"])
}

func TestNotifierSkipsEmptyDiagnostics(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request expected")
	}))
	defer server.Close()

	assert.NoError(t, NewNotifier(server.URL).Send(context.Background(), nil))
}

func TestNilNotifierIgnoresSend(t *testing.T) {
	assert.NoError(t, NewNotifier("").Send(context.Background(), []string{"x"}))
}
