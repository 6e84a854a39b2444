package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikhailRaia/link-share/internal/config"
	"github.com/MikhailRaia/link-share/internal/model"
	"github.com/MikhailRaia/link-share/internal/widget"
)

func TestApp_Integration(t *testing.T) {
	bitly := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://example.com/article/42", r.URL.Query().Get("longUrl"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status_code":200,"status_txt":"OK","data":{"url":"https://bit.ly/abc123"}}`))
	}))
	defer bitly.Close()

	cfg := &config.Config{
		PageURL:           "https://example.com/article/42",
		ShortenerEndpoint: bitly.URL,
		Username:          "icekit",
		APIKey:            "R_secret",
		Buttons:           2,
		Clipboard:         config.ClipboardNone,
	}

	app := NewApp(cfg)
	app.Prepare(context.Background())

	server := httptest.NewServer(app.handler)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/share/buttons")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var buttons []model.ButtonState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&buttons))
	require.Len(t, buttons, 2)

	for _, b := range buttons {
		assert.Equal(t, "bit.ly/abc123", b.Display)
		assert.Equal(t, "https://bit.ly/abc123", b.FullURL)
		assert.True(t, b.Generated)
	}

	// No clipboard on the server: clicking shows the manual copy hint.
	resp, err = http.Post(server.URL+"/api/share/buttons/"+buttons[0].ID+"/click", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var clicked model.ButtonState
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&clicked))
	assert.Equal(t, "https://bit.ly/abc123", clicked.Display)
	assert.Equal(t, widget.CopyHint, clicked.Title)
	assert.True(t, clicked.HintVisible)
	assert.False(t, clicked.Active)
}

func TestApp_PrepareUnreachableService(t *testing.T) {
	bitly := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := bitly.URL
	bitly.Close()

	cfg := &config.Config{
		PageURL:           "https://example.com/article/42",
		ShortenerEndpoint: endpoint,
		Username:          "icekit",
		APIKey:            "R_secret",
		Buttons:           1,
		Clipboard:         config.ClipboardNone,
	}

	app := NewApp(cfg)
	app.Prepare(context.Background())

	assert.False(t, app.widget.Generated())
	states := app.widget.Buttons()
	require.Len(t, states, 1)
	assert.Equal(t, "https://example.com/article/42", states[0].Display)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	cfg := &config.Config{
		ServerAddress: "127.0.0.1:0",
		PageURL:       "https://example.com/article/42",
		Buttons:       1,
		Clipboard:     config.ClipboardNone,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, NewApp(cfg).Run(ctx))
}
