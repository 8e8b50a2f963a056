package notify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestSend(t *testing.T) {
	var path, body, ctype string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		path, body, ctype = r.URL.Path, string(b), r.Header.Get("Content-Type")
		w.Write([]byte(`{"ok":true,"result":{"message_id":7}}`))
	}))
	t.Cleanup(srv.Close)

	tg := &Telegram{Token: "123:abc", ChatID: "-100", APIURL: srv.URL}
	err := tg.Send(context.Background(), Field{"Lichess ID", "alice"}, Field{"Email", "alice@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "/bot123:abc/sendMessage", path)
	assert.Equal(t, "application/json", ctype)
	assert.Equal(t, "-100", gjson.Get(body, "chat_id").String())
	assert.Equal(t, "Lichess ID: alice\nEmail: alice@example.com", gjson.Get(body, "text").String())
}

func TestSend_NotConfigured(t *testing.T) {
	for _, tg := range []*Telegram{nil, {}, {Token: "x"}, {ChatID: "y"}} {
		err := tg.Send(context.Background(), Field{"k", "v"})
		assert.ErrorIs(t, err, ErrNotConfigured)
	}
}

func TestSend_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	t.Cleanup(srv.Close)

	err := (&Telegram{Token: "t", ChatID: "c", APIURL: srv.URL}).SendText(context.Background(), "hi")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
	assert.Equal(t, "Bad Request: chat not found", se.Description)
}

func TestSend_OkFalseWith200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false}`))
	}))
	t.Cleanup(srv.Close)

	err := (&Telegram{Token: "t", ChatID: "c", APIURL: srv.URL}).SendText(context.Background(), "hi")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "OK", se.Description)
}

func TestSend_TransportErrorHidesToken(t *testing.T) {
	tg := &Telegram{Token: "secret-token", ChatID: "c", APIURL: "http://127.0.0.1:1"}
	err := tg.SendText(context.Background(), "hi")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-token")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	tg := FromEnv()
	assert.True(t, tg.Configured())
	assert.Equal(t, "42", tg.ChatID)
}
