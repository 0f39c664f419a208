package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/TheRockettek/Sandwich-Users/client"
	"github.com/TheRockettek/Sandwich-Users/config"
	"github.com/TheRockettek/Sandwich-Users/producer"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type countingPublisher struct {
	count int
}

func (c *countingPublisher) Publish(subject string, data []byte) error {
	c.count++
	return nil
}

func newTestApp(t *testing.T, handler http.HandlerFunc) (*App, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := client.NewClient("token",
		client.WithBaseURL(srv.URL),
		client.WithHTTPClient(srv.Client()),
		client.WithRateLimit(rate.Inf, 1),
	)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &App{Client: c, out: out, log: zerolog.Nop()}, out
}

func TestRunFetch(t *testing.T) {
	a, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/80351110224678912", r.URL.Path)
		w.Write([]byte(`{"id":"80351110224678912","username":"Nelly","discriminator":"1337","avatar":"a_1269e74af4df7417b13759eae50c83dc","banner":null,"accent_color":16711680}`))
	})

	pub := &countingPublisher{}
	a.Producer = producer.New(pub, "sandwich", zerolog.Nop())

	require.NoError(t, a.Run(context.Background(), []string{"fetch", "80351110224678912"}))
	assert.Equal(t, 1, pub.count)

	printed := out.String()
	assert.Contains(t, printed, "Nelly#1337 (80351110224678912)")
	assert.Contains(t, printed, "<@80351110224678912>")
	assert.Contains(t, printed, "a_1269e74af4df7417b13759eae50c83dc.gif?size=1024")
	assert.Contains(t, printed, "#ff0000")
	assert.NotContains(t, printed, "banner:")
}

func TestRunFetchNotFound(t *testing.T) {
	a, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":10013,"message":"Unknown User"}`))
	})

	err := a.Run(context.Background(), []string{"fetch", "80351110224678912"})
	assert.ErrorIs(t, err, client.ErrNotFound)
}

func TestRunDM(t *testing.T) {
	a, out := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/@me/channels", r.URL.Path)
		w.Write([]byte(`{"id":"319674150115610528","type":1}`))
	})

	require.NoError(t, a.Run(context.Background(), []string{"dm", "80351110224678912"}))
	assert.Equal(t, "319674150115610528\n", out.String())
}

func TestRunUsage(t *testing.T) {
	a, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	})
	ctx := context.Background()

	assert.ErrorIs(t, a.Run(ctx, nil), errUsage)
	assert.ErrorIs(t, a.Run(ctx, []string{"fetch"}), errUsage)
	assert.ErrorIs(t, a.Run(ctx, []string{"wave", "1"}), errUsage)
	assert.Error(t, a.Run(ctx, []string{"fetch", "nelly"}))
}

func TestRunWithoutState(t *testing.T) {
	a, _ := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request")
	})
	ctx := context.Background()

	assert.ErrorIs(t, a.Run(ctx, []string{"show", "1"}), ErrNoState)
	assert.ErrorIs(t, a.Run(ctx, []string{"clear"}), ErrNoState)
}

func TestNewAppRequiresToken(t *testing.T) {
	_, err := newApp(context.Background(), config.Default(), zerolog.Nop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, client.ErrNoTokenProvided)
}
