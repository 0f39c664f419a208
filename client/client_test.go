package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/TheRockettek/Sandwich-Users/discord"
	"github.com/TheRockettek/Sandwich-Users/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const testUserID = snowflake.ID(80351110224678912)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithRateLimit(rate.Inf, 1),
	}, opts...)

	c, err := NewClient("token", opts...)
	require.NoError(t, err)
	return c
}

func TestNewClientPrefixesToken(t *testing.T) {
	c, err := NewClient("abc")
	require.NoError(t, err)
	assert.Equal(t, "Bot abc", c.Token)
	assert.Equal(t, EndpointAPI, c.BaseURL)

	c, err = NewClient("Bot abc")
	require.NoError(t, err)
	assert.Equal(t, "Bot abc", c.Token)

	_, err = NewClient("")
	assert.ErrorIs(t, err, ErrNoTokenProvided)
}

func TestFetchUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/users/80351110224678912", r.URL.Path)
		assert.Equal(t, "Bot token", r.Header.Get("Authorization"))
		assert.Contains(t, r.Header.Get("User-Agent"), "DiscordBot")

		w.Write([]byte(`{"id":"80351110224678912","username":"Nelly","discriminator":"1337","avatar":null,"accent_color":null}`))
	})

	p, err := c.FetchUser(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, testUserID, p.ID)
	assert.Equal(t, "Nelly", p.Username.Or(""))
	assert.True(t, p.Avatar.IsNull())
	assert.False(t, p.Banner.Specified())

	u, err := discord.FromPayload(p, nil)
	require.NoError(t, err)
	assert.Equal(t, "Nelly#1337", u.String())
}

func TestCreateDMChannel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/@me/channels", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "80351110224678912", body["recipient_id"])

		w.Write([]byte(`{"id":"319674150115610528","type":1,"last_message_id":null,"recipients":[{"id":"80351110224678912"}]}`))
	})

	ch, err := c.CreateDMChannel(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, snowflake.ID(319674150115610528), ch.ID)
	assert.Nil(t, ch.LastMessageID)
	require.Len(t, ch.Recipients, 1)
	assert.Equal(t, testUserID, ch.Recipients[0].ID)
}

func TestStatusErrors(t *testing.T) {
	tests := []struct {
		status int
		body   string
		err    error
	}{
		{http.StatusUnauthorized, `{"message":"401: Unauthorized","code":0}`, ErrUnauthorized},
		{http.StatusForbidden, `{"message":"Missing Access","code":50001}`, ErrForbidden},
		{http.StatusNotFound, `{"message":"Unknown User","code":10013}`, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			p, err := c.FetchUser(context.Background(), testUserID)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.err)

			var restErr *RestError
			require.ErrorAs(t, err, &restErr)
			assert.Equal(t, tt.status, restErr.StatusCode)
			assert.NotEmpty(t, restErr.Message)
		})
	}
}

func TestRefreshSurfacesClientErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	u := discord.NewUser(testUserID)
	err := u.Refresh(context.Background(), c)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrRateLimited)
}

func TestRatelimitIsRetried(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"message":"You are being rate limited.","retry_after":0.01,"global":false}`))
			return
		}
		w.Write([]byte(`{"id":"80351110224678912","username":"Nelly"}`))
	})

	p, err := c.FetchUser(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, "Nelly", p.Username.Or(""))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestRatelimitExhausted(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Retry-After", "0.001")
		w.WriteHeader(http.StatusTooManyRequests)
	}, WithMaxRestRetries(2))

	_, err := c.FetchUser(context.Background(), testUserID)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRatelimitWaitHonorsContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"retry_after":60}`))
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.FetchUser(ctx, testUserID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestRetryAfterDuration(t *testing.T) {
	header := http.Header{}
	header.Set("Retry-After", "2")

	assert.Equal(t, 1500*time.Millisecond, retryAfterDuration(events.TooManyRequests{RetryAfter: 1.5}, header))
	assert.Equal(t, 2*time.Second, retryAfterDuration(events.TooManyRequests{}, header))
	assert.Equal(t, time.Second, retryAfterDuration(events.TooManyRequests{}, http.Header{}))
}
