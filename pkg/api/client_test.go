package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/esportlab/elab/pkg/config"
	"github.com/esportlab/elab/pkg/proto"
	"github.com/matryer/is"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = srv.URL
	cfg.API.MaxRetries = 2
	return NewClient(cfg, TokenSourceFunc(func() (string, error) {
		return "test-token", nil
	}), nil)
}

func TestRequestHeaders(t *testing.T) {
	is := is.New(t)

	var got http.Header
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{}`)) // nolint: errcheck
	}))

	_, err := c.Me(context.TODO())
	is.NoErr(err)
	is.Equal(got.Get("Authorization"), "Bearer test-token")
	is.Equal(got.Get("Accept"), "application/json")
	is.True(got.Get("X-Request-ID") != "")
}

func TestProblemDecode(t *testing.T) {
	is := is.New(t)

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"title":"Conflict","detail":"user already has a team","status":409}`)) // nolint: errcheck
	}))

	_, err := c.CreateTeam(context.TODO(), proto.CreateTeamOptions{Name: "x"})
	is.True(err != nil)
	is.Equal(err.Error(), "user already has a team")

	var apiErr *Error
	is.True(errors.As(err, &apiErr))
	is.Equal(apiErr.StatusCode, http.StatusConflict)
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	is := is.New(t)

	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.Me(context.TODO())
	is.True(errors.Is(err, proto.ErrUnauthorized))
	// Auth failures are terminal, never retried.
	is.Equal(calls.Load(), int32(1))
}

func TestReadRetriesServerErrors(t *testing.T) {
	is := is.New(t)

	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"teamId":3,"members":[]}`)) // nolint: errcheck
	}))

	o, err := c.Overview(context.TODO(), 3, time.Now(), time.Now())
	is.NoErr(err)
	is.Equal(o.TeamID, int64(3))
	is.Equal(calls.Load(), int32(3))
}

func TestWriteNeverRetries(t *testing.T) {
	is := is.New(t)

	var calls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))

	_, err := c.CreateSlot(context.TODO(), proto.UpsertSlotOptions{})
	is.True(err != nil)
	is.Equal(calls.Load(), int32(1))
}

func TestNotFoundSentinels(t *testing.T) {
	is := is.New(t)

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.Team(context.TODO(), 42)
	is.True(errors.Is(err, proto.ErrTeamNotFound))

	err = c.DeleteSlot(context.TODO(), 7)
	is.True(errors.Is(err, proto.ErrSlotNotFound))

	_, err = c.Join(context.TODO(), "nope")
	is.True(errors.Is(err, proto.ErrInviteNotFound))
}

func TestOverviewQueryRange(t *testing.T) {
	is := is.New(t)

	var rawQuery string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"teamId":1,"members":[]}`)) // nolint: errcheck
	}))

	from := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	_, err := c.Overview(context.TODO(), 1, from, to)
	is.NoErr(err)
	is.Equal(rawQuery, "from=2025-06-09T00%3A00%3A00Z&to=2025-06-15T23%3A59%3A59Z")
}
