package web

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestListenForToken(t *testing.T) {
	is := is.New(t)
	ctx := context.TODO()

	s := NewCallbackServer(ctx, "localhost:0")
	// Pick a free port ourselves so the redirect URL is dialable.
	s.addr = "127.0.0.1:23918"

	type result struct {
		token string
		err   error
	}
	done := make(chan result, 1)
	go func() {
		token, err := s.ListenForToken(ctx, 5*time.Second)
		done <- result{token, err}
	}()

	var res *http.Response
	var err error
	for i := 0; i < 50; i++ {
		res, err = http.Get(s.RedirectURL() + "?token=tok123")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	is.NoErr(err)
	body, _ := io.ReadAll(res.Body)
	res.Body.Close() // nolint: errcheck
	is.Equal(res.StatusCode, http.StatusOK)
	is.True(len(body) > 0)

	r := <-done
	is.NoErr(r.err)
	is.Equal(r.token, "tok123")
}

func TestListenForTokenTimeout(t *testing.T) {
	is := is.New(t)

	s := NewCallbackServer(context.TODO(), "127.0.0.1:23919")
	_, err := s.ListenForToken(context.TODO(), 50*time.Millisecond)
	is.Equal(err, ErrNoToken)
}
