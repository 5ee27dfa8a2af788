// Package web runs the loopback HTTP server that receives the OAuth
// redirect during login. The backend handles the Discord handshake and
// redirects back here with the session token in the query string.
package web

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// ErrNoToken is returned when the redirect arrives without a token.
var ErrNoToken = errors.New("callback did not carry a token")

const successPage = `<!DOCTYPE html>
<html>
<head><title>EsportLab</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4rem;">
<h1>Logged in</h1>
<p>You can close this tab and return to the terminal.</p>
</body>
</html>
`

// CallbackServer listens on the loopback address for the login redirect.
type CallbackServer struct {
	addr   string
	logger *log.Logger
}

// NewCallbackServer returns a new CallbackServer for the given loopback
// address.
func NewCallbackServer(ctx context.Context, addr string) *CallbackServer {
	return &CallbackServer{
		addr:   addr,
		logger: log.FromContext(ctx).WithPrefix("http"),
	}
}

// ListenForToken serves the callback endpoint until a token arrives, the
// context is canceled, or the timeout elapses. It returns the received
// session token.
func (s *CallbackServer) ListenForToken(ctx context.Context, timeout time.Duration) (string, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return "", err
	}

	tokens := make(chan string, 1)

	router := mux.NewRouter()
	router.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "missing token", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(successPage)) // nolint: errcheck

		select {
		case tokens <- token:
		default:
		}
	})

	var h http.Handler = router
	h = handlers.LoggingHandler(loggerWriter{s.logger}, h)
	h = handlers.RecoveryHandler()(h)

	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(sctx) // nolint: errcheck
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case token := <-tokens:
		return token, nil
	case err := <-errc:
		return "", err
	case <-timer.C:
		return "", ErrNoToken
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// RedirectURL returns the URL the backend should redirect to after the
// OAuth handshake.
func (s *CallbackServer) RedirectURL() string {
	return "http://" + s.addr + "/callback"
}

// loggerWriter adapts the logger to the access-log writer interface.
type loggerWriter struct {
	logger *log.Logger
}

func (w loggerWriter) Write(p []byte) (int, error) {
	w.logger.Debug(string(p))
	return len(p), nil
}
