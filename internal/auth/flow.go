package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

const flowDonePage = `<!DOCTYPE html>
<html>
<head><title>Authorization complete</title></head>
<body>
<p>Authorization complete. You can close this tab and return to the application.</p>
</body>
</html>
`

// authResult is what the redirect handler reports back to the flow.
type authResult struct {
	code string
	err  error
}

// authorize runs the loopback browser flow: listen on loopback, send the
// user's browser to the consent page, wait for the redirect carrying the
// authorization code, exchange it for a token. The listener is torn down
// on every exit path.
func (a *Authorizer) authorize(ctx context.Context) (*oauth2.Token, error) {
	listener, err := net.Listen("tcp4", a.config.ListenAddr)
	if err != nil {
		return nil, fmt.Errorf("creating listener: %w", err)
	}

	state, err := generateState()
	if err != nil {
		listener.Close()
		return nil, fmt.Errorf("generating state: %w", err)
	}

	// The redirect URL is only known once the listener has its port.
	conf := *a.config.OAuth
	conf.RedirectURL = "http://" + listener.Addr().String()

	results := make(chan authResult, 1)
	var once sync.Once
	report := func(res authResult) {
		once.Do(func() { results <- res })
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			// e.g. /favicon.ico
			http.NotFound(w, r)
			return
		}

		query := r.URL.Query()
		if errParam := query.Get("error"); errParam != "" {
			http.Error(w, "authorization denied", http.StatusUnauthorized)
			report(authResult{err: fmt.Errorf("%w: %s", ErrAuthorizationFailed, errParam)})
			return
		}
		if query.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusUnauthorized)
			report(authResult{err: fmt.Errorf("%w: state mismatch", ErrAuthorizationFailed)})
			return
		}
		code := query.Get("code")
		if code == "" {
			http.Error(w, "missing authorization code", http.StatusBadRequest)
			report(authResult{err: fmt.Errorf("%w: missing authorization code", ErrAuthorizationFailed)})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, flowDonePage)
		report(authResult{code: code})
	})

	server := &http.Server{Handler: mux}
	go server.Serve(listener)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	authURL := conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
	a.logger.Info("opening browser for authorization",
		slog.String("redirect_url", conf.RedirectURL),
	)
	if err := a.config.OpenBrowser(authURL); err != nil {
		return nil, fmt.Errorf("opening browser: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(a.config.FlowTimeout):
		return nil, ErrFlowTimeout
	case res := <-results:
		if res.err != nil {
			return nil, res.err
		}
		token, err := conf.Exchange(ctx, res.code)
		if err != nil {
			return nil, fmt.Errorf("%w: exchanging code: %v", ErrAuthorizationFailed, err)
		}
		return token, nil
	}
}
