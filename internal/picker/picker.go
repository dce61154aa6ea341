// Package picker runs a local browser-based flow for the user to select
// one presentation. It serves a single page embedding the Google Picker
// widget on a loopback listener and waits for the callback carrying the
// chosen file ID.
package picker

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pkg/browser"
)

// ErrPickerCancelled is returned when the user closed the picker without
// selecting a presentation.
var ErrPickerCancelled = errors.New("presentation authorisation failed")

// ErrPickerTimeout is returned when no selection arrived within Timeout.
var ErrPickerTimeout = errors.New("picker timed out waiting for selection")

// cancelSentinel is what the picker page sends when the user dismissed
// the dialog.
const cancelSentinel = "cancelled"

const defaultTimeout = 5 * time.Minute

// Config holds Picker configuration. ClientID, APIKey and AppID come from
// the Google Cloud console project that enables the Picker API.
type Config struct {
	ClientID string
	APIKey   string
	AppID    string
	// Port is the loopback port to listen on. 0 picks a free port.
	Port int
	// Timeout bounds the wait for a selection.
	Timeout time.Duration
	Logger  *slog.Logger
	// OpenBrowser opens the user's browser on a URL. Default pkg/browser.
	OpenBrowser func(url string) error
}

// Picker serves the selection page and collects the chosen presentation ID.
type Picker struct {
	config Config
	logger *slog.Logger
}

// New creates a Picker.
func New(config Config) (*Picker, error) {
	if config.ClientID == "" {
		return nil, errors.New("picker client ID is required")
	}
	if config.APIKey == "" {
		return nil, errors.New("picker API key is required")
	}
	if config.Timeout <= 0 {
		config.Timeout = defaultTimeout
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.OpenBrowser == nil {
		config.OpenBrowser = browser.OpenURL
	}
	return &Picker{config: config, logger: config.Logger}, nil
}

// pageData is interpolated into the picker page template.
type pageData struct {
	ClientID    string
	APIKey      string
	AppID       string
	CallbackURL string
}

// Run serves the picker page, opens the browser and waits for the user's
// selection. It returns the chosen presentation ID. The listener is torn
// down on every exit path.
func (p *Picker) Run(ctx context.Context) (string, error) {
	listener, err := net.Listen("tcp4", fmt.Sprintf("127.0.0.1:%d", p.config.Port))
	if err != nil {
		return "", fmt.Errorf("creating listener: %w", err)
	}

	baseURL := "http://" + listener.Addr().String()

	results := make(chan string, 1)
	var once sync.Once
	report := func(id string) {
		once.Do(func() { results <- id })
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := pickerPage.Execute(w, pageData{
			ClientID:    p.config.ClientID,
			APIKey:      p.config.APIKey,
			AppID:       p.config.AppID,
			CallbackURL: baseURL + "/callback",
		})
		if err != nil {
			p.logger.Error("failed to render picker page", slog.Any("error", err))
		}
	})
	mux.HandleFunc("/callback", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("slides")
		if id == "" {
			http.Error(w, "missing slides parameter", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, pickerDonePage)
		report(id)
	})

	server := &http.Server{Handler: mux}
	go server.Serve(listener)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	p.logger.Info("opening browser for presentation selection",
		slog.String("url", baseURL),
	)
	if err := p.config.OpenBrowser(baseURL); err != nil {
		return "", fmt.Errorf("opening browser: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(p.config.Timeout):
		return "", ErrPickerTimeout
	case id := <-results:
		if id == cancelSentinel {
			return "", ErrPickerCancelled
		}
		p.logger.Info("presentation selected", slog.String("presentation_id", id))
		return id, nil
	}
}

// pickerPage embeds the Google Picker widget. On selection it sends the
// chosen file ID back to the local callback route; on dismissal it sends
// the cancel sentinel.
var pickerPage = template.Must(template.New("picker").Parse(`<!DOCTYPE html>
<html>
<head>
<title>Select a presentation</title>
<script src="https://apis.google.com/js/api.js"></script>
<script src="https://accounts.google.com/gsi/client"></script>
<script>
const CLIENT_ID = {{.ClientID}};
const API_KEY = {{.APIKey}};
const APP_ID = {{.AppID}};
const CALLBACK_URL = {{.CallbackURL}};

let accessToken = null;

function onApiLoad() {
	gapi.load('picker', () => {});
}

function start() {
	const tokenClient = google.accounts.oauth2.initTokenClient({
		client_id: CLIENT_ID,
		scope: 'https://www.googleapis.com/auth/drive.readonly',
		callback: (response) => {
			accessToken = response.access_token;
			createPicker();
		},
	});
	tokenClient.requestAccessToken();
}

function createPicker() {
	const view = new google.picker.DocsView(google.picker.ViewId.PRESENTATIONS);
	const picker = new google.picker.PickerBuilder()
		.setAppId(APP_ID)
		.setDeveloperKey(API_KEY)
		.setOAuthToken(accessToken)
		.addView(view)
		.setCallback(pickerCallback)
		.build();
	picker.setVisible(true);
}

function pickerCallback(data) {
	if (data.action === google.picker.Action.PICKED) {
		const id = data.docs[0].id;
		fetch(CALLBACK_URL + '?slides=' + encodeURIComponent(id));
		document.getElementById('status').textContent =
			'Selection sent. You can close this tab.';
	} else if (data.action === google.picker.Action.CANCEL) {
		fetch(CALLBACK_URL + '?slides=cancelled');
		document.getElementById('status').textContent =
			'Selection cancelled. You can close this tab.';
	}
}
</script>
</head>
<body onload="onApiLoad()">
<h1>Select a presentation</h1>
<p id="status"><button onclick="start()">Open picker</button></p>
</body>
</html>
`))

const pickerDonePage = `<!DOCTYPE html>
<html>
<head><title>Selection received</title></head>
<body>
<p>Selection received. You can close this tab and return to the application.</p>
</body>
</html>
`
