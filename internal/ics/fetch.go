package ics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	appLog "widgetgen/internal/log"
)

// maxBodyBytes caps a sample calendar payload.
const maxBodyBytes = 8 << 20

// Source is the sample calendar feeding the layout preview.
type Source struct {
	// ID is an internal identifier used for logging.
	ID string
	// Location is a local file path or an http(s) URL.
	Location string
}

// IsRemote reports whether the source is fetched over HTTP.
func (s Source) IsRemote() bool {
	return strings.HasPrefix(s.Location, "http://") || strings.HasPrefix(s.Location, "https://")
}

// Loader reads ICS payloads from disk or over HTTP.
type Loader struct {
	client *http.Client
}

// NewLoader creates a Loader with a 15s HTTP timeout.
func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Load returns the raw ICS body of src.
func (l *Loader) Load(ctx context.Context, src Source) ([]byte, error) {
	if src.Location == "" {
		return nil, errors.New("ics: source location is empty")
	}
	if !src.IsRemote() {
		body, err := os.ReadFile(src.Location)
		if err != nil {
			return nil, fmt.Errorf("ics: read %s: %w", src.Location, err)
		}
		appLog.Debug("ics loaded from file", "id", src.ID, "path", src.Location, "bytes", len(body))
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.Location, nil)
	if err != nil {
		return nil, err
	}

	appLog.Info("ics fetch start", "id", src.ID, "url", redactURL(src.Location))

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ics: fetch %s: %w", redactURL(src.Location), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ics: fetch %s: %s", redactURL(src.Location), resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("ics: read body: %w", err)
	}

	appLog.Info("ics fetch success", "id", src.ID, "url", redactURL(src.Location), "bytes", len(body))
	return body, nil
}

// redactURL hides sensitive parts of an ICS URL for logging purposes.
//
//	https://example.com/path/to/private.ics?token=abcd
//	-> https://example.com/...(redacted)
func redactURL(u string) string {
	const redactedSuffix = "/...(redacted)"

	i := strings.Index(u, "://")
	if i == -1 {
		return "ics://...(redacted)"
	}
	rest := u[i+3:]
	if j := strings.IndexByte(rest, '/'); j != -1 {
		rest = rest[:j]
	}
	return u[:i+3] + rest + redactedSuffix
}
