package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/filiphsps/MiNET-protocol-converter/internal/protocol"
	"github.com/rs/zerolog/log"
)

// DefaultLocation is the upstream MiNET protocol description.
const DefaultLocation = "https://raw.githubusercontent.com/NiclasOlofsson/MiNET/master/src/MiNET/MiNET/Net/MCPE%20Protocol.xml"

// IsRemote reports whether location is fetched over HTTP.
func IsRemote(location string) bool {
	l := strings.ToLower(strings.TrimSpace(location))
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// Load reads and parses the description at location, a URL or a file path.
func Load(ctx context.Context, location string, cfg FetchConfig) ([]protocol.MessageDescriptor, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		location = DefaultLocation
	}
	var (
		data []byte
		err  error
	)
	if IsRemote(location) {
		data, err = Fetch(ctx, location, cfg)
	} else {
		data, err = os.ReadFile(location)
	}
	if err != nil {
		return nil, fmt.Errorf("source load failed (%s): %w", location, err)
	}
	msgs, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("source parse failed (%s): %w", location, err)
	}
	log.Info().Msgf("source.Load ok location=%s messages=%d", location, len(msgs))
	return msgs, nil
}

type statusError struct {
	code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("%s: %d", protocol.ErrFetchStatus, e.code)
}

func (e statusError) Unwrap() error {
	return protocol.ErrFetchStatus
}

func (e statusError) retryable() bool {
	return e.code >= 500 || e.code == http.StatusTooManyRequests
}

// Fetch downloads url, retrying transport failures and server errors with
// backoff. Client errors fail on the first attempt.
func Fetch(ctx context.Context, url string, cfg FetchConfig) ([]byte, error) {
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	client := &http.Client{Timeout: cfg.Timeout}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		data, err := fetchOnce(ctx, client, url)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if se, ok := err.(statusError); ok && !se.retryable() {
			return nil, err
		}
		if attempt == attempts {
			break
		}
		delay := cfg.Backoff.Delay(attempt, rng)
		log.Warn().Msgf("source.Fetch retry attempt=%d delay=%s err=%v", attempt, delay, err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, fmt.Errorf("fetch failed after %d attempts: %w", attempts, lastErr)
}

func fetchOnce(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError{code: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}
