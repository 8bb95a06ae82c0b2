package resume

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Load reads a resume model from a JSON file path or an http(s) URL.
func Load(input string) (r *Resume, err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	r, err = LoadWithContext(ctx, input)
	return r, err
}

// LoadWithContext reads a resume model with context.
func LoadWithContext(ctx context.Context, input string) (r *Resume, err error) {
	var data []byte

	parsedURL, urlErr := url.Parse(input)
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		data, err = fetchFromURL(ctx, input)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch resume from URL: %s", input)
			return r, err
		}
	} else {
		data, err = os.ReadFile(input)
		if err != nil {
			err = errors.Wrapf(err, "failed to read resume file: %s", input)
			return r, err
		}
	}

	r, err = Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "failed to load resume: %s", input)
		return r, err
	}

	return r, err
}

// Parse decodes a resume model from JSON bytes.
func Parse(data []byte) (r *Resume, err error) {
	if len(data) == 0 {
		err = errors.New("resume data is empty")
		return r, err
	}

	r = &Resume{}
	err = json.Unmarshal(data, r)
	if err != nil {
		r = nil
		err = errors.Wrap(err, "failed to parse resume JSON")
		return r, err
	}

	return r, err
}

// fetchFromURL retrieves resume JSON from a URL.
func fetchFromURL(ctx context.Context, urlStr string) (data []byte, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, err
	}

	req.Header.Set("User-Agent", "resumeforge/1.0")
	req.Header.Set("Accept", "application/json")

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return data, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return data, err
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, err
	}

	return data, err
}
