package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"
)

const posterProbeConcurrency = 6

// PosterStatus is the outcome of probing one poster URL.
type PosterStatus struct {
	URL string
	Err error
}

func (s PosterStatus) OK() bool {
	return s.Err == nil
}

// ProbePoster checks that url serves an image. A HEAD is tried first and
// servers that refuse it get a GET whose body is discarded.
func (c *Client) ProbePoster(ctx context.Context, url string) error {
	if strings.TrimSpace(url) == "" {
		return errors.New("poster url is empty")
	}
	res, err := c.probe(ctx, http.MethodHead, url)
	if err == nil && res.StatusCode == http.StatusMethodNotAllowed {
		_ = res.Body.Close()
		res, err = c.probe(ctx, http.MethodGet, url)
	}
	if err != nil {
		return fmt.Errorf("probe poster: %w", err)
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4<<10))

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &APIError{StatusCode: res.StatusCode, Status: res.Status, Endpoint: url}
	}
	if contentType := res.Header.Get("Content-Type"); contentType != "" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || !strings.HasPrefix(mediaType, "image/") {
			return fmt.Errorf("poster is not an image: %s", contentType)
		}
	}
	return nil
}

func (c *Client) probe(ctx context.Context, method string, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "image/*")
	return c.httpClient.Do(req)
}

// ProbePosters probes every url with bounded concurrency. Results come back
// in input order; duplicates are probed once.
func (c *Client) ProbePosters(ctx context.Context, urls []string) []PosterStatus {
	unique := make([]string, 0, len(urls))
	seen := map[string]bool{}
	for _, u := range urls {
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		unique = append(unique, u)
	}

	results := make([]PosterStatus, len(unique))
	sem := make(chan struct{}, posterProbeConcurrency)
	var wg sync.WaitGroup

	for i, u := range unique {
		wg.Add(1)
		go func(i int, u string) {
			defer wg.Done()
			sem <- struct{}{}
			err := c.ProbePoster(ctx, u)
			<-sem
			if err != nil {
				c.logger.Debug("poster probe failed", "url", u, "error", err)
			}
			results[i] = PosterStatus{URL: u, Err: err}
		}(i, u)
	}

	wg.Wait()
	return results
}
