// Package omdb is the client for the external movie-metadata API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
)

var (
	// ErrUnreachable means the provider could not be reached after the
	// retry budget was spent.
	ErrUnreachable = errors.New("metadata provider unreachable")

	// ErrMalformed means the provider answered with something other than
	// the expected JSON shape.
	ErrMalformed = errors.New("malformed metadata response")

	// ErrNotFound means the provider answered but knows no such movie.
	ErrNotFound = errors.New("movie not found")
)

const maxRetries = 2

// Result carries the fields the provider may report for a title. Pointer
// fields distinguish "key absent" from "key present but empty".
type Result struct {
	Response *string `json:"Response"`
	Title    *string `json:"Title"`
	Year     *string `json:"Year"`
	Director *string `json:"Director"`
	Poster   *string `json:"Poster"`
}

type Client struct {
	baseURL string
	apiKey  string
	userKey string
	client  *http.Client
}

func NewClient(baseURL, apiKey, userKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		userKey: userKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Lookup fetches metadata for an exact movie title with full plot detail.
// Transport faults are retried with exponential backoff before ErrUnreachable
// is reported; domain outcomes (ErrNotFound, ErrMalformed) are never retried,
// so each call amounts to one logical lookup.
func (c *Client) Lookup(ctx context.Context, title string) (*Result, error) {
	query := url.Values{}
	query.Set("apikey", c.apiKey)
	if c.userKey != "" {
		query.Set("i", c.userKey)
	}
	query.Set("type", "movie")
	query.Set("plot", "full")
	query.Set("t", title)

	requestURL := c.baseURL + "?" + query.Encode()

	var result *Result

	operation := func() error {
		res, err := c.fetch(ctx, requestURL)

		if err != nil {
			return err
		}

		result = res
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries),
		ctx,
	)

	if err := backoff.Retry(operation, policy); err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrMalformed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	return result, nil
}

func (c *Client) fetch(ctx context.Context, requestURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)

	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: %v", ErrMalformed, err))
	}

	resp, err := c.client.Do(req)

	if err != nil {
		// Transport fault, worth retrying.
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(fmt.Errorf("%w: unexpected status %s", ErrMalformed, resp.Status))
	}

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	var result Result

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: %v", ErrMalformed, err))
	}

	if result.Response == nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: missing Response field", ErrMalformed))
	}

	if *result.Response != "True" {
		return nil, backoff.Permanent(ErrNotFound)
	}

	return &result, nil
}
