// Package contentclient reads services, blogs and events from the content API.
//
// Every list call yields a Result whose Data is never nil: a transport failure, a non-2xx
// status or an undecodable body all look like "zero items" to callers that only read Data,
// while Err keeps the reason for callers that want to tell an outage from an empty list.
package contentclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"gradpath/cmd/internal/httpclient"
)

// Resource names a content collection exposed by the API.
type Resource string

const (
	Services Resource = "services"
	Blogs    Resource = "blogs"
	Events   Resource = "events"
)

func (r Resource) Valid() bool {
	switch r {
	case Services, Blogs, Events:
		return true
	}
	return false
}

// ParseResource maps a path segment to a Resource.
func ParseResource(s string) (Resource, error) {
	r := Resource(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", &FetchError{Kind: KindInvalidResource, Resource: Resource(s)}
	}
	return r, nil
}

// Result is the outcome of a collection fetch. Data is never nil.
type Result[T any] struct {
	Data []T
	Err  error
}

// Failed reports whether the fetch failed, as opposed to returning zero items.
func (r Result[T]) Failed() bool { return r.Err != nil }

// ItemResult is the outcome of a single-item fetch.
// A missing item is Data == nil with Err == nil.
type ItemResult[T any] struct {
	Data *T
	Err  error
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New returns a client for the API rooted at baseURL (e.g. http://localhost:8081/api/v1).
// A nil httpClient gets the logging default client.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = httpclient.NewDefault()
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// BaseURL returns the API root this client reads from.
func (c *Client) BaseURL() string { return c.baseURL }

type envelope[T any] struct {
	Data T `json:"data"`
}

// FetchCollection reads GET {base}/{resource}?{query}. Empty query values are dropped.
func FetchCollection[T any](ctx context.Context, c *Client, resource Resource, query map[string]string) Result[T] {
	empty := []T{}
	if !resource.Valid() {
		return Result[T]{Data: empty, Err: &FetchError{Kind: KindInvalidResource, Resource: resource}}
	}

	q := url.Values{}
	for k, v := range query {
		if v = strings.TrimSpace(v); v != "" {
			q.Set(k, v)
		}
	}

	var out envelope[[]T]
	status, err := c.get(ctx, resource, q, &out, string(resource))
	if err != nil {
		return Result[T]{Data: empty, Err: err}
	}
	if status == http.StatusNotFound {
		return Result[T]{Data: empty, Err: &FetchError{Kind: KindStatus, Resource: resource, StatusCode: status}}
	}
	if out.Data == nil {
		return Result[T]{Data: empty}
	}
	for i := range out.Data {
		normalizeItem(&out.Data[i])
	}
	return Result[T]{Data: out.Data}
}

// FetchByID reads GET {base}/{resource}/{id}.
func FetchByID[T any](ctx context.Context, c *Client, resource Resource, id string) ItemResult[T] {
	return fetchOne[T](ctx, c, resource, string(resource), id)
}

// FetchBySlug reads GET {base}/{resource}/slug/{slug}.
func FetchBySlug[T any](ctx context.Context, c *Client, resource Resource, slug string) ItemResult[T] {
	return fetchOne[T](ctx, c, resource, string(resource), "slug", slug)
}

func fetchOne[T any](ctx context.Context, c *Client, resource Resource, segments ...string) ItemResult[T] {
	if !resource.Valid() {
		return ItemResult[T]{Err: &FetchError{Kind: KindInvalidResource, Resource: resource}}
	}
	last := segments[len(segments)-1]
	if strings.TrimSpace(last) == "" {
		return ItemResult[T]{}
	}
	segments[len(segments)-1] = url.PathEscape(last)

	var out envelope[*T]
	status, err := c.get(ctx, resource, nil, &out, segments...)
	if err != nil {
		return ItemResult[T]{Err: err}
	}
	if status == http.StatusNotFound || out.Data == nil {
		return ItemResult[T]{}
	}
	normalizeItem(out.Data)
	return ItemResult[T]{Data: out.Data}
}

// get decodes a 2xx body into dst. A 404 is returned as a status without error so
// single lookups can treat it as "absent"; every other non-2xx is a FetchError.
func (c *Client) get(ctx context.Context, resource Resource, q url.Values, dst any, segments ...string) (int, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, &FetchError{Kind: KindNetwork, Resource: resource, Err: err}
	}
	// segments arrive path-escaped
	u = u.JoinPath(segments...)
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, &FetchError{Kind: KindNetwork, Resource: resource, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &FetchError{Kind: KindNetwork, Resource: resource, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return resp.StatusCode, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return resp.StatusCode, &FetchError{
			Kind:       KindStatus,
			Resource:   resource,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("body=%s", strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return resp.StatusCode, &FetchError{Kind: KindDecode, Resource: resource, StatusCode: resp.StatusCode, Err: err}
	}
	return resp.StatusCode, nil
}

// Health checks GET {base}/health.
func (c *Client) Health(ctx context.Context) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return err
	}
	u = u.JoinPath("health")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("content api health: status=%d", resp.StatusCode)
	}
	return nil
}

func (c *Client) ListServices(ctx context.Context, query map[string]string) Result[Service] {
	return FetchCollection[Service](ctx, c, Services, query)
}

func (c *Client) ListBlogs(ctx context.Context, query map[string]string) Result[Blog] {
	return FetchCollection[Blog](ctx, c, Blogs, query)
}

func (c *Client) ListEvents(ctx context.Context, query map[string]string) Result[Event] {
	return FetchCollection[Event](ctx, c, Events, query)
}

func (c *Client) ServiceBySlug(ctx context.Context, slug string) ItemResult[Service] {
	return FetchBySlug[Service](ctx, c, Services, slug)
}

func (c *Client) BlogBySlug(ctx context.Context, slug string) ItemResult[Blog] {
	return FetchBySlug[Blog](ctx, c, Blogs, slug)
}

func (c *Client) EventBySlug(ctx context.Context, slug string) ItemResult[Event] {
	return FetchBySlug[Event](ctx, c, Events, slug)
}
