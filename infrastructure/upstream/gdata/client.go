// ABOUTME: UpstreamClient implementation for the GData-style activity and metadata API
// ABOUTME: Rate limited, attaches the request principal's token, maps HTTP errors

package gdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"activity-viewer-api/core/domain"
	coreerrors "activity-viewer-api/core/errors"

	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the upstream API root.
	DefaultBaseURL = "https://gdata.youtube.com"

	defaultTimeout = 10 * time.Second
	userAgent      = "ActivityViewerAPI/1.0"
	apiName        = "gdata"
)

// Options configures the upstream client.
type Options struct {
	// BaseURL is the upstream API root; DefaultBaseURL when empty
	BaseURL string

	// Timeout bounds each upstream call; 10s when zero
	Timeout time.Duration

	// RequestsPerSecond throttles upstream calls; 0 disables throttling
	RequestsPerSecond float64
}

// Client implements interfaces.UpstreamClient against the GData API. The
// upstream is rate limited, so all calls go through a shared limiter. The
// authenticated principal's token is read from the request context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new upstream client.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    limiter,
	}
}

// FetchActivityFeed retrieves the Atom activity feed for a username.
func (c *Client) FetchActivityFeed(ctx context.Context, username string) ([]domain.ActivityEntry, error) {
	if username == "" {
		username = "default"
	}
	endpoint := fmt.Sprintf("%s/feeds/api/users/%s/events?v=2", c.baseURL, url.PathEscape(username))

	body, err := c.get(ctx, endpoint, "activity feed", username)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return parseActivityFeed(body)
}

// FetchFriendActivityFeed retrieves the friend activity feed for the
// authenticated caller.
func (c *Client) FetchFriendActivityFeed(ctx context.Context) ([]domain.ActivityEntry, error) {
	endpoint := c.baseURL + "/feeds/api/users/default/friendsactivity?v=2"

	body, err := c.get(ctx, endpoint, "friend activity feed", "default")
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return parseActivityFeed(body)
}

// FetchVideoMetadata retrieves metadata for a single video.
func (c *Client) FetchVideoMetadata(ctx context.Context, videoID string) (*domain.VideoMetadata, error) {
	endpoint := fmt.Sprintf("%s/feeds/api/videos/%s?v=2&alt=json", c.baseURL, url.PathEscape(videoID))

	body, err := c.get(ctx, endpoint, "video", videoID)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var meta domain.VideoMetadata
	if err := json.NewDecoder(body).Decode(&meta); err != nil {
		return nil, coreerrors.WrapError(err, "decoding video metadata")
	}
	if meta.ID == "" {
		meta.ID = videoID
	}
	return &meta, nil
}

// FetchUserMetadata retrieves the profile for a username. The username
// "default" resolves to the authenticated caller upstream.
func (c *Client) FetchUserMetadata(ctx context.Context, username string) (*domain.UserMetadata, error) {
	endpoint := fmt.Sprintf("%s/feeds/api/users/%s?v=2&alt=json", c.baseURL, url.PathEscape(username))

	body, err := c.get(ctx, endpoint, "user profile", username)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var meta domain.UserMetadata
	if err := json.NewDecoder(body).Decode(&meta); err != nil {
		return nil, coreerrors.WrapError(err, "decoding user metadata")
	}
	return &meta, nil
}

// get performs a rate-limited GET and maps non-200 statuses to typed errors.
// The returned body must be closed by the caller.
func (c *Client) get(ctx context.Context, endpoint, resource, id string) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("GData-Version", "2")

	if principal, ok := domain.PrincipalFromContext(ctx); ok && principal.Token != "" {
		req.Header.Set("Authorization", "AuthSub token="+principal.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, coreerrors.WrapError(err, "calling upstream API")
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, c.statusError(resp.StatusCode, resource, id)
	}

	return resp.Body, nil
}

// statusError maps an upstream HTTP status onto a typed error.
func (c *Client) statusError(status int, resource, id string) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &coreerrors.AuthError{
			Message: fmt.Sprintf("upstream rejected credentials (%d)", status),
		}
	case status == http.StatusNotFound:
		return &coreerrors.NotFoundError{Resource: resource, ID: id}
	default:
		return &coreerrors.ExternalAPIError{
			StatusCode: status,
			API:        apiName,
			Message:    fmt.Sprintf("%s request failed", resource),
		}
	}
}
