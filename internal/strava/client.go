package strava

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/2beens/freqtracker/internal/telemetry/tracing"

	"github.com/cenkalti/backoff/v4"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/oauth2"
)

const (
	DefaultBaseURL  = "https://www.strava.com/api/v3"
	DefaultPageSize = 200
	// DefaultSyncWindow is how far back a sync goes when no start point is given.
	DefaultSyncWindow = 20 * 24 * time.Hour
)

var Endpoint = oauth2.Endpoint{
	AuthURL:   "https://www.strava.com/oauth/authorize",
	TokenURL:  "https://www.strava.com/oauth/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

var (
	// ErrReauthRequired means the stored credentials are no longer accepted, even after a refresh.
	// The user has to connect the account again.
	ErrReauthRequired = errors.New("strava authorization expired, please reconnect your strava account")
	ErrNotConnected   = errors.New("strava account not connected")

	errUnauthorized = errors.New("strava responded with 401")
)

// SyncedActivity is one activity occurrence pulled from strava.
type SyncedActivity struct {
	Type      string
	StartedAt time.Time
}

type apiActivity struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	SportType string    `json:"sport_type"`
	StartDate time.Time `json:"start_date"`
}

func (a apiActivity) activityType() string {
	if a.SportType != "" {
		return a.SportType
	}
	return a.Type
}

type ClientParams struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	BaseURL      string
	TokenURL     string
	PageSize     int
	HttpClient   *http.Client
}

type Client struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client
	baseURL     string
	pageSize    int
	// newBackOff returns the retry policy of a single page request or token refresh
	newBackOff func(ctx context.Context) backoff.BackOff
}

func NewClient(params ClientParams) *Client {
	endpoint := Endpoint
	if params.TokenURL != "" {
		endpoint.TokenURL = params.TokenURL
	}
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	pageSize := params.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	httpClient := params.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		oauthConfig: &oauth2.Config{
			ClientID:     params.ClientID,
			ClientSecret: params.ClientSecret,
			Endpoint:     endpoint,
			RedirectURL:  params.RedirectURL,
			Scopes:       []string{"activity:read_all"},
		},
		httpClient: httpClient,
		baseURL:    baseURL,
		pageSize:   pageSize,
		newBackOff: func(ctx context.Context) backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = 500 * time.Millisecond
			b.MaxElapsedTime = 30 * time.Second
			return backoff.WithContext(b, ctx)
		},
	}
}

func (c *Client) AuthCodeURL(state string) string {
	return c.oauthConfig.AuthCodeURL(state, oauth2.SetAuthURLParam("approval_prompt", "auto"))
}

func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	token, err := c.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange strava code: %w", err)
	}
	return token, nil
}

// FetchActivities pulls all activities started after since, following pagination until an empty page.
// A 401 triggers exactly one token refresh and retry. The returned token is the one that was
// used in the end, callers should persist it when it differs from the given one.
func (c *Client) FetchActivities(
	ctx context.Context,
	token *oauth2.Token,
	since time.Time,
) (_ []SyncedActivity, _ *oauth2.Token, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "strava.client.fetchActivities")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("since", since.String()))

	if token == nil {
		return nil, nil, ErrNotConnected
	}

	current := token
	refreshed := false
	if !current.Valid() {
		current, err = c.refresh(ctx, current)
		if err != nil {
			return nil, token, err
		}
		refreshed = true
	}

	var all []apiActivity
	for page := 1; ; page++ {
		items, err := c.fetchPageWithRetry(ctx, current.AccessToken, since, page)
		if errors.Is(err, errUnauthorized) {
			if refreshed {
				return nil, current, ErrReauthRequired
			}
			current, err = c.refresh(ctx, current)
			if err != nil {
				return nil, token, err
			}
			refreshed = true
			items, err = c.fetchPageWithRetry(ctx, current.AccessToken, since, page)
			if errors.Is(err, errUnauthorized) {
				return nil, current, ErrReauthRequired
			}
		}
		if err != nil {
			return nil, current, fmt.Errorf("fetch page %d: %w", page, err)
		}
		if len(items) == 0 {
			break
		}
		all = append(all, items...)
	}

	activities := dedupe(all)
	span.SetAttributes(attribute.Int("activities", len(activities)))
	log.Debugf("strava: fetched %d activities (%d unique) since %s", len(all), len(activities), since)

	return activities, current, nil
}

// refresh trades the refresh token for a new access token. Only a 400/401 from the token
// endpoint is ErrReauthRequired; 429, 5xx and transport errors are retried and returned as is.
func (c *Client) refresh(ctx context.Context, token *oauth2.Token) (*oauth2.Token, error) {
	if token.RefreshToken == "" {
		return nil, ErrReauthRequired
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	var refreshed *oauth2.Token
	operation := func() error {
		// an expired copy forces the token source to use the refresh token
		expired := &oauth2.Token{
			RefreshToken: token.RefreshToken,
			Expiry:       time.Unix(1, 0),
		}
		var err error
		refreshed, err = c.oauthConfig.TokenSource(ctx, expired).Token()
		if err == nil {
			return nil
		}
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			code := re.Response.StatusCode
			if code == http.StatusBadRequest || code == http.StatusUnauthorized {
				return backoff.Permanent(fmt.Errorf("%w: %w", ErrReauthRequired, err))
			}
			if code != http.StatusTooManyRequests && code < 500 {
				return backoff.Permanent(err)
			}
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		log.Warnf("strava: refresh token failed, retrying in %s: %s", wait, err)
	}

	if err := backoff.RetryNotify(operation, c.newBackOff(ctx), notify); err != nil {
		log.Warnf("strava: refresh token: %s", err)
		return nil, fmt.Errorf("refresh strava token: %w", err)
	}
	return refreshed, nil
}

type statusError struct {
	statusCode int
	body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("strava status %d: %s", e.statusCode, e.body)
}

func (c *Client) fetchPageWithRetry(ctx context.Context, accessToken string, since time.Time, page int) ([]apiActivity, error) {
	var items []apiActivity
	operation := func() error {
		var err error
		items, err = c.fetchPage(ctx, accessToken, since, page)
		if err == nil {
			return nil
		}
		if errors.Is(err, errUnauthorized) {
			return backoff.Permanent(err)
		}
		var se *statusError
		if errors.As(err, &se) && se.statusCode != http.StatusTooManyRequests && se.statusCode < 500 {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		log.Warnf("strava: page %d failed, retrying in %s: %s", page, wait, err)
	}

	if err := backoff.RetryNotify(operation, c.newBackOff(ctx), notify); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) fetchPage(ctx context.Context, accessToken string, since time.Time, page int) ([]apiActivity, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(c.pageSize))
	if !since.IsZero() {
		query.Set("after", strconv.FormatInt(since.Unix(), 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/athlete/activities?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, errUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &statusError{statusCode: resp.StatusCode, body: string(body)}
	}

	var items []apiActivity
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decode activities: %w", err))
	}
	return items, nil
}

// dedupe drops repeated (type, start) pairs, which strava returns if activities
// get added while paging. Result is sorted by start time.
func dedupe(items []apiActivity) []SyncedActivity {
	type key struct {
		activityType string
		unix         int64
	}

	seen := make(map[key]bool, len(items))
	activities := make([]SyncedActivity, 0, len(items))
	for _, item := range items {
		k := key{item.activityType(), item.StartDate.Unix()}
		if k.activityType == "" || seen[k] {
			continue
		}
		seen[k] = true
		activities = append(activities, SyncedActivity{
			Type:      k.activityType,
			StartedAt: item.StartDate.UTC().Truncate(time.Second),
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].StartedAt.Before(activities[j].StartedAt)
	})
	return activities
}
