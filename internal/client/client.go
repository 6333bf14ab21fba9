package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muurk/fedivt/internal/logging"
)

const (
	// ClientName is how this app identifies itself when registering
	ClientName = "fedivt"

	// oauthScopes is everything the screens need: reading timelines,
	// posting, and the streaming socket
	oauthScopes = "read write follow"

	// redirectURI for the password grant; no browser is involved
	redirectURI = "urn:ietf:wg:oauth:2.0:oob"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 15 * time.Second

	// DefaultFetchLimit is how many statuses a timeline page asks for
	DefaultFetchLimit = 20
)

// Client is a minimal Mastodon API client. It is not safe for concurrent
// use; the session loop is single threaded and that is enough
type Client struct {
	// Server is the base URL, e.g. "https://mastodon.example"
	Server string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	clientID     string
	clientSecret string
	accessToken  string
	username     string
}

// New creates a client for the given server. A bare hostname is assumed
// to mean https
func New(server string) *Client {
	if !strings.HasPrefix(server, "https://") && !strings.Contains(server, "//") {
		server = "https://" + server
	}
	server = strings.TrimRight(server, "/")

	return &Client{
		Server:     server,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAppCredentials installs previously registered client credentials,
// skipping the one-time app registration
func (c *Client) SetAppCredentials(clientID, clientSecret string) {
	c.clientID = clientID
	c.clientSecret = clientSecret
}

// AppCredentials returns the registered client credentials so the caller
// can persist them
func (c *Client) AppCredentials() (clientID, clientSecret string) {
	return c.clientID, c.clientSecret
}

// Registered reports whether app credentials are present
func (c *Client) Registered() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// LoggedIn reports whether a user token is present
func (c *Client) LoggedIn() bool {
	return c.accessToken != ""
}

// Username returns the username of the logged-in user, if any
func (c *Client) Username() string {
	return c.username
}

// AccessToken returns the current user token, for the streaming socket
func (c *Client) AccessToken() string {
	return c.accessToken
}

// appRegistration is the wire response of the apps endpoint
type appRegistration struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// RegisterApp performs the one-time app registration with the server.
// The returned credentials identify this app, not any user
func (c *Client) RegisterApp() error {
	form := url.Values{}
	form.Set("client_name", ClientName)
	form.Set("redirect_uris", redirectURI)
	form.Set("scopes", oauthScopes)

	var reg appRegistration
	if err := c.postForm("/api/v1/apps", form, &reg); err != nil {
		return err
	}

	c.clientID = reg.ClientID
	c.clientSecret = reg.ClientSecret
	logging.LogConnection(c.Server, "app registered")
	return nil
}

// tokenResponse is the wire response of the token endpoint
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login exchanges a username and password for a user token. A rejection
// by the server surfaces as ErrBadLogin
func (c *Client) Login(username, password string) error {
	if !c.Registered() {
		return NewAuthError("client is not registered with the server", c.Server)
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("username", username)
	form.Set("password", password)
	form.Set("scope", oauthScopes)

	req, err := http.NewRequest("POST", c.Server+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return ClassifyNetworkError(err, c.Server)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return ClassifyNetworkError(err, c.Server)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return ErrBadLogin
	}
	if resp.StatusCode != http.StatusOK {
		return NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode), c.Server)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ClassifyNetworkError(err, c.Server)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return NewParseError("failed to parse token response", err)
	}
	if token.AccessToken == "" {
		return NewAuthError("server returned an empty token", c.Server)
	}

	c.accessToken = token.AccessToken
	c.username = username
	logging.LogConnection(c.Server, "logged in")
	return nil
}

// Timeline fetches one page of a timeline. A non-empty maxID fetches the
// page of statuses older than that ID, which is how infinite scroll pages
// backwards
func (c *Client) Timeline(kind TimelineKind, limit int, maxID string) ([]Status, error) {
	if limit <= 0 {
		limit = DefaultFetchLimit
	}

	query := url.Values{}
	query.Set("limit", fmt.Sprintf("%d", limit))
	if maxID != "" {
		query.Set("max_id", maxID)
	}

	var path string
	switch kind {
	case TimelineHome:
		path = "/api/v1/timelines/home"
	case TimelineLocal:
		path = "/api/v1/timelines/public"
		query.Set("local", "true")
	case TimelinePublic:
		path = "/api/v1/timelines/public"
	default:
		return nil, NewHTTPError(0, fmt.Sprintf("unknown timeline %v", kind), c.Server)
	}

	var statuses []Status
	err := c.get(path, query, &statuses)
	logging.LogFetch(path, len(statuses), err)
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

// Status fetches a single post by ID
func (c *Client) Status(id string) (*Status, error) {
	var status Status
	if err := c.get("/api/v1/statuses/"+url.PathEscape(id), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// StatusContext fetches a post together with its thread: the chain of
// ancestors back to the origin and the tree of replies below it
func (c *Client) StatusContext(id string) (*Thread, error) {
	status, err := c.Status(id)
	if err != nil {
		return nil, err
	}

	var related statusContext
	if err := c.get("/api/v1/statuses/"+url.PathEscape(id)+"/context", nil, &related); err != nil {
		return nil, err
	}

	thread, err := BuildThread(*status, related.Ancestors, related.Descendants)
	if err != nil {
		return nil, err
	}
	return thread, nil
}

// Preferences fetches the server-side user preferences
func (c *Client) Preferences() (*Preferences, error) {
	var prefs Preferences
	if err := c.get("/api/v1/preferences", nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// Me fetches the account of the logged-in user
func (c *Client) Me() (*Account, error) {
	var account Account
	if err := c.get("/api/v1/accounts/verify_credentials", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Account fetches an account by ID
func (c *Client) Account(id string) (*Account, error) {
	var account Account
	if err := c.get("/api/v1/accounts/"+url.PathEscape(id), nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Post creates a new status. An empty cw posts without a content warning
func (c *Client) Post(status string, visibility Visibility, cw string) (*Status, error) {
	form := url.Values{}
	form.Set("status", status)
	form.Set("visibility", visibility.String())
	if cw != "" {
		form.Set("spoiler_text", cw)
	}

	var created Status
	if err := c.postForm("/api/v1/statuses", form, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Boost reblogs a post, returning the updated status
func (c *Client) Boost(id string) (*Status, error) {
	var status Status
	if err := c.postForm("/api/v1/statuses/"+url.PathEscape(id)+"/reblog", url.Values{}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Favourite favourites a post, returning the updated status
func (c *Client) Favourite(id string) (*Status, error) {
	var status Status
	if err := c.postForm("/api/v1/statuses/"+url.PathEscape(id)+"/favourite", url.Values{}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// get performs an authenticated GET and decodes the JSON response into out
func (c *Client) get(path string, query url.Values, out interface{}) error {
	target := c.Server + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequest("GET", target, nil)
	if err != nil {
		return ClassifyNetworkError(err, c.Server)
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	return c.do(req, out)
}

// postForm performs an authenticated form POST and decodes the JSON
// response into out
func (c *Client) postForm(path string, form url.Values, out interface{}) error {
	req, err := http.NewRequest("POST", c.Server+path, strings.NewReader(form.Encode()))
	if err != nil {
		return ClassifyNetworkError(err, c.Server)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return ClassifyNetworkError(err, c.Server)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return NewAuthError("authentication failed (token rejected)", c.Server)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewHTTPError(resp.StatusCode, fmt.Sprintf("unexpected status code: %d", resp.StatusCode), c.Server)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ClassifyNetworkError(err, c.Server)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return NewParseError("failed to parse JSON response", err)
		}
	}
	return nil
}
