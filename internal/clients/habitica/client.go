// Package habitica is the client for the Habitica v3 REST API
package habitica

//go:generate mockgen -destination=mock/mock_client.go -package=habiticamock github.com/KirkDiggler/habitica-actions/internal/clients/habitica Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/habitica-actions/internal/errors"
	"github.com/KirkDiggler/habitica-actions/internal/tracing"
)

// Client defines the calls the actions make against the service
type Client interface {
	// GetUser fetches the user's stats and items
	GetUser(ctx context.Context) (*User, error)

	// GetParty fetches the user's party, including its quest
	GetParty(ctx context.Context) (*Party, error)

	// BuyArmoire buys from the enchanted armoire
	BuyArmoire(ctx context.Context) (*ArmoireResult, error)

	// CastSpell casts a class skill on the user's behalf
	CastSpell(ctx context.Context, spellID string) error

	// Hatch combines an egg with a hatching potion
	Hatch(ctx context.Context, egg, potion string) error

	// Feed gives food to a pet. The amount is only sent when above one.
	Feed(ctx context.Context, pet, food string, amount int) error

	// AcceptQuest accepts the pending party quest
	AcceptQuest(ctx context.Context) error

	// BuyHealthPotion buys a health potion
	BuyHealthPotion(ctx context.Context) error
}

// Request headers identifying the account and the calling tool
const (
	HeaderUser   = "x-api-user"
	HeaderKey    = "x-api-key"
	HeaderClient = "x-client"
)

// Config contains configuration options for the client
type Config struct {
	// BaseURL of the v3 API, e.g. https://habitica.com/api/v3
	BaseURL string
	// UserID and APIKey authenticate every request
	UserID string
	APIKey string
	// ClientID is sent as x-client
	ClientID string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BaseURL", cfg.BaseURL, vb)
	errors.ValidateRequired("UserID", cfg.UserID, vb)
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	return nil
}

type client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
}

// New creates a new client with the given configuration
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	headers := http.Header{}
	headers.Set(HeaderUser, cfg.UserID)
	headers.Set(HeaderKey, cfg.APIKey)
	if cfg.ClientID != "" {
		headers.Set(HeaderClient, cfg.ClientID)
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		headers:    headers,
		httpClient: httpClient,
	}, nil
}

func (c *client) GetUser(ctx context.Context) (*User, error) {
	query := url.Values{"userFields": []string{"stats,items"}}

	var user User
	if err := c.do(ctx, http.MethodGet, "/user", query, &user, "stats", "items"); err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	return &user, nil
}

func (c *client) GetParty(ctx context.Context) (*Party, error) {
	var party Party
	if err := c.do(ctx, http.MethodGet, "/groups/party", nil, &party, "quest"); err != nil {
		return nil, errors.Wrap(err, "failed to get party")
	}
	return &party, nil
}

func (c *client) BuyArmoire(ctx context.Context) (*ArmoireResult, error) {
	var result ArmoireResult
	if err := c.do(ctx, http.MethodPost, "/user/buy-armoire", nil, &result, "armoire.type"); err != nil {
		return nil, errors.Wrap(err, "failed to buy armoire")
	}
	return &result, nil
}

func (c *client) CastSpell(ctx context.Context, spellID string) error {
	if spellID == "" {
		return errors.InvalidArgument("spell ID is required")
	}

	path := "/user/class/cast/" + url.PathEscape(spellID)
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to cast %s", spellID)
	}
	return nil
}

func (c *client) Hatch(ctx context.Context, egg, potion string) error {
	if egg == "" || potion == "" {
		return errors.InvalidArgument("egg and potion are required")
	}

	path := "/user/hatch/" + url.PathEscape(egg) + "/" + url.PathEscape(potion)
	if err := c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return errors.Wrapf(err, "failed to hatch %s", PetKey(egg, potion))
	}
	return nil
}

func (c *client) Feed(ctx context.Context, pet, food string, amount int) error {
	if pet == "" || food == "" {
		return errors.InvalidArgument("pet and food are required")
	}

	var query url.Values
	if amount > 1 {
		query = url.Values{"amount": []string{strconv.Itoa(amount)}}
	}

	path := "/user/feed/" + url.PathEscape(pet) + "/" + url.PathEscape(food)
	if err := c.do(ctx, http.MethodPost, path, query, nil); err != nil {
		return errors.Wrapf(err, "failed to feed %s to %s", food, pet)
	}
	return nil
}

func (c *client) AcceptQuest(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/groups/party/quests/accept", nil, nil); err != nil {
		return errors.Wrap(err, "failed to accept quest")
	}
	return nil
}

func (c *client) BuyHealthPotion(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/user/buy-health-potion", nil, nil); err != nil {
		return errors.Wrap(err, "failed to buy health potion")
	}
	return nil
}

// do sends one request and decodes the envelope's data into out. Each path in
// required must name an existing value inside data; out may be nil when the
// caller does not consume the payload.
func (c *client) do(ctx context.Context, method, path string, query url.Values, out any, required ...string) (err error) {
	ctx, span := tracing.StartSpan(ctx, method+" "+path, trace.SpanKindClient)
	defer func() { tracing.EndSpan(span, err) }()
	span.SetAttributes(map[string]string{
		"http.method": method,
		"http.path":   path,
	})

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request %s %s", method, path)
	}
	for name, values := range c.headers {
		req.Header[name] = values
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("%s %s failed", method, path))
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck
	}()

	span.SetHTTPStatus(resp.StatusCode)
	slog.DebugContext(ctx, "habitica request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
	)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read response body")
	}

	return decodeEnvelope(resp.StatusCode, path, body, out, required)
}

// decodeEnvelope validates a response body and unmarshals its data field
func decodeEnvelope(status int, path string, body []byte, out any, required []string) error {
	failed := status < 200 || status >= 300

	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
		if failed {
			return errors.Remote(status, http.StatusText(status)).WithMeta("path", path)
		}
		return errors.Internalf("invalid %s response: body is not a JSON object", path).
			WithMeta("path", path)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errors.Wrapf(err, "invalid %s response", path).WithMeta("path", path)
	}

	if failed || (env.Success != nil && !*env.Success) {
		return errors.Remote(status, remoteMessage(env, status)).WithMeta("path", path)
	}

	if out == nil {
		return nil
	}

	data := gjson.ParseBytes(env.Data)
	if !data.IsObject() {
		return errors.Internalf("invalid %s response: data is not an object", path).
			WithMeta("path", path)
	}
	for _, field := range required {
		if !data.Get(field).Exists() {
			return errors.Internalf("invalid %s response: missing %s", path, field).
				WithMeta("path", path).
				WithMeta("field", field)
		}
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrapf(err, "invalid %s response", path).WithMeta("path", path)
	}
	return nil
}

func remoteMessage(env envelope, status int) string {
	switch {
	case env.Error != "" && env.Message != "":
		return env.Error + ": " + env.Message
	case env.Message != "":
		return env.Message
	case env.Error != "":
		return env.Error
	default:
		return http.StatusText(status)
	}
}
