package payments

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"paypal_checkout/internal/domain/entities"
	"paypal_checkout/internal/usecase/interfaces"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	PayPalSandboxBaseURL = "https://api-m.sandbox.paypal.com"
	PayPalLiveBaseURL    = "https://api-m.paypal.com"

	payPalTokenPath = "/v1/oauth2/token"
)

var ErrMissingCredentials = errors.New("missing processor client id or secret")

// GatewayContext builds authenticated processor clients.
//
// The last handle is cached and rebuilt when the credentials or the mode
// change. No network call happens here: the token is fetched lazily by the
// first request that uses the handle.
type GatewayContext struct {
	baseURLs map[entities.ProcessorMode]string
	base     *http.Client

	mu     sync.Mutex
	key    string
	handle entities.ClientHandle
}

var _ interfaces.IClientProvider = (*GatewayContext)(nil)

type ContextOption func(*GatewayContext)

// WithBaseURL points a mode at another endpoint (tests, proxies).
func WithBaseURL(mode entities.ProcessorMode, baseURL string) ContextOption {
	return func(c *GatewayContext) { c.baseURLs[mode] = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient sets the client used for token and API calls.
func WithHTTPClient(client *http.Client) ContextOption {
	return func(c *GatewayContext) { c.base = client }
}

func NewGatewayContext(opts ...ContextOption) *GatewayContext {
	c := &GatewayContext{
		baseURLs: map[entities.ProcessorMode]string{
			entities.ProcessorModeSandbox: PayPalSandboxBaseURL,
			entities.ProcessorModeLive:    PayPalLiveBaseURL,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *GatewayContext) BuildClient(cfg entities.GatewayConfig) (entities.ClientHandle, error) {
	if strings.TrimSpace(cfg.ClientID) == "" || strings.TrimSpace(cfg.Secret) == "" {
		return entities.ClientHandle{}, ErrMissingCredentials
	}

	mode := cfg.Mode()
	key := string(mode) + "\x00" + cfg.ClientID + "\x00" + cfg.Secret

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.key == key && c.handle.HTTP != nil {
		return c.handle, nil
	}

	baseURL := c.baseURLs[mode]
	cc := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.Secret,
		TokenURL:     baseURL + payPalTokenPath,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	base := c.base
	if base == nil {
		base = &http.Client{Timeout: clientTimeout(cfg.Timeout)}
	}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	httpClient := cc.Client(tokenCtx)
	httpClient.Timeout = clientTimeout(cfg.Timeout)

	c.key = key
	c.handle = entities.ClientHandle{
		ClientID: cfg.ClientID,
		Mode:     mode,
		BaseURL:  baseURL,
		HTTP:     httpClient,
		Secret:   cfg.Secret,
	}
	return c.handle, nil
}

func clientTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}
