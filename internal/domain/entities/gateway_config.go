package entities

import (
	"net/http"
	"time"
)

// GatewayConfig holds processor credentials and shop settings. It is loaded
// once per process and only read afterwards.
type GatewayConfig struct {
	ClientID     string
	Secret       string
	Sandbox      bool
	Currency     string
	MerchantName string

	// Redirect flow callbacks.
	SuccessURL string
	CancelURL  string

	Timeout time.Duration
}

// ProcessorMode selects the processor endpoint.
type ProcessorMode string

const (
	ProcessorModeSandbox ProcessorMode = "sandbox"
	ProcessorModeLive    ProcessorMode = "live"
)

func (c GatewayConfig) Mode() ProcessorMode {
	if c.Sandbox {
		return ProcessorModeSandbox
	}
	return ProcessorModeLive
}

// ClientHandle is an authenticated processor client for one operation.
// HTTP already carries the credentials (bearer token source).
type ClientHandle struct {
	ClientID string
	Mode     ProcessorMode
	BaseURL  string
	HTTP     *http.Client

	// Secret is kept for processors whose SDK authenticates on its own.
	Secret string `json:"-"`
}
