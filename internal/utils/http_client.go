package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so the full resty API stays available
// while the adapter layer can hang vault-specific behavior off the wrapper.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool
// and configuration. The server adapter sets base URL, timeout and auth
// state on top of it.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
