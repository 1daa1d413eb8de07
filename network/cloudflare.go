package network

import (
	"net/http"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
)

// BypassCloudflare wraps c's transport so requests carry the browser headers
// and TLS ciphers Cloudflare's bot check expects.
func BypassCloudflare(c *http.Client) *http.Client {
	inner := c.Transport
	if inner == nil {
		inner = http.DefaultTransport
	}
	c.Transport = cloudflarebp.AddCloudFlareByPass(inner)
	return c
}
