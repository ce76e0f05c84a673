package handoff

import (
	"net/url"
	"strings"
)

// DefaultQREndpoint is the public QR image service the overlay uses when the
// server configuration does not name one.
const DefaultQREndpoint = "https://api.qrserver.com/v1"

const qrSize = "200x200"

// QRImageURL builds the GET request for the external QR image service:
// <endpoint>/create-qr-code/?size=200x200&data=<url-encoded page URL>.
// The negotiator only constructs the string; fetching and rendering the
// image is the page's job.
func QRImageURL(endpoint, pageURL string) string {
	if endpoint == "" {
		endpoint = DefaultQREndpoint
	}
	return strings.TrimSuffix(endpoint, "/") +
		"/create-qr-code/?size=" + qrSize +
		"&data=" + url.QueryEscape(pageURL)
}
