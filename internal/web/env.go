package web

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"showroom/internal/handoff"
)

// requestEnv adapts one HTTP request into the negotiator's Environment. The
// page reports which sharing capabilities its browser has via form fields;
// the actual native-share and clipboard calls run in the browser, so on this
// side they are delegations that succeed by handing a directive back to the
// page. The legacy selection copy needs a document and is never available
// over HTTP.
type requestEnv struct {
	r       *http.Request
	pageURL string

	nativeShare    bool
	clipboardWrite bool
	// nativeRejected is set when the page reports the visitor dismissed
	// the share sheet on a previous attempt.
	nativeRejected bool
}

func (s *Server) newRequestEnv(r *http.Request, pageURL string) *requestEnv {
	return &requestEnv{
		r:              r,
		pageURL:        pageURL,
		nativeShare:    r.FormValue("can_share") == "1",
		clipboardWrite: r.FormValue("can_clipboard") == "1",
		nativeRejected: r.FormValue("native_result") == "rejected",
	}
}

func (e *requestEnv) UserAgent() string { return e.r.UserAgent() }

// HasInteractiveContext is true here: a browser made this request.
func (e *requestEnv) HasInteractiveContext() bool { return true }

func (e *requestEnv) PageURL() string { return e.pageURL }

func (e *requestEnv) SupportsNativeShare() bool { return e.nativeShare }

func (e *requestEnv) ShareNative(_ context.Context, _, _ string) error {
	if e.nativeRejected {
		return errors.New("share sheet dismissed by user")
	}
	return nil
}

func (e *requestEnv) SupportsClipboardWrite() bool { return e.clipboardWrite }

func (e *requestEnv) WriteClipboard(_ context.Context, _ string) error { return nil }

func (e *requestEnv) SupportsLegacyCopy() bool { return false }

func (e *requestEnv) NewCopyField(string) (handoff.CopyField, error) {
	return nil, errors.New("no document on the server side")
}

// pageURL builds the canonical viewer address for a product, the payload for
// QR hand-off and sharing. The page may pass its own address; it is used only
// when it sits under the configured origin. The prefix must end at a path
// boundary so a host like base_url plus ".evil.com" cannot slip through.
func (s *Server) pageURL(r *http.Request, productID string) string {
	base := strings.TrimSuffix(s.Cfg.BaseURL, "/")
	if u := r.FormValue("url"); u == base || strings.HasPrefix(u, base+"/") {
		return u
	}
	return base + "/product/" + productID
}
