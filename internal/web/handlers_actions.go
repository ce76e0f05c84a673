package web

import (
	"net/http"

	"showroom/internal/handoff"
)

// arDirective records the single observable effect of the mobile branch so
// the handler can forward it to the page's model-viewer.
type arDirective struct {
	activated bool
}

func (d *arDirective) ActivateAR() { d.activated = true }

// handleTexture serves POST /texture, the texture chip click. It starts the
// two-phase swap; the fragment shows the swap target immediately so the page
// can run its fade.
func (s *Server) handleTexture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", 400)
		return
	}
	p := s.Catalog().Product(r.FormValue("product"))
	if p == nil {
		http.NotFound(w, r)
		return
	}
	neg, _ := s.getOrCreateNegotiator(r.Context(), w, r, p)

	neg.SelectTexture(r.FormValue("texture"))

	vm := s.makeViewerViewModel(p, neg)
	if err := s.Tmpl.ExecuteTemplate(w, "viewer.html", vm); err != nil {
		http.Error(w, "failed to render template", 500)
	}
}

// handleAR serves POST /ar, the "View in AR" action. Mobile sessions get an
// activation directive the page forwards to the widget; desktop sessions get
// the QR hand-off overlay. The page reports whether the widget has mounted
// via the "widget" field; an unmounted widget makes the mobile branch a
// silent no-op.
func (s *Server) handleAR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", 400)
		return
	}
	p := s.Catalog().Product(r.FormValue("product"))
	if p == nil {
		http.NotFound(w, r)
		return
	}
	neg, _ := s.getOrCreateNegotiator(r.Context(), w, r, p)
	env := s.newRequestEnv(r, s.pageURL(r, p.ID))

	var widget handoff.ARWidget
	directive := &arDirective{}
	if r.FormValue("widget") == "1" {
		widget = directive
	}
	neg.RequestAR(env, widget)

	if directive.activated {
		w.Header().Set("X-Showroom-AR", "activate")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	url, visible := neg.Handoff()
	if !visible {
		// Mobile with no widget mounted: nothing to show.
		w.WriteHeader(http.StatusNoContent)
		return
	}
	vm := HandoffViewModel{
		URL:       url,
		QRImage:   handoff.QRImageURL(s.Cfg.QREndpoint, url),
		QRLocal:   "/qr.png?data=" + queryEscape(url),
		Product:   p.Title,
		ProductID: p.ID,
	}
	if err := s.Tmpl.ExecuteTemplate(w, "qr_overlay.html", vm); err != nil {
		http.Error(w, "failed to render template", 500)
	}
}

// handleDismiss serves POST /dismiss, closing the QR overlay. Harmless when
// the overlay is already closed.
func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if neg, ok := s.negotiatorFromSession(r.Context(), r); ok {
		neg.DismissHandoff()
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleShare serves POST /share. It runs the share fallback chain against
// the capabilities the page reported. The response carries the outcome, a
// directive for the tier the browser must execute, and the one-shot
// notification text. The notice is captured per request; the negotiator is
// shared by every request in the session.
func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", 400)
		return
	}
	p := s.Catalog().Product(r.FormValue("product"))
	if p == nil {
		http.NotFound(w, r)
		return
	}
	neg, _ := s.getOrCreateNegotiator(r.Context(), w, r, p)

	pageURL := s.pageURL(r, p.ID)
	env := s.newRequestEnv(r, pageURL)

	var notice string
	outcome := neg.Share(r.Context(), env, p.Title, pageURL, func(msg string) { notice = msg })

	w.Header().Set("X-Showroom-Share", outcome.String())
	vm := ShareViewModel{
		Outcome: outcome.String(),
		Message: notice,
		Title:   p.Title,
		URL:     pageURL,
	}
	if err := s.Tmpl.ExecuteTemplate(w, "notice.html", vm); err != nil {
		http.Error(w, "failed to render template", 500)
	}
}
