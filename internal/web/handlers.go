package web

import (
	"context"
	"html/template"
	"net/http"
	"strings"
	"sync"
	"time"

	"showroom/internal/catalog"
	"showroom/internal/config"
	"showroom/internal/handoff"
	"showroom/internal/session"
)

// Server serves the showroom screens: viewer, texture picker, AR/QR hand-off,
// share, and the mock checkout. Per-visitor UI state lives in the negotiator
// kept in the session store.
type Server struct {
	Store session.Store[*handoff.Negotiator]
	Tmpl  *template.Template
	Cfg   config.Config

	mu  sync.RWMutex
	cat *catalog.Catalog
}

const cookieName = "showroom_sid"

// NewServer wires the handler set over a loaded catalog.
func NewServer(cat *catalog.Catalog, store session.Store[*handoff.Negotiator], tmpl *template.Template, cfg config.Config) *Server {
	return &Server{Store: store, Tmpl: tmpl, Cfg: cfg, cat: cat}
}

// Catalog returns the current catalog snapshot.
func (s *Server) Catalog() *catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// SetCatalog swaps in a reloaded catalog. Sessions already viewing a product
// keep their snapshot until they open a product again.
func (s *Server) SetCatalog(c *catalog.Catalog) {
	s.mu.Lock()
	s.cat = c
	s.mu.Unlock()
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/product/", s.handleProduct)

	mux.HandleFunc("/texture", s.handleTexture)
	mux.HandleFunc("/ar", s.handleAR)
	mux.HandleFunc("/dismiss", s.handleDismiss)
	mux.HandleFunc("/share", s.handleShare)

	mux.HandleFunc("/payment", s.handlePayment)
	mux.HandleFunc("/qr.png", s.handleQR)
	mux.HandleFunc("/sheet/", s.handleSheet)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	cat := s.Catalog()
	if len(cat.Products) == 0 {
		http.Error(w, "no products available", 500)
		return
	}
	http.Redirect(w, r, "/product/"+cat.Products[0].ID, http.StatusFound)
}

// GET /product/<id>
func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/product/"), "/")
	p := s.Catalog().Product(id)
	if p == nil || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}

	neg, _ := s.getOrCreateNegotiator(r.Context(), w, r, p)

	vm := s.makeViewerViewModel(p, neg)
	if err := s.Tmpl.ExecuteTemplate(w, "layout.html", map[string]any{
		"Viewer": vm,
	}); err != nil {
		http.Error(w, "failed to render template", 500)
	}
}

// getOrCreateNegotiator returns the session's negotiator for the product,
// creating a fresh one (default variant, overlay hidden) when the session is
// new or was viewing a different product.
func (s *Server) getOrCreateNegotiator(ctx context.Context, w http.ResponseWriter, r *http.Request, p *catalog.Product) (*handoff.Negotiator, string) {
	id := s.sessionID(r)
	if id == "" {
		id = s.Store.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}

	neg, ok, _ := s.Store.Get(ctx, id)
	if !ok || neg.Product() == nil || neg.Product().ID != p.ID {
		neg = handoff.New(p)
		neg.Fade = time.Duration(s.Cfg.FadeMs) * time.Millisecond
		_ = s.Store.Put(ctx, id, neg)
	}
	return neg, id
}

// negotiatorFromSession returns the stored negotiator without creating one.
func (s *Server) negotiatorFromSession(ctx context.Context, r *http.Request) (*handoff.Negotiator, bool) {
	id := s.sessionID(r)
	if id == "" {
		return nil, false
	}
	neg, ok, err := s.Store.Get(ctx, id)
	if err != nil || !ok {
		return nil, false
	}
	return neg, true
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
