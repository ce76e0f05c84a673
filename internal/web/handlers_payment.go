package web

import (
	"net/http"
	"strings"
)

// handlePayment serves GET /payment, the mock checkout. The texture query
// parameter is optional, arrives lower-cased, and falls back to the product's
// default variant when absent or unrecognized. Pricing comes from the static
// catalog; nothing is charged and the Pay button stays disabled.
func (s *Server) handlePayment(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	cat := s.Catalog()
	if len(cat.Products) == 0 {
		http.Error(w, "no products available", 500)
		return
	}

	p := cat.Product(r.URL.Query().Get("product"))
	if p == nil {
		p = &cat.Products[0]
	}

	texture := strings.TrimSpace(r.URL.Query().Get("texture"))
	v := p.Variant(texture)
	if v == nil {
		v = p.DefaultVariant()
	}

	vm := PaymentViewModel{Product: p, Variant: v}
	if err := s.Tmpl.ExecuteTemplate(w, "layout.html", map[string]any{
		"Payment": vm,
	}); err != nil {
		http.Error(w, "failed to render template", 500)
	}
}
