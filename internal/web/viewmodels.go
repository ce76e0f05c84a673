package web

import (
	"net/url"
	"strings"

	"showroom/internal/catalog"
	"showroom/internal/handoff"
)

// ViewerViewModel renders the 3D viewer screen: active model, texture chips,
// AR/share buttons, and the checkout link for the displayed variant.
type ViewerViewModel struct {
	Product       *catalog.Product
	Variant       *catalog.TextureVariant // the variant being displayed
	Transitioning bool

	HandoffVisible bool
	HandoffURL     string
	QRImage        string

	PageURL     string
	CheckoutURL string
	SheetURL    string
}

// HandoffViewModel renders the QR overlay on the desktop branch.
type HandoffViewModel struct {
	URL       string
	QRImage   string // external QR service request
	QRLocal   string // locally rendered fallback
	Product   string
	ProductID string
}

// ShareViewModel renders the share outcome notice.
type ShareViewModel struct {
	Outcome string
	Message string
	Title   string
	URL     string
}

// PaymentViewModel renders the mock checkout screen. The Pay button is
// permanently disabled; prices come from the static catalog.
type PaymentViewModel struct {
	Product *catalog.Product
	Variant *catalog.TextureVariant
}

func (s *Server) makeViewerViewModel(p *catalog.Product, neg *handoff.Negotiator) ViewerViewModel {
	name := neg.DisplayTexture()
	v := p.Variant(name)
	if v == nil {
		v = p.DefaultVariant()
	}
	handoffURL, visible := neg.Handoff()

	pageURL := strings.TrimSuffix(s.Cfg.BaseURL, "/") + "/product/" + p.ID
	vm := ViewerViewModel{
		Product:        p,
		Variant:        v,
		Transitioning:  neg.Transitioning(),
		HandoffVisible: visible,
		HandoffURL:     handoffURL,
		PageURL:        pageURL,
		CheckoutURL:    "/payment?product=" + p.ID + "&texture=" + strings.ToLower(v.Name),
		SheetURL:       "/sheet/" + p.ID,
	}
	if visible {
		vm.QRImage = handoff.QRImageURL(s.Cfg.QREndpoint, handoffURL)
	}
	return vm
}

func queryEscape(s string) string { return url.QueryEscape(s) }
