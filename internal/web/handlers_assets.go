package web

import (
	"net/http"
	"strings"

	"showroom/internal/sheet"

	qrcode "github.com/skip2/go-qrcode"
)

const assetCacheControl = "public, max-age=3600"

// maxQRDataLen bounds the data a QR request may carry; page URLs are short.
const maxQRDataLen = 2048

// handleQR serves GET /qr.png?data=<url>, a locally rendered QR image. The
// overlay falls back to it when the external QR service is unreachable (demo
// stands are often offline).
func (s *Server) handleQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data := r.URL.Query().Get("data")
	if data == "" || len(data) > maxQRDataLen {
		http.Error(w, "bad data", 400)
		return
	}
	png, err := qrcode.Encode(data, qrcode.Medium, 200)
	if err != nil {
		http.Error(w, "failed to encode", 500)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", assetCacheControl)
	_, _ = w.Write(png)
}

// handleSheet serves GET /sheet/<id>, the downloadable PDF product sheet with
// the variant price table and a scannable link to the viewer page.
func (s *Server) handleSheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id := strings.Trim(strings.TrimPrefix(r.URL.Path, "/sheet/"), "/")
	p := s.Catalog().Product(id)
	if p == nil {
		http.NotFound(w, r)
		return
	}

	active := ""
	if neg, ok := s.negotiatorFromSession(r.Context(), r); ok && neg.Product() != nil && neg.Product().ID == p.ID {
		active = neg.ActiveTexture()
	}
	shareURL := strings.TrimSuffix(s.Cfg.BaseURL, "/") + "/product/" + p.ID

	pdf, err := sheet.Generate(p, active, shareURL)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="product-sheet.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
