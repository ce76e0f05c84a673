package catalog

// TextureVariant is one finish offered for a product. Name is unique within
// the product's variant set; the first variant in the list is the default
// selection when a session starts.
type TextureVariant struct {
	Name     string `yaml:"name"`
	Model    string `yaml:"model"`    // GLB asset for the 3D viewer
	IOSModel string `yaml:"iosModel"` // USDZ companion for Quick Look AR
	Preview  string `yaml:"preview"`  // swatch/chip image
	Poster   string `yaml:"poster"`   // placeholder shown while the model loads
	Price    int    `yaml:"price"`    // whole currency units
}

// Product is a single showroom item with its texture variants.
type Product struct {
	ID       string           `yaml:"id"`
	Title    string           `yaml:"title"`
	Variants []TextureVariant `yaml:"variants"`
}

// Catalog is the full static product table served by the demo.
type Catalog struct {
	Products []Product `yaml:"products"`
}
