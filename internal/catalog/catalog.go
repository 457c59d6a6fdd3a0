package catalog

type Product struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Rating      int      `json:"rating,omitempty"`
	Reviews     int      `json:"reviews,omitempty"`
}

var (
	defaultSizes  = []string{"XS", "S", "M", "L", "XL"}
	defaultColors = []string{"Black", "White"}
)

// ImageList falls back to the primary image when no gallery is defined.
func (p Product) ImageList() []string {
	if len(p.Images) == 0 {
		return []string{p.Image}
	}
	return p.Images
}

func (p Product) SizeOptions() []string {
	if len(p.Sizes) == 0 {
		return defaultSizes
	}
	return p.Sizes
}

func (p Product) ColorOptions() []string {
	if len(p.Colors) == 0 {
		return defaultColors
	}
	return p.Colors
}

type Catalog struct {
	products []Product
	byID     map[int]Product
}

func New() *Catalog {
	return newFrom(defaultProducts)
}

func newFrom(products []Product) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[int]Product, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
	}
	return c
}

func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) ByID(id int) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// ByCategory preserves catalog order both for categories and their products.
func (c *Catalog) ByCategory() ([]string, map[string][]Product) {
	categories := make([]string, 0)
	grouped := make(map[string][]Product)
	for _, p := range c.products {
		if _, ok := grouped[p.Category]; !ok {
			categories = append(categories, p.Category)
		}
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	return categories, grouped
}

var defaultProducts = []Product{
	{
		ID:          1,
		Name:        "Urban Black Tee",
		Price:       89,
		Image:       "/assets/tshirt-black.jpg",
		Category:    "T-Shirts",
		Description: "Heavyweight cotton tee with a modern streetwear fit.",
		Images:      []string{"/assets/tshirt-black.jpg", "/assets/tshirt-white.jpg"},
		Sizes:       []string{"XS", "S", "M", "L", "XL"},
		Colors:      []string{"Black", "White"},
		Rating:      5,
		Reviews:     124,
	},
	{
		ID:          2,
		Name:        "Electric Sneakers",
		Price:       249,
		Image:       "/assets/sneakers-white.jpg",
		Category:    "Sneakers",
		Description: "Lightweight sneakers built for the city.",
		Images:      []string{"/assets/sneakers-white.jpg", "/assets/sneakers-black.jpg"},
		Sizes:       []string{"7", "8", "9", "10", "11", "12"},
		Colors:      []string{"White", "Black"},
		Rating:      4,
		Reviews:     89,
	},
	{
		ID:          3,
		Name:        "Street Shorts",
		Price:       129,
		Image:       "/assets/shorts-black.jpg",
		Category:    "Shorts",
		Description: "Relaxed-fit shorts with deep utility pockets.",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Black", "Gray"},
		Rating:      4,
		Reviews:     56,
	},
	{
		ID:          4,
		Name:        "Chain Link Necklace",
		Price:       199,
		Image:       "/assets/jewelry-chain.jpg",
		Category:    "Jewelry",
		Description: "Stainless chain link necklace with matte finish.",
		Colors:      []string{"Silver", "Gold"},
		Rating:      5,
		Reviews:     42,
	},
	{
		ID:       5,
		Name:     "Urban Socks",
		Price:    29,
		Image:    "/assets/socks-black.jpg",
		Category: "Socks",
		Sizes:    []string{"S", "M", "L"},
		Colors:   []string{"Black", "White"},
		Rating:   4,
		Reviews:  203,
	},
	{
		ID:          6,
		Name:        "URBX Signature",
		Price:       179,
		Image:       "/assets/fragrance-black.jpg",
		Category:    "Fragrances",
		Description: "Signature eau de parfum with notes of cedar and amber.",
		Sizes:       []string{"50ml", "100ml"},
		Rating:      5,
		Reviews:     67,
	},
}
