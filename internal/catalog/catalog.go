package catalog

import "strings"

// Category classifies a product into one of the storefront departments.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFashion     Category = "Fashion"
	CategoryHome        Category = "Home"
	CategoryLifestyle   Category = "Lifestyle"

	// CategoryAll is the pseudo-category that matches every product.
	CategoryAll Category = "All"
)

// Categories lists the real departments in display order.
func Categories() []Category {
	return []Category{CategoryElectronics, CategoryFashion, CategoryHome, CategoryLifestyle}
}

// ParseCategory normalises an arbitrary value into a known category. Unknown or
// empty values fall back to CategoryAll so a bad query parameter never breaks
// filtering.
func ParseCategory(v string) Category {
	switch Category(v) {
	case CategoryElectronics, CategoryFashion, CategoryHome, CategoryLifestyle:
		return Category(v)
	default:
		return CategoryAll
	}
}

// Product is a single catalog entry. Products are defined statically at startup
// and never mutated for the lifetime of the process.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Stock       int      `json:"stock"`
}

// LowStock reports whether the remaining stock warrants an urgency badge.
func (p Product) LowStock() bool {
	return p.Stock < 10
}

// Store is the immutable in-memory product catalog.
type Store struct {
	products []Product
	byID     map[string]Product
}

// NewStore builds a store over the given products, preserving their order.
func NewStore(products []Product) *Store {
	s := &Store{
		products: make([]Product, len(products)),
		byID:     make(map[string]Product, len(products)),
	}
	copy(s.products, products)
	for _, p := range s.products {
		s.byID[p.ID] = p
	}
	return s
}

// List returns every product in insertion order.
func (s *Store) List() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get looks up a single product by id.
func (s *Store) Get(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Filter returns the products matching both predicates: the category must equal
// the requested one (CategoryAll matches everything) and the query, when not
// empty, must be a case-insensitive substring of the name or description.
// Order follows the catalog's insertion order.
func (s *Store) Filter(category Category, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []Product
	for _, p := range s.products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
