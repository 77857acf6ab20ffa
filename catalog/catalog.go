// Package catalog loads the read-only product list shown by the storefront.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

//go:embed products.yaml
var defaultProductsYAML []byte

// Product is an immutable catalog entry. Price is nil when the product has no listed price.
type Product struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Images      []string `yaml:"images"`
	Price       *float64 `yaml:"price,omitempty"`
	Weight      string   `yaml:"weight,omitempty"`
	Dimensions  string   `yaml:"dimensions,omitempty"`
}

// PriceOrZero returns the listed price, or 0 for unpriced products.
func (p Product) PriceOrZero() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// PrimaryImage returns the first image reference, or "" when the product has none.
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// IsImagePath reports whether an image reference points at a file or URL
// rather than being a literal glyph to draw as text.
func IsImagePath(ref string) bool {
	if strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "http") {
		return true
	}
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".gif", ".webp":
		return true
	}
	return false
}

// Catalog is an ordered, read-only product sequence.
type Catalog struct {
	products []Product
}

// New builds a catalog, rejecting duplicate IDs and negative or non-finite prices.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{products: make([]Product, len(products))}
	copy(c.products, products)

	seen := make(map[int]bool, len(products))
	for _, p := range c.products {
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		if p.Price != nil && (math.IsNaN(*p.Price) || math.IsInf(*p.Price, 0)) {
			return nil, fmt.Errorf("product %d has non-finite price %v", p.ID, *p.Price)
		}
		if p.Price != nil && *p.Price < 0 {
			return nil, fmt.Errorf("product %d has negative price %.2f", p.ID, *p.Price)
		}
		seen[p.ID] = true
	}
	return c, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// At returns the product at index i.
func (c *Catalog) At(i int) Product {
	return c.products[i]
}

// Products returns a copy of the product sequence.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// yamlFile is the on-disk layout of a YAML catalog.
type yamlFile struct {
	Products []Product `yaml:"products"`
}

// csvRow is the on-disk layout of a CSV catalog. Images are separated by '|'.
type csvRow struct {
	ID          int    `csv:"id"`
	Title       string `csv:"title"`
	Description string `csv:"description"`
	Images      string `csv:"images"`
	Price       string `csv:"price"`
	Weight      string `csv:"weight"`
	Dimensions  string `csv:"dimensions"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	products, err := ParseYAML(defaultProductsYAML)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}
	return New(products)
}

// Load reads a catalog file, choosing the format by extension (.yaml/.yml or .csv).
// An empty path loads the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var products []Product
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		products, err = ParseYAML(data)
	case ".csv":
		products, err = ParseCSV(data)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return New(products)
}

// ParseYAML decodes a `products:` list.
func ParseYAML(data []byte) ([]Product, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return f.Products, nil
}

// ParseCSV decodes a header-first CSV catalog.
func ParseCSV(data []byte) ([]Product, error) {
	var rows []csvRow
	if err := gocsv.Unmarshal(bytes.NewReader(data), &rows); err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(rows))
	for _, r := range rows {
		p := Product{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Weight:      r.Weight,
			Dimensions:  r.Dimensions,
		}
		for _, img := range strings.Split(r.Images, "|") {
			if img = strings.TrimSpace(img); img != "" {
				p.Images = append(p.Images, img)
			}
		}
		if raw := strings.TrimSpace(r.Price); raw != "" {
			price, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("product %d price: %w", r.ID, err)
			}
			p.Price = &price
		}
		products = append(products, p)
	}
	return products, nil
}
