package services

import (
	"fmt"
	"strings"
	"sync"

	"stayhub/errors"
	"stayhub/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// ProductService holds the grocery catalog in memory
type ProductService struct {
	mu       sync.RWMutex
	products []models.Product
	nextID   int
}

// NewProductService creates a catalog seeded with the given products
func NewProductService(seed []models.Product) *ProductService {
	return &ProductService{
		products: append([]models.Product(nil), seed...),
		nextID:   len(seed) + 1,
	}
}

// normalizeInput lowercases and strips accents from a query string
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// createMatcher builds a closestmatch index over a keyword list
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity scores two strings between 0 and 1
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

const fuzzyThreshold = 0.6

// GetAll returns the catalog filtered by category and search query.
// Substring matches on name, description and category come first; when
// nothing matches literally, near-miss names are ranked by similarity.
func (s *ProductService) GetAll(category, search string) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}

	if search == "" {
		return filtered
	}

	query := normalizeInput(search)
	exact := make([]models.Product, 0)
	for _, p := range filtered {
		if strings.Contains(normalizeInput(p.Name), query) ||
			strings.Contains(normalizeInput(p.Description), query) ||
			strings.Contains(normalizeInput(p.Category), query) {
			exact = append(exact, p)
		}
	}
	if len(exact) > 0 {
		return exact
	}

	// Fall back to a fuzzy pass: match the query against a category via
	// closestmatch, and against product names by similarity.
	matchedCategory := ""
	if cm := createMatcher(s.categoryListLocked()); cm != nil {
		if closest := cm.Closest(query); closest != "" && calculateSimilarity(query, closest) >= fuzzyThreshold {
			matchedCategory = closest
		}
	}

	fuzzy := make([]models.Product, 0)
	for _, p := range filtered {
		if matchedCategory != "" && normalizeInput(p.Category) == matchedCategory {
			fuzzy = append(fuzzy, p)
			continue
		}
		if bestTokenSimilarity(query, normalizeInput(p.Name)) >= fuzzyThreshold {
			fuzzy = append(fuzzy, p)
		}
	}
	return fuzzy
}

// bestTokenSimilarity scores a query against the whole name and each of
// its words, keeping the best score.
func bestTokenSimilarity(query, name string) float64 {
	best := calculateSimilarity(query, name)
	for _, token := range strings.Fields(name) {
		if sim := calculateSimilarity(query, token); sim > best {
			best = sim
		}
	}
	return best
}

func (s *ProductService) categoryListLocked() []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, p := range s.products {
		normalized := normalizeInput(p.Category)
		if normalized != "" && !seen[normalized] {
			seen[normalized] = true
			categories = append(categories, normalized)
		}
	}
	return categories
}

// GetFeatured returns the featured products
func (s *ProductService) GetFeatured() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := make([]models.Product, 0)
	for _, p := range s.products {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// GetByID returns the product with the given id
func (s *ProductService) GetByID(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("product %s not found", id), errors.ErrProductNotFound)
}

// Create appends a product with a fresh id
func (s *ProductService) Create(product models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = fmt.Sprintf("%d", s.nextID)
	s.nextID++
	s.products = append(s.products, product)
	return product
}

// ProductUpdate enumerates the fields an admin may change. Nil means keep.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	Category    *string
	Stock       *int
	Featured    *bool
	Discount    *float64
	Unit        *string
}

// Update applies a partial update to a product
func (s *ProductService) Update(id string, update ProductUpdate) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Description != nil {
			p.Description = *update.Description
		}
		if update.Price != nil {
			p.Price = *update.Price
		}
		if update.Image != nil {
			p.Image = *update.Image
		}
		if update.Category != nil {
			p.Category = *update.Category
		}
		if update.Stock != nil {
			p.Stock = *update.Stock
		}
		if update.Featured != nil {
			p.Featured = *update.Featured
		}
		if update.Discount != nil {
			p.Discount = *update.Discount
		}
		if update.Unit != nil {
			p.Unit = *update.Unit
		}
		return *p, nil
	}
	return models.Product{}, errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("product %s not found", id), errors.ErrProductNotFound)
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return errors.NewAppError(errors.ErrCodeNotFound, fmt.Sprintf("product %s not found", id), errors.ErrProductNotFound)
}
