package repositories

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"think-shop/models"
)

var ErrCatalogUnavailable = errors.New("catalog unavailable")

// CatalogRepository supplies the immutable product list for the session.
// The first successful fetch populates it for good; concurrent fetchers
// share a single in-flight load instead of racing or proceeding empty.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []models.Product
	group    singleflight.Group
	source   func() ([]models.Product, error)
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{source: DemoProducts}
}

// NewCatalogRepositoryWithSource swaps the product source, for tests and
// alternate catalogs.
func NewCatalogRepositoryWithSource(source func() ([]models.Product, error)) *CatalogRepository {
	return &CatalogRepository{source: source}
}

// FetchCatalog loads the product list. Idempotent once populated; a failed
// load leaves the catalog empty and the error is the caller's notice.
func (r *CatalogRepository) FetchCatalog(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	if len(r.products) > 0 {
		defer r.mu.RUnlock()
		return r.snapshot(), nil
	}
	r.mu.RUnlock()

	result, err, _ := r.group.Do("catalog", func() (interface{}, error) {
		r.mu.RLock()
		if len(r.products) > 0 {
			defer r.mu.RUnlock()
			return r.snapshot(), nil
		}
		r.mu.RUnlock()

		products, err := r.source()
		if err != nil {
			return nil, err
		}
		if len(products) == 0 {
			return nil, ErrCatalogUnavailable
		}

		r.mu.Lock()
		r.products = products
		r.mu.Unlock()
		return products, nil
	})
	if err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return append([]models.Product(nil), result.([]models.Product)...), nil
}

// snapshot returns a copy so callers never mutate the shared slice.
// Caller must hold at least a read lock.
func (r *CatalogRepository) snapshot() []models.Product {
	return append([]models.Product(nil), r.products...)
}

func (r *CatalogRepository) GetProductByID(id int) (*models.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, true
		}
	}
	return nil, false
}

func (r *CatalogRepository) GetProductBySlug(category models.Category, slug string) (*models.Product, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].Category == category && r.products[i].Slug == slug {
			p := r.products[i]
			return &p, true
		}
	}
	return nil, false
}

// Search filters by category and a case-insensitive name/description term.
// Empty category or "all" matches every category; empty term matches all.
func (r *CatalogRepository) Search(category models.Category, term string) []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))

	matched := []models.Product{}
	for _, p := range r.products {
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

func (r *CatalogRepository) GetFeaturedProducts() []models.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	featured := []models.Product{}
	for _, p := range r.products {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return featured
}

// CategoryCounts tallies catalog products per category, for the storefront
// menu badges.
func (r *CatalogRepository) CategoryCounts() map[models.Category]int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := map[models.Category]int{}
	for _, c := range models.Categories {
		counts[c] = 0
	}
	for _, p := range r.products {
		if _, ok := counts[p.Category]; ok {
			counts[p.Category]++
		}
	}
	return counts
}

// Loaded reports whether a fetch has succeeded this session.
func (r *CatalogRepository) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products) > 0
}

// SortedCategories returns the fixed category enumeration in display order.
func SortedCategories(counts map[models.Category]int) []models.Category {
	keys := make([]models.Category, 0, len(counts))
	for c := range counts {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool {
		return categoryRank(keys[i]) < categoryRank(keys[j])
	})
	return keys
}

func categoryRank(c models.Category) int {
	for i, v := range models.Categories {
		if v == c {
			return i
		}
	}
	return len(models.Categories)
}
