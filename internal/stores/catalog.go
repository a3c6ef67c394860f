package stores

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"luxeshop/internal/domain"
	applog "luxeshop/internal/log"
	"luxeshop/internal/repos"
	"luxeshop/internal/validate"
)

const (
	catalogStorageKey  = "catalog-storage"
	productsCollection = "products"
)

var ErrCategoryInUse = errors.New("category still has products")

// CatalogStore is the admin's source of truth for sellable products.
// The in-memory collection is authoritative; mutations are mirrored to
// the document store when one is wired, and a mirror failure never
// fails the mutation.
type CatalogStore struct {
	mu        sync.Mutex
	products  []domain.Product
	extraCats []string // admin-added categories with no products yet
	state     *repos.StateDB
	docs      *repos.DocStore
}

type catalogSnapshot struct {
	Products        []domain.Product `json:"products"`
	ExtraCategories []string         `json:"extraCategories,omitempty"`
}

// NewCatalogStore hydrates from the local snapshot, then the document
// store, then the fixed seed. docs may be nil for local-only mode.
func NewCatalogStore(state *repos.StateDB, docs *repos.DocStore) *CatalogStore {
	s := &CatalogStore{state: state, docs: docs}

	var snap catalogSnapshot
	found, err := state.Load(catalogStorageKey, &snap)
	if err != nil {
		applog.Error(nil, "catalog.hydrate.fail", err, nil)
	}
	if found {
		s.products = snap.Products
		s.extraCats = snap.ExtraCategories
		return s
	}

	if docs != nil {
		if raw, err := docs.ListAll(productsCollection, "createdAt", false); err != nil {
			applog.Error(nil, "catalog.remote.list.fail", err, nil)
		} else if len(raw) > 0 {
			if prods, err := repos.DecodeAll[domain.Product](raw); err == nil {
				s.products = prods
				s.persist()
				return s
			}
		}
	}

	s.products = seedProducts()
	s.persist()
	return s
}

func (s *CatalogStore) persist() {
	if err := s.state.Save(catalogStorageKey, catalogSnapshot{Products: s.products, ExtraCategories: s.extraCats}); err != nil {
		applog.Error(nil, "catalog.persist.fail", err, nil)
	}
}

func (s *CatalogStore) mirror(action string, fn func() error) {
	if s.docs == nil {
		return
	}
	if err := fn(); err != nil {
		applog.Error(nil, action, err, nil)
	}
}

// AddProduct assigns `{category-slug}-{unix-ms}` ids. The store trusts
// its callers: field validation lives in the form layer.
func (s *CatalogStore) AddProduct(data domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	data.ID = fmt.Sprintf("%s-%d", validate.Slug(data.Category), now.UnixMilli())
	data.CreatedAt = now
	data.UpdatedAt = now
	s.products = append(s.products, data)
	s.persist()
	s.mirror("catalog.remote.create.fail", func() error {
		return s.docs.Put(productsCollection, data.ID, data)
	})
	return data
}

// ProductUpdate is a typed partial update: nil fields are left alone.
type ProductUpdate struct {
	Name        *string
	Price       *float64
	Category    *string
	Description *string
	Image       *string
	Specs       *[]string
	Features    *[]string
	Rating      *float64
	Reviews     *int
	Stock       *int
}

func (u ProductUpdate) apply(p *domain.Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Specs != nil {
		p.Specs = *u.Specs
	}
	if u.Features != nil {
		p.Features = *u.Features
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.Reviews != nil {
		p.Reviews = *u.Reviews
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
}

// UpdateProduct is a no-op returning ok=false when the id is absent.
func (s *CatalogStore) UpdateProduct(id string, u ProductUpdate) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			u.apply(&s.products[i])
			s.products[i].UpdatedAt = time.Now().UTC()
			p := s.products[i]
			s.persist()
			s.mirror("catalog.remote.update.fail", func() error {
				return s.docs.Put(productsCollection, p.ID, p)
			})
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *CatalogStore) UpdateStock(id string, stock int) (domain.Product, bool) {
	return s.UpdateProduct(id, ProductUpdate{Stock: &stock})
}

// DeleteProduct performs no integrity check against carts or orders:
// both copy product fields instead of referencing the catalog.
func (s *CatalogStore) DeleteProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist()
			s.mirror("catalog.remote.delete.fail", func() error {
				_, err := s.docs.Delete(productsCollection, id)
				return err
			})
			return true
		}
	}
	return false
}

func (s *CatalogStore) GetProduct(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *CatalogStore) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogStore) ProductsByCategory(category string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Product
	for _, p := range s.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts matches a lowercase substring over name, description
// and category.
func (s *CatalogStore) SearchProducts(term string) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil
	}
	var out []domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			out = append(out, p)
		}
	}
	return out
}

// Categories derives the category list by grouping products; admin-
// added names without products appear with a zero count.
func (s *CatalogStore) Categories() []domain.CategorySummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoriesLocked()
}

func (s *CatalogStore) categoriesLocked() []domain.CategorySummary {
	counts := map[string]int{}
	for _, p := range s.products {
		counts[p.Category]++
	}
	for _, name := range s.extraCats {
		if _, ok := counts[name]; !ok {
			counts[name] = 0
		}
	}
	out := make([]domain.CategorySummary, 0, len(counts))
	for name, n := range counts {
		out = append(out, domain.CategorySummary{Name: name, Slug: validate.Slug(name), ProductCount: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddCategory registers an empty category; duplicates (case-
// insensitive, against derived and added names) are rejected.
func (s *CatalogStore) AddCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("category name cannot be empty")
	}
	for _, c := range s.categoriesLocked() {
		if strings.EqualFold(c.Name, name) {
			return errors.New("category already exists")
		}
	}
	s.extraCats = append(s.extraCats, name)
	s.persist()
	return nil
}

// DeleteCategory rejects deletion while any product still carries the
// category; an empty category is simply removed from the added list.
func (s *CatalogStore) DeleteCategory(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if strings.EqualFold(p.Category, name) {
			return ErrCategoryInUse
		}
	}
	for i, c := range s.extraCats {
		if strings.EqualFold(c, name) {
			s.extraCats = append(s.extraCats[:i], s.extraCats[i+1:]...)
			s.persist()
			return nil
		}
	}
	return nil
}
