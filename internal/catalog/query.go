package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/jafarshop/storefront/internal/domain"
)

// SortOrder selects the result ordering for Search
type SortOrder string

const (
	SortRelevance SortOrder = "relevance"
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
)

// IsValid checks if the sort order is one of the declared set
func (s SortOrder) IsValid() bool {
	switch s {
	case SortRelevance, SortNewest, SortPriceAsc, SortPriceDesc, SortRating:
		return true
	default:
		return false
	}
}

// Filters narrow a search. Zero values mean "not filtered"; provided
// filters compose with AND semantics.
type Filters struct {
	Category string
	SellerID string
	Brand    string
	MinPrice float64
	MaxPrice float64
	Rating   float64
	InStock  bool
	Sort     SortOrder
}

// Search matches the query case-insensitively against product name,
// description and tags, applies the filters, and orders the result. An
// empty query matches everything.
func Search(query string, filters Filters) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	var out []domain.Product
	for _, p := range products {
		if q != "" && !matches(p, q) {
			continue
		}
		if filters.Category != "" && p.Category != filters.Category {
			continue
		}
		if filters.SellerID != "" && p.SellerID != filters.SellerID {
			continue
		}
		if filters.Brand != "" && !strings.EqualFold(p.Brand, filters.Brand) {
			continue
		}
		if filters.MinPrice > 0 && p.Price < filters.MinPrice {
			continue
		}
		if filters.MaxPrice > 0 && p.Price > filters.MaxPrice {
			continue
		}
		if filters.Rating > 0 && p.Rating < filters.Rating {
			continue
		}
		if filters.InStock && p.Stock <= 0 {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, q, filters.Sort)
	return out
}

func matches(p domain.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// relevanceRank orders matches by where the hit occurred: name hits rank
// ahead of description hits, which rank ahead of tag hits
func relevanceRank(p domain.Product, q string) int {
	if q == "" {
		return 0
	}
	if strings.Contains(strings.ToLower(p.Name), q) {
		return 0
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return 1
	}
	return 2
}

func sortProducts(items []domain.Product, q string, order SortOrder) {
	switch order {
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		})
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	case SortRating:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	case SortRelevance:
		sort.SliceStable(items, func(i, j int) bool {
			ri, rj := relevanceRank(items[i], q), relevanceRank(items[j], q)
			if ri != rj {
				return ri < rj
			}
			return items[i].Rating > items[j].Rating
		})
	}
}

// Products returns all catalog products
func Products() []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}

// Categories returns all categories in display order
func Categories() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Sellers returns all sellers
func Sellers() []domain.Seller {
	out := make([]domain.Seller, len(sellers))
	copy(out, sellers)
	return out
}

// Offers returns all offers regardless of validity
func Offers() []domain.Offer {
	out := make([]domain.Offer, len(offers))
	copy(out, offers)
	return out
}

// ProductByID finds a product by id
func ProductByID(id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ProductBySlug finds a product by slug
func ProductBySlug(slug string) (domain.Product, bool) {
	for _, p := range products {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.Product{}, false
}

// CategoryBySlug finds a category by slug
func CategoryBySlug(slug string) (domain.Category, bool) {
	for _, c := range categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return domain.Category{}, false
}

// SellerBySlug finds a seller by slug
func SellerBySlug(slug string) (domain.Seller, bool) {
	for _, s := range sellers {
		if s.Slug == slug {
			return s, true
		}
	}
	return domain.Seller{}, false
}

// OfferByID finds an offer by id
func OfferByID(id string) (domain.Offer, bool) {
	for _, o := range offers {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Offer{}, false
}

// ProductsByCategory returns the products under a category slug
func ProductsByCategory(slug string) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out
}

// ProductsBySeller returns a seller's products
func ProductsBySeller(sellerID string) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}

// FeaturedProducts returns the products flagged for the home page
func FeaturedProducts() []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// BestSelling returns up to limit products by review count, descending
func BestSelling(limit int) []domain.Product {
	out := Products()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReviewCount > out[j].ReviewCount
	})
	return truncate(out, limit)
}

// NewArrivals returns up to limit products by creation time, newest first
func NewArrivals(limit int) []domain.Product {
	out := Products()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return truncate(out, limit)
}

// RelatedProducts returns up to limit products sharing the given product's
// category, best rated first
func RelatedProducts(productID string, limit int) []domain.Product {
	p, ok := ProductByID(productID)
	if !ok {
		return nil
	}
	var out []domain.Product
	for _, other := range products {
		if other.ID != productID && other.Category == p.Category {
			out = append(out, other)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return truncate(out, limit)
}

// TopSellers returns up to limit sellers by rating, descending
func TopSellers(limit int) []domain.Seller {
	out := Sellers()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return truncate(out, limit)
}

// ActiveOffers returns the offers whose validity window covers now and
// which are marked enabled
func ActiveOffers(now time.Time) []domain.Offer {
	var out []domain.Offer
	for _, o := range offers {
		if o.ActiveAt(now) {
			out = append(out, o)
		}
	}
	return out
}

// Stats is the quick-stats summary shown on the admin dashboard
type Stats struct {
	TotalProducts   int     `json:"total_products"`
	TotalCategories int     `json:"total_categories"`
	TotalSellers    int     `json:"total_sellers"`
	TotalOffers     int     `json:"total_offers"`
	AverageRating   float64 `json:"average_rating"`
}

// QuickStats summarizes the catalog
func QuickStats() Stats {
	sum := 0.0
	for _, p := range products {
		sum += p.Rating
	}
	avg := 0.0
	if len(products) > 0 {
		avg = sum / float64(len(products))
	}
	return Stats{
		TotalProducts:   len(products),
		TotalCategories: len(categories),
		TotalSellers:    len(sellers),
		TotalOffers:     len(offers),
		AverageRating:   avg,
	}
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
