package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jafarshop/storefront/internal/domain"
)

func productIDs(t *testing.T, query string, filters Filters) []string {
	t.Helper()
	var out []string
	for _, p := range Search(query, filters) {
		out = append(out, p.ID)
	}
	return out
}

func TestSearch_EmptyQueryMatchesEverything(t *testing.T) {
	results := Search("", Filters{})
	assert.Len(t, results, len(Products()))
}

func TestSearch_MatchesNameDescriptionAndTags(t *testing.T) {
	// Name hit
	assert.Contains(t, productIDs(t, "Samsung", Filters{}), "1")
	// Description hit
	assert.Contains(t, productIDs(t, "الوسادة الهوائية", Filters{}), "6")
	// Tag hit
	assert.Contains(t, productIDs(t, "ماركيز", Filters{}), "7")
}

func TestSearch_IsCaseInsensitive(t *testing.T) {
	assert.Equal(t, productIDs(t, "samsung", Filters{}), productIDs(t, "SAMSUNG", Filters{}))
}

func TestSearch_NoMatches(t *testing.T) {
	assert.Empty(t, Search("لا يوجد شيء بهذا الاسم", Filters{}))
}

func TestSearch_FiltersCompose(t *testing.T) {
	// electronics alone has three products; narrowing by brand leaves one
	assert.Len(t, Search("", Filters{Category: "electronics"}), 3)

	results := Search("", Filters{Category: "electronics", Brand: "Dell"})
	require.Len(t, results, 1)
	assert.Equal(t, "2", results[0].ID)
}

func TestSearch_PriceBand(t *testing.T) {
	results := Search("", Filters{MinPrice: 100000, MaxPrice: 300000})
	for _, p := range results {
		assert.GreaterOrEqual(t, p.Price, 100000.0)
		assert.LessOrEqual(t, p.Price, 300000.0)
	}
	assert.NotEmpty(t, results)
}

func TestSearch_RatingFloor(t *testing.T) {
	for _, p := range Search("", Filters{Rating: 4.7}) {
		assert.GreaterOrEqual(t, p.Rating, 4.7)
	}
}

func TestSearch_SortPrice(t *testing.T) {
	asc := Search("", Filters{Sort: SortPriceAsc})
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := Search("", Filters{Sort: SortPriceDesc})
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}
}

func TestSearch_SortNewest(t *testing.T) {
	results := Search("", Filters{Sort: SortNewest})
	require.NotEmpty(t, results)
	assert.Equal(t, "8", results[0].ID)
	for i := 1; i < len(results); i++ {
		assert.False(t, results[i-1].CreatedAt.Before(results[i].CreatedAt))
	}
}

func TestRelevanceRank(t *testing.T) {
	p := domain.Product{
		Name:        "هاتف ذكي",
		Description: "جهاز بكاميرا ممتازة",
		Tags:        []string{"سامسونج"},
	}

	assert.Equal(t, 0, relevanceRank(p, "هاتف"))
	assert.Equal(t, 1, relevanceRank(p, "كاميرا"))
	assert.Equal(t, 2, relevanceRank(p, "سامسونج"))
	assert.Equal(t, 0, relevanceRank(p, ""))
}

func TestSearch_SortRelevance_TieBrokenByRating(t *testing.T) {
	// "رجالي" hits products 4 and 8 in the name; the higher-rated one wins
	results := Search("رجالي", Filters{Sort: SortRelevance})
	require.Len(t, results, 2)
	assert.Equal(t, "8", results[0].ID) // rating 4.4
	assert.Equal(t, "4", results[1].ID) // rating 4.3
}

func TestSortOrderIsValid(t *testing.T) {
	assert.True(t, SortRelevance.IsValid())
	assert.True(t, SortNewest.IsValid())
	assert.False(t, SortOrder("alphabetical").IsValid())
}

func TestLookups(t *testing.T) {
	p, ok := ProductByID("3")
	require.True(t, ok)
	assert.Equal(t, "airpods-pro", p.Slug)

	p, ok = ProductBySlug("dell-xps-15")
	require.True(t, ok)
	assert.Equal(t, "2", p.ID)

	_, ok = ProductByID("999")
	assert.False(t, ok)

	cat, ok := CategoryBySlug("fashion")
	require.True(t, ok)
	assert.Equal(t, "أزياء", cat.Name)

	seller, ok := SellerBySlug("modern-tech-store")
	require.True(t, ok)
	assert.Equal(t, "1", seller.ID)
}

func TestCategoriesAreInDisplayOrder(t *testing.T) {
	cats := Categories()
	for i := 1; i < len(cats); i++ {
		assert.LessOrEqual(t, cats[i-1].Order, cats[i].Order)
	}
}

func TestProductsByCategoryAndSeller(t *testing.T) {
	for _, p := range ProductsByCategory("electronics") {
		assert.Equal(t, "electronics", p.Category)
	}
	assert.Len(t, ProductsByCategory("electronics"), 3)

	for _, p := range ProductsBySeller("2") {
		assert.Equal(t, "2", p.SellerID)
	}
}

func TestFeaturedProducts(t *testing.T) {
	featured := FeaturedProducts()
	require.NotEmpty(t, featured)
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}
}

func TestBestSellingAndNewArrivalsHonorLimit(t *testing.T) {
	best := BestSelling(3)
	require.Len(t, best, 3)
	assert.Equal(t, "7", best[0].ID) // 340 reviews

	arrivals := NewArrivals(2)
	require.Len(t, arrivals, 2)
	assert.Equal(t, "8", arrivals[0].ID)
}

func TestRelatedProducts(t *testing.T) {
	related := RelatedProducts("1", 4)
	require.NotEmpty(t, related)
	for _, p := range related {
		assert.Equal(t, "electronics", p.Category)
		assert.NotEqual(t, "1", p.ID)
	}

	assert.Nil(t, RelatedProducts("999", 4))
}

func TestActiveOffers(t *testing.T) {
	// Mid-summer 2024: the summer fashion offer and back-to-school overlap
	during := ActiveOffers(time.Date(2024, 8, 20, 12, 0, 0, 0, time.UTC))
	require.Len(t, during, 2)

	// After every validity window has closed
	after := ActiveOffers(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, after)
}

func TestQuickStats(t *testing.T) {
	stats := QuickStats()
	assert.Equal(t, 8, stats.TotalProducts)
	assert.Equal(t, 6, stats.TotalCategories)
	assert.Equal(t, 3, stats.TotalSellers)
	assert.Equal(t, 4, stats.TotalOffers)
	assert.InDelta(t, 4.6375, stats.AverageRating, 0.0001)
}
