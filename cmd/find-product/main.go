package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jafarshop/storefront/internal/catalog"
	"github.com/jafarshop/storefront/internal/format"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/find-product/main.go <query>")
		fmt.Println("Example: go run cmd/find-product/main.go \"سامسونج\"")
		os.Exit(1)
	}

	query := strings.Join(os.Args[1:], " ")

	fmt.Printf("🔍 Searching for: %s\n\n", query)

	results := catalog.Search(query, catalog.Filters{Sort: catalog.SortRelevance})
	if len(results) == 0 {
		fmt.Printf("❌ No products match '%s'.\n", query)
		os.Exit(1)
	}

	fmt.Printf("✅ Found %d product(s):\n\n", len(results))
	for _, p := range results {
		fmt.Printf("ID: %s\n", p.ID)
		fmt.Printf("Name: %s\n", p.Name)
		fmt.Printf("SKU: %s\n", p.SKU)
		fmt.Printf("Price: %s\n", format.Price(p.Price))
		if p.OriginalPrice > p.Price {
			fmt.Printf("Discount: %d%% (was %s)\n", format.DiscountPercent(p.OriginalPrice, p.Price), format.Price(p.OriginalPrice))
		}
		fmt.Printf("Category: %s\n", p.Category)
		fmt.Printf("Stock: %d\n", p.Stock)
		fmt.Printf("Rating: %.1f (%d reviews)\n", p.Rating, p.ReviewCount)
		fmt.Println()
	}
}
