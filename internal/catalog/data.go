// Package catalog serves the storefront's reference data: products,
// categories, sellers and offers, queried through pure predicate
// functions. The data stands in for a real backend and is never mutated.
package catalog

import (
	"time"

	"github.com/jafarshop/storefront/internal/domain"
)

func date(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

var categories = []domain.Category{
	{
		ID: "1", Name: "إلكترونيات", NameEn: "Electronics",
		Description: "أحدث الأجهزة الإلكترونية والتقنية",
		Icon:        "📱", Slug: "electronics",
		ProductCount: 150, IsActive: true, Order: 1,
		CreatedAt: date("2024-01-01T00:00:00Z"),
	},
	{
		ID: "2", Name: "أزياء", NameEn: "Fashion",
		Description: "أحدث صيحات الموضة للرجال والنساء",
		Icon:        "👕", Slug: "fashion",
		ProductCount: 200, IsActive: true, Order: 2,
		CreatedAt: date("2024-01-01T00:00:00Z"),
	},
	{
		ID: "3", Name: "منزل وحديقة", NameEn: "Home & Garden",
		Description: "كل ما تحتاجه لمنزلك وحديقتك",
		Icon:        "🏠", Slug: "home-garden",
		ProductCount: 120, IsActive: true, Order: 3,
		CreatedAt: date("2024-01-01T00:00:00Z"),
	},
	{
		ID: "4", Name: "رياضة ولياقة", NameEn: "Sports & Fitness",
		Description: "معدات رياضية ولياقة بدنية",
		Icon:        "⚽", Slug: "sports-fitness",
		ProductCount: 80, IsActive: true, Order: 4,
		CreatedAt: date("2024-01-01T00:00:00Z"),
	},
	{
		ID: "5", Name: "كتب ومكتبة", NameEn: "Books & Stationery",
		Description: "كتب وأدوات مكتبية ومدرسية",
		Icon:        "📚", Slug: "books-stationery",
		ProductCount: 90, IsActive: true, Order: 5,
		CreatedAt: date("2024-01-01T00:00:00Z"),
	},
	{
		ID: "6", Name: "جمال وعناية", NameEn: "Beauty & Care",
		Description: "منتجات التجميل والعناية الشخصية",
		Icon:        "💄", Slug: "beauty-care",
		ProductCount: 110, IsActive: true, Order: 6,
		CreatedAt: date("2024-01-01T00:00:00Z"),
	},
}

var sellers = []domain.Seller{
	{
		ID: "1", Name: "متجر التقنية الحديثة",
		Description: "متخصصون في أحدث الأجهزة الإلكترونية والتقنية المتطورة",
		Rating:      4.8, ReviewCount: 1250, ProductCount: 85, TotalSales: 15000,
		IsVerified: true, Slug: "modern-tech-store",
		Email: "info@moderntech.sy", Phone: "+963 11 1234567",
		Address:  "شارع الثورة، دمشق، سوريا",
		JoinedAt: date("2023-01-15T00:00:00Z"),
	},
	{
		ID: "2", Name: "بوتيك الأناقة",
		Description: "أحدث صيحات الموضة والأزياء العصرية للرجال والنساء",
		Rating:      4.6, ReviewCount: 890, ProductCount: 120, TotalSales: 8500,
		IsVerified: true, Slug: "elegance-boutique",
		Email: "info@elegance.sy", Phone: "+963 11 2345678",
		Address:  "شارع بغداد، دمشق، سوريا",
		JoinedAt: date("2023-03-20T00:00:00Z"),
	},
	{
		ID: "3", Name: "متجر المنزل العصري",
		Description: "كل ما تحتاجه لجعل منزلك أكثر جمالاً وراحة",
		Rating:      4.7, ReviewCount: 650, ProductCount: 95, TotalSales: 6200,
		IsVerified: false, Slug: "modern-home-store",
		Email: "info@modernhome.sy", Phone: "+963 11 3456789",
		Address:  "شارع المتنبي، حلب، سوريا",
		JoinedAt: date("2023-06-10T00:00:00Z"),
	},
}

var products = []domain.Product{
	{
		ID: "1", Name: "هاتف ذكي Samsung Galaxy S23",
		Description: "هاتف ذكي متطور بكاميرا عالية الدقة وأداء ممتاز",
		Price:       850000, OriginalPrice: 950000, Discount: 10,
		Images:   []string{"/images/products/samsung-galaxy-s23.jpg"},
		Category: "electronics", Subcategory: "smartphones", Brand: "Samsung",
		SellerID: "1", Stock: 25, Rating: 4.8, ReviewCount: 156,
		Tags: []string{"هاتف ذكي", "سامسونج", "كاميرا", "5G"},
		Specifications: map[string]string{
			"الشاشة":  "6.1 بوصة Dynamic AMOLED",
			"المعالج": "Snapdragon 8 Gen 2",
			"الذاكرة": "8GB RAM",
		},
		Features: []string{"مقاوم للماء والغبار IP68", "شحن سريع 25W", "شاشة 120Hz"},
		IsActive: true, IsFeatured: true,
		Slug: "samsung-galaxy-s23", SKU: "SGS23-256-BLK",
		CreatedAt: date("2024-01-01T00:00:00Z"), UpdatedAt: date("2024-01-01T00:00:00Z"),
	},
	{
		ID: "2", Name: "لابتوب Dell XPS 15",
		Description: "لابتوب عالي الأداء مثالي للعمل والإبداع",
		Price:       1500000, OriginalPrice: 1650000, Discount: 9,
		Images:   []string{"/images/products/dell-xps-15.jpg"},
		Category: "electronics", Subcategory: "laptops", Brand: "Dell",
		SellerID: "1", Stock: 12, Rating: 4.9, ReviewCount: 89,
		Tags: []string{"لابتوب", "ديل", "عالي الأداء", "للمحترفين"},
		Specifications: map[string]string{
			"الشاشة":  "15.6 بوصة 4K OLED",
			"المعالج": "Intel Core i7-13700H",
			"الذاكرة": "16GB DDR5",
		},
		Features: []string{"شاشة لمس 4K", "لوحة مفاتيح مضيئة", "قارئ بصمة"},
		IsActive: true, IsFeatured: true,
		Slug: "dell-xps-15", SKU: "DXP15-512-SLV",
		CreatedAt: date("2024-01-02T00:00:00Z"), UpdatedAt: date("2024-01-02T00:00:00Z"),
	},
	{
		ID: "3", Name: "سماعات AirPods Pro",
		Description: "سماعات لاسلكية بتقنية إلغاء الضوضاء النشط",
		Price:       320000, OriginalPrice: 350000, Discount: 9,
		Images:   []string{"/images/products/airpods-pro.jpg"},
		Category: "electronics", Subcategory: "audio", Brand: "Apple",
		SellerID: "1", Stock: 40, Rating: 4.7, ReviewCount: 210,
		Tags:     []string{"سماعات", "آبل", "لاسلكي", "إلغاء الضوضاء"},
		Features: []string{"إلغاء ضوضاء نشط", "مقاومة للعرق والماء", "شحن لاسلكي"},
		IsActive: true, IsFeatured: true,
		Slug: "airpods-pro", SKU: "APP-2-WHT",
		CreatedAt: date("2024-01-03T00:00:00Z"), UpdatedAt: date("2024-01-03T00:00:00Z"),
	},
	{
		ID: "4", Name: "قميص قطني رجالي",
		Description: "قميص قطني أنيق بقصة عصرية مريحة",
		Price:       85000, OriginalPrice: 100000, Discount: 15,
		Images:   []string{"/images/products/cotton-shirt.jpg"},
		Category: "fashion", Subcategory: "men", Brand: "Zara",
		SellerID: "2", Stock: 60, Rating: 4.3, ReviewCount: 45,
		Tags:     []string{"قميص", "قطن", "رجالي", "كاجوال"},
		IsActive: true, IsFeatured: false,
		Slug: "mens-cotton-shirt", SKU: "MCS-L-BLU",
		CreatedAt: date("2024-01-04T00:00:00Z"), UpdatedAt: date("2024-01-04T00:00:00Z"),
	},
	{
		ID: "5", Name: "طقم أواني طهي ستانلس",
		Description: "طقم أواني طهي من الستانلس ستيل عالي الجودة، 10 قطع",
		Price:       450000,
		Images:   []string{"/images/products/cookware-set.jpg"},
		Category: "home-garden", Subcategory: "kitchen", Brand: "Tefal",
		SellerID: "3", Stock: 8, Rating: 4.6, ReviewCount: 72,
		Tags:     []string{"أواني", "مطبخ", "ستانلس", "طهي"},
		IsActive: true, IsFeatured: false,
		Slug: "stainless-cookware-set", SKU: "SCS-10-SLV",
		CreatedAt: date("2024-01-05T00:00:00Z"), UpdatedAt: date("2024-01-05T00:00:00Z"),
	},
	{
		ID: "6", Name: "حذاء رياضي Nike Air Max",
		Description: "حذاء رياضي مريح بتقنية الوسادة الهوائية",
		Price:       275000, OriginalPrice: 320000, Discount: 14,
		Images:   []string{"/images/products/nike-air-max.jpg"},
		Category: "sports-fitness", Subcategory: "shoes", Brand: "Nike",
		SellerID: "2", Stock: 30, Rating: 4.5, ReviewCount: 118,
		Tags: []string{"حذاء رياضي", "نايك", "جري", "مريح"},
		Specifications: map[string]string{
			"المقاس": "39-45",
			"النعل":  "مطاط مقاوم للانزلاق",
		},
		Features: []string{"وسادة هوائية مريحة", "تهوية ممتازة", "مقاوم للانزلاق"},
		IsActive: true, IsFeatured: false,
		Slug: "nike-air-max-shoes", SKU: "NAM-BLK-42",
		CreatedAt: date("2024-01-06T00:00:00Z"), UpdatedAt: date("2024-01-06T00:00:00Z"),
	},
	{
		ID: "7", Name: "رواية مئة عام من العزلة",
		Description: "رائعة غابرييل غارسيا ماركيز بترجمة عربية أنيقة",
		Price:       45000,
		Images:   []string{"/images/products/one-hundred-years.jpg"},
		Category: "books-stationery", Subcategory: "novels",
		SellerID: "3", Stock: 100, Rating: 4.9, ReviewCount: 340,
		Tags:     []string{"رواية", "أدب", "ترجمة", "ماركيز"},
		IsActive: true, IsFeatured: false,
		Slug: "one-hundred-years-of-solitude", SKU: "BK-100Y-AR",
		CreatedAt: date("2024-01-07T00:00:00Z"), UpdatedAt: date("2024-01-07T00:00:00Z"),
	},
	{
		ID: "8", Name: "عطر رجالي فاخر",
		Description: "عطر شرقي فاخر بثبات طويل",
		Price:       180000, OriginalPrice: 200000, Discount: 10,
		Images:   []string{"/images/products/luxury-perfume.jpg"},
		Category: "beauty-care", Subcategory: "fragrance",
		SellerID: "2", Stock: 3, Rating: 4.4, ReviewCount: 58,
		Tags:     []string{"عطر", "رجالي", "شرقي", "فاخر"},
		IsActive: true, IsFeatured: true,
		Slug: "luxury-mens-perfume", SKU: "PRF-ORT-100",
		CreatedAt: date("2024-01-08T00:00:00Z"), UpdatedAt: date("2024-01-08T00:00:00Z"),
	},
}

var offers = []domain.Offer{
	{
		ID: "1", Title: "عرض الجمعة البيضاء",
		Description: "خصومات تصل إلى 70% على جميع المنتجات الإلكترونية",
		Discount:    70, Category: "electronics",
		ValidFrom:  date("2024-11-25T00:00:00Z"),
		ValidUntil: date("2024-11-30T23:59:59Z"),
		IsActive:   true,
	},
	{
		ID: "2", Title: "عرض الأزياء الصيفية",
		Description: "خصم 50% على جميع الملابس الصيفية",
		Discount:    50, Category: "fashion",
		ValidFrom:  date("2024-06-01T00:00:00Z"),
		ValidUntil: date("2024-08-31T23:59:59Z"),
		IsActive:   true,
	},
	{
		ID: "3", Title: "عرض المنزل الذكي",
		Description: "خصم 40% على جميع أدوات المنزل والحديقة",
		Discount:    40, Category: "home-garden",
		ValidFrom:  date("2024-03-01T00:00:00Z"),
		ValidUntil: date("2024-03-31T23:59:59Z"),
		IsActive:   true,
	},
	{
		ID: "4", Title: "عرض العودة للمدارس",
		Description: "خصم 30% على الكتب والأدوات المدرسية",
		Discount:    30, Category: "books-stationery",
		ValidFrom:  date("2024-08-15T00:00:00Z"),
		ValidUntil: date("2024-09-15T23:59:59Z"),
		IsActive:   true,
	},
}
