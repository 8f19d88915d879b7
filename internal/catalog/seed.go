package catalog

import (
	"github.com/charcoals/storefront/internal/domain"
	"golang.org/x/text/currency"
)

// Seed returns the built-in menu used when no remote catalog is configured.
// All prices share the given currency.
func Seed(unit currency.Unit) ([]domain.Category, []domain.MenuItem, []domain.Extra) {
	categories := []domain.Category{
		{ID: "burgers", Name: "برجر", Icon: "🍔", IsActive: true},
		{ID: "sides", Name: "أطباق جانبية", Icon: "🍟", IsActive: true},
	}

	items := []domain.MenuItem{
		{
			ID:           "classic",
			Name:         "برجر كلاسيك",
			Description:  "برجر مشوي على الفحم مع صوص المطعم الخاص",
			BeefPrice:    domain.MoneyFromInt(50, unit),
			ChickenPrice: domain.MoneyFromInt(45, unit),
			CategoryID:   "burgers",
			IsPopular:    true,
			IsActive:     true,
		},
		{
			ID:           "double",
			Name:         "برجر دبل",
			Description:  "طبقتان من اللحم مع الجبنة الشيدر",
			BeefPrice:    domain.MoneyFromInt(75, unit),
			ChickenPrice: domain.MoneyFromInt(65, unit),
			CategoryID:   "burgers",
			IsActive:     true,
		},
		{
			ID:           "mushroom",
			Name:         "برجر مشروم",
			Description:  "مع صوص المشروم الكريمي",
			BeefPrice:    domain.MoneyFromInt(60, unit),
			ChickenPrice: domain.MoneyFromInt(55, unit),
			CategoryID:   "burgers",
			IsPopular:    true,
			IsActive:     true,
		},
		{
			ID:           "fries",
			Name:         "بطاطس مقلية",
			Description:  "مقرمشة مع ملح البحر",
			BeefPrice:    domain.MoneyFromInt(20, unit),
			ChickenPrice: domain.MoneyFromInt(20, unit),
			CategoryID:   "sides",
			IsActive:     true,
		},
	}

	extras := []domain.Extra{
		{ID: "cheese", Name: "جبنة إضافية", Price: domain.MoneyFromInt(10, unit), IsActive: true},
		{ID: "bacon", Name: "تيركي مدخن", Price: domain.MoneyFromInt(15, unit), IsActive: true},
		{ID: "sauce", Name: "صوص حار", Price: domain.MoneyFromInt(5, unit), IsActive: true},
	}

	return categories, items, extras
}
