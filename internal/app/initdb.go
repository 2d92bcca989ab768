package app

import (
	"go.uber.org/zap"

	"github.com/shopquanao/storefront/internal/domain"
)

// checkSeedData initializes the catalog with the default categories and,
// when the products table is empty, a handful of sample products.
func (a *Application) checkSeedData() {
	a.checkCategories()
	a.checkSampleProducts()
}

func (a *Application) checkCategories() {
	defaultCategories := []domain.Category{
		{ID: "ao-nam", Name: "Áo Nam"},
		{ID: "ao-nu", Name: "Áo Nữ"},
		{ID: "quan-nam", Name: "Quần Nam"},
		{ID: "quan-nu", Name: "Quần Nữ"},
		{ID: "vay-dam", Name: "Váy & Đầm"},
	}

	for _, cat := range defaultCategories {
		var count int64
		a.gormDB.Model(&domain.Category{}).Where("id = ?", cat.ID).Count(&count)
		if count == 0 {
			if err := a.gormDB.Create(&cat).Error; err != nil {
				zap.L().Error("failed to create default category", zap.String("id", cat.ID), zap.Error(err))
			} else {
				zap.L().Info("initialized category", zap.String("id", cat.ID), zap.String("name", cat.Name))
			}
		}
	}
}

func (a *Application) checkSampleProducts() {
	var count int64
	a.gormDB.Model(&domain.Product{}).Count(&count)
	if count > 0 {
		return
	}

	sampleProducts := []domain.Product{
		{
			Name:        "Áo thun nam basic",
			Price:       299000,
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=300&h=400&fit=crop",
			Category:    "ao-nam",
			Description: "Áo thun nam chất liệu cotton 100%",
		},
		{
			Name:        "Quần jean nữ skinny",
			Price:       599000,
			Image:       "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=300&h=400&fit=crop",
			Category:    "quan-nu",
			Description: "Quần jean nữ form skinny thời trang",
		},
		{
			Name:        "Váy midi hoa",
			Price:       450000,
			Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=300&h=400&fit=crop",
			Category:    "vay-dam",
			Description: "Váy midi họa tiết hoa xinh xắn",
		},
		{
			Name:        "Áo sơ mi trắng",
			Price:       399000,
			Image:       "https://images.unsplash.com/photo-1586790170083-2f9ceadc732d?w=300&h=400&fit=crop",
			Category:    "ao-nu",
			Description: "Áo sơ mi trắng công sở thanh lịch",
		},
	}

	for _, p := range sampleProducts {
		if err := a.gormDB.Create(&p).Error; err != nil {
			zap.L().Error("failed to create sample product", zap.String("name", p.Name), zap.Error(err))
		}
	}
	zap.L().Info("initialized sample products", zap.Int("count", len(sampleProducts)))
}
