package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryChoiceSets(t *testing.T) {
	t.Run("CompanyCategoriesIncludeAllInOne", func(t *testing.T) {
		assert.Len(t, CompanyCategories, 12)
		assert.True(t, IsValidCompanyCategory(CategoryAllInOne))
	})

	t.Run("ServiceCategoriesExcludeAllInOne", func(t *testing.T) {
		assert.Len(t, ServiceCategories, 11)
		assert.False(t, IsValidServiceCategory(CategoryAllInOne))
	})

	t.Run("EveryTradeIsValidInBothSets", func(t *testing.T) {
		for _, c := range ServiceCategories {
			assert.True(t, IsValidCompanyCategory(c), "company set should contain %q", c)
			assert.True(t, IsValidServiceCategory(c), "service set should contain %q", c)
		}
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		assert.False(t, IsValidCompanyCategory("Roofing"))
		assert.False(t, IsValidServiceCategory("Roofing"))
	})
}

func TestNormalizeCategorySlug(t *testing.T) {
	cases := []struct {
		slug string
		want Category
	}{
		{"air-conditioner", CategoryAirConditioner},
		{"plumbing", CategoryPlumbing},
		{"home-machines", CategoryHomeMachines},
		{"water-heaters", CategoryWaterHeaters},
		{"PAINTING", CategoryPainting},
		{"interior-design", CategoryInteriorDesign},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeCategorySlug(tc.slug), "slug %q", tc.slug)
	}

	t.Run("AllInOneSlugNeverResolvesToAServiceCategory", func(t *testing.T) {
		// Title-casing produces "All In One", which matches neither the
		// stored umbrella spelling nor any trade.
		got := NormalizeCategorySlug("all-in-one")
		assert.NotEqual(t, CategoryAllInOne, got)
		assert.False(t, IsValidServiceCategory(got))
	})
}
