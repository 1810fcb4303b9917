// Package models contains domain entities and business models for the service marketplace
package models

import "strings"

// Category is one value from the fixed closed set of service trades, plus the
// company-level umbrella value "All in One".
type Category string

// Category constants
const (
	CategoryAirConditioner Category = "Air Conditioner"
	CategoryAllInOne       Category = "All in One"
	CategoryCarpentry      Category = "Carpentry"
	CategoryElectricity    Category = "Electricity"
	CategoryGardening      Category = "Gardening"
	CategoryHomeMachines   Category = "Home Machines"
	CategoryHouseKeeping   Category = "House Keeping"
	CategoryInteriorDesign Category = "Interior Design"
	CategoryLocks          Category = "Locks"
	CategoryPainting       Category = "Painting"
	CategoryPlumbing       Category = "Plumbing"
	CategoryWaterHeaters   Category = "Water Heaters"
)

// CompanyCategories is the full choice set offered at company registration.
var CompanyCategories = []Category{
	CategoryAirConditioner,
	CategoryAllInOne,
	CategoryCarpentry,
	CategoryElectricity,
	CategoryGardening,
	CategoryHomeMachines,
	CategoryHouseKeeping,
	CategoryInteriorDesign,
	CategoryLocks,
	CategoryPainting,
	CategoryPlumbing,
	CategoryWaterHeaters,
}

// ServiceCategories is the choice set for service listings: the eleven
// concrete trades, without the umbrella value.
var ServiceCategories = []Category{
	CategoryAirConditioner,
	CategoryCarpentry,
	CategoryElectricity,
	CategoryGardening,
	CategoryHomeMachines,
	CategoryHouseKeeping,
	CategoryInteriorDesign,
	CategoryLocks,
	CategoryPainting,
	CategoryPlumbing,
	CategoryWaterHeaters,
}

func (c Category) String() string {
	return string(c)
}

// IsValidCompanyCategory reports whether c is a member of the company choice set.
func IsValidCompanyCategory(c Category) bool {
	for _, v := range CompanyCategories {
		if v == c {
			return true
		}
	}
	return false
}

// IsValidServiceCategory reports whether c is a member of the service choice set.
func IsValidServiceCategory(c Category) bool {
	for _, v := range ServiceCategories {
		if v == c {
			return true
		}
	}
	return false
}

// NormalizeCategorySlug converts a URL path segment into the stored category
// spelling: hyphens become spaces, then each word is title-cased, so
// "air-conditioner" resolves to "Air Conditioner".
func NormalizeCategorySlug(slug string) Category {
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return Category(strings.Join(words, " "))
}
