package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCustomerProfileAge(t *testing.T) {
	birth := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)
	profile := &CustomerProfile{BirthDate: birth}

	t.Run("BirthdayAlreadyPassed", func(t *testing.T) {
		at := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 26, profile.Age(at))
	})

	t.Run("BirthdayToday", func(t *testing.T) {
		at := time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 26, profile.Age(at))
	})

	t.Run("BirthdayNotYetReached", func(t *testing.T) {
		at := time.Date(2026, time.June, 14, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 25, profile.Age(at))
	})

	t.Run("EarlierMonth", func(t *testing.T) {
		at := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 25, profile.Age(at))
	})
}

func TestCompanyProfileCategories(t *testing.T) {
	t.Run("AllInOne", func(t *testing.T) {
		profile := &CompanyProfile{Category: CategoryAllInOne}
		assert.True(t, profile.IsAllInOne())
		assert.Equal(t, ServiceCategories, profile.AllowedServiceCategories())
	})

	t.Run("SingleTrade", func(t *testing.T) {
		profile := &CompanyProfile{Category: CategoryPlumbing}
		assert.False(t, profile.IsAllInOne())
		assert.Equal(t, []Category{CategoryPlumbing}, profile.AllowedServiceCategories())
	})
}

func TestAccountRoles(t *testing.T) {
	company := &Account{Role: RoleCompany}
	assert.True(t, company.IsCompany())
	assert.False(t, company.IsCustomer())

	customer := &Account{Role: RoleCustomer}
	assert.True(t, customer.IsCustomer())
	assert.False(t, customer.IsCompany())
}
