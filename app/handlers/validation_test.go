package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netfix-app/netfix/app/dto"
)

func TestServiceRequestHoursBounds(t *testing.T) {
	v := newValidator()

	booking := func(hours int) *dto.CreateServiceRequestRequest {
		return &dto.CreateServiceRequestRequest{
			Hours:    hours,
			Location: "42 Main Street",
		}
	}

	for _, hours := range []int{1, 8, 24} {
		assert.NoError(t, v.Struct(booking(hours)), "hours %d", hours)
	}

	for _, hours := range []int{-1, 0, 25, 100} {
		assert.Error(t, v.Struct(booking(hours)), "hours %d", hours)
	}
}
