package employee

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay/sitepay-backend-go/internal/pkg/validator"
)

func TestCreateEmployeeRequestValidate(t *testing.T) {
	valid := func() CreateEmployeeRequest {
		return CreateEmployeeRequest{
			Name:       "Kamal Perera",
			Role:       "mason",
			DailyRate:  decimal.NewFromInt(1200),
			JoinedDate: "2024-01-15",
		}
	}

	t.Run("minimal request is valid", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		req := valid()
		req.Name = "  "
		err := req.Validate()
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Contains(t, verrs.ToMap(), "name")
	})

	t.Run("negative rate is rejected", func(t *testing.T) {
		req := valid()
		req.DailyRate = decimal.NewFromInt(-100)
		assert.Error(t, req.Validate())
	})

	t.Run("malformed joined date is rejected", func(t *testing.T) {
		req := valid()
		req.JoinedDate = "15/01/2024"
		assert.Error(t, req.Validate())
	})

	t.Run("bad NIC is rejected", func(t *testing.T) {
		req := valid()
		nic := "not-a-nic"
		req.NIC = &nic
		assert.Error(t, req.Validate())
	})

	t.Run("secondary role duplicating the primary is rejected", func(t *testing.T) {
		req := valid()
		req.SecondaryRoles = []SecondaryRoleInput{
			{Name: "mason", DailyRate: decimal.NewFromInt(900)},
		}
		assert.Error(t, req.Validate())
	})

	t.Run("duplicate secondary roles are rejected", func(t *testing.T) {
		req := valid()
		req.SecondaryRoles = []SecondaryRoleInput{
			{Name: "painter", DailyRate: decimal.NewFromInt(800)},
			{Name: "painter", DailyRate: decimal.NewFromInt(850)},
		}
		assert.Error(t, req.Validate())
	})
}

func TestRateIncrementRequestValidate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := RateIncrementRequest{
			Role:          "mason",
			NewRate:       decimal.NewFromInt(1400),
			EffectiveDate: "2024-06-01",
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("zero rate is rejected", func(t *testing.T) {
		req := RateIncrementRequest{
			Role:          "mason",
			NewRate:       decimal.Zero,
			EffectiveDate: "2024-06-01",
		}
		assert.Error(t, req.Validate())
	})

	t.Run("missing effective date is rejected", func(t *testing.T) {
		req := RateIncrementRequest{
			Role:    "mason",
			NewRate: decimal.NewFromInt(1400),
		}
		assert.Error(t, req.Validate())
	})
}

func TestEmployeeRateForRole(t *testing.T) {
	emp := Employee{
		Role:      "mason",
		DailyRate: decimal.NewFromInt(1200),
		SecondaryRoles: []SecondaryRole{
			{Name: "painter", DailyRate: decimal.NewFromInt(800)},
		},
	}

	rate, ok := emp.RateForRole("mason")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(1200).Equal(rate))

	rate, ok = emp.RateForRole("painter")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(800).Equal(rate))

	// Empty role means the primary role.
	rate, ok = emp.RateForRole("")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(1200).Equal(rate))

	_, ok = emp.RateForRole("welder")
	assert.False(t, ok)
}
