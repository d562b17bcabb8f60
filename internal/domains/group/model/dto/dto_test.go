package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"safar/internal/domains/group/model"
	"safar/internal/domains/group/model/dto"
)

func TestCreateGroupRequest_ToModel(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req := dto.CreateGroupRequest{
			Code: "UMR-2026-001",
		}

		mod, err := req.ToModel("tester")

		assert.NoError(t, err)
		assert.NotEmpty(t, mod.ID)
		assert.Equal(t, "UMR-2026-001", mod.Code)
		assert.Equal(t, model.StatusPreparation, mod.Status)
		assert.Nil(t, mod.DepartureDate)
		assert.Nil(t, mod.ProgramType)
		assert.Equal(t, "tester", mod.CreatedBy)
	})

	t.Run("departure date is parsed", func(t *testing.T) {
		req := dto.CreateGroupRequest{
			Code:          "UMR-2026-002",
			DepartureDate: "2026-04-02",
		}

		mod, err := req.ToModel("tester")

		assert.NoError(t, err)
		assert.NotNil(t, mod.DepartureDate)
		assert.Equal(t, 2026, mod.DepartureDate.Year())
	})

	t.Run("malformed departure date", func(t *testing.T) {
		req := dto.CreateGroupRequest{
			Code:          "UMR-2026-003",
			DepartureDate: "02/04/2026",
		}

		_, err := req.ToModel("tester")

		assert.Error(t, err)
	})
}

func TestUpdateGroupRequest_ToFields(t *testing.T) {
	t.Run("omitted optional fields clear their columns", func(t *testing.T) {
		req := dto.UpdateGroupRequest{
			Code: "UMR-2026-001",
		}

		fields, err := req.ToFields("tester")

		assert.NoError(t, err)
		assert.Equal(t, "UMR-2026-001", fields[model.FieldCode])
		assert.Nil(t, fields[model.FieldDepartureDate])
		assert.Nil(t, fields[model.FieldProgramType])
		assert.Nil(t, fields[model.FieldHandlingCompanyID])
		assert.Nil(t, fields[model.FieldNotes])
		assert.Equal(t, "tester", fields["modified_by"])
	})

	t.Run("full update", func(t *testing.T) {
		req := dto.UpdateGroupRequest{
			Code:              "UMR-2026-001",
			ProgramType:       "Umroh Reguler 9 Hari",
			DepartureDate:     "2026-04-02",
			TotalPax:          45,
			HandlingCompanyID: "6f1d3c0a-54f5-4f0b-9a3c-0f2d3f7a1b2c",
		}

		fields, err := req.ToFields("tester")

		assert.NoError(t, err)
		assert.Equal(t, 45, fields[model.FieldTotalPax])
		assert.NotNil(t, fields[model.FieldDepartureDate])
		assert.NotNil(t, fields[model.FieldHandlingCompanyID])
	})
}

func TestGroupResponse_FromModel(t *testing.T) {
	programType := "Umroh Plus Thaif"

	var res dto.GroupResponse
	res.FromModel(model.Group{
		ID:          "group-id",
		Code:        "UMR-2026-001",
		ProgramType: &programType,
		TotalPax:    45,
		Status:      model.StatusDeparture,
	})

	assert.Equal(t, "group-id", res.ID)
	assert.Equal(t, "UMR-2026-001", res.Code)
	assert.Equal(t, "Umroh Plus Thaif", res.ProgramType)
	assert.Equal(t, 45, res.TotalPax)
	assert.Equal(t, model.StatusDeparture, res.Status)
	assert.Empty(t, res.DepartureDate)
}
