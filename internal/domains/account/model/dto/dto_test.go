package dto_test

import (
	"testing"

	"venuedesk/internal/domains/account/model/dto"
	"venuedesk/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_ToModel(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "plain-secret",
		Role:     "faculty",
	}

	model := req.ToModel()

	assert.NotEmpty(t, model.ID, "expected ID to be generated")
	assert.Equal(t, req.Username, model.Username)
	assert.Equal(t, req.Email, model.Email)
	assert.Equal(t, req.Role, model.Role)
	assert.Equal(t, req.Password, model.Password, "expected the password to be stored as given")
	assert.Equal(t, constant.ContextSystem, model.CreatedBy)
	assert.Equal(t, constant.ContextSystem, model.ModifiedBy)
	assert.False(t, model.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, model.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestRegisterRequest_ToModel_UniqueIDs(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "secret",
		Role:     "admin",
	}

	first := req.ToModel()
	second := req.ToModel()

	assert.NotEqual(t, first.ID, second.ID)
}
