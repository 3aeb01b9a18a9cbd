package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/anylist-api/internal/application/dto"
	"github.com/jhoicas/anylist-api/internal/domain"
)

func TestValidate_CreateItemInput(t *testing.T) {
	require.NoError(t, dto.Validate(dto.CreateItemInput{Name: "bolt", Quantity: 10}))
	require.NoError(t, dto.Validate(dto.CreateItemInput{Name: "bolt", Quantity: 0}))

	err := dto.Validate(dto.CreateItemInput{Name: "", Quantity: -1})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Contains(t, err.Error(), "name should not be empty")
	assert.Contains(t, err.Error(), "quantity must not be less than 0")
}

func TestValidate_UpdateItemInput(t *testing.T) {
	neg := -3.0
	err := dto.Validate(dto.UpdateItemInput{ID: "no-uuid", Quantity: &neg})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id must be a UUID")
	assert.Contains(t, err.Error(), "quantity must not be less than 0")

	require.NoError(t, dto.Validate(dto.UpdateItemInput{ID: "6f1c1a7e-2b7a-4c55-9a55-0d3b4c1e9b10"}))
}

func TestValidate_SignupInput(t *testing.T) {
	ok := dto.SignupInput{Email: "ana@example.com", FullName: "Ana", Password: "123456"}
	require.NoError(t, dto.Validate(ok))

	bad := dto.SignupInput{Email: "no-es-email", FullName: "Ana", Password: "123", Roles: []string{"root"}}
	err := dto.Validate(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be an email")
	assert.Contains(t, err.Error(), "password must be longer than or equal to 6 characters")
	assert.Contains(t, err.Error(), "must be one of the following values: admin, user, superUser")
}
