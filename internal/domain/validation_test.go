package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdministratorInputValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        AdministratorInput
		wantMessages []string
	}{
		{
			name:         "valid admin input",
			input:        AdministratorInput{Email: "adm@teste.com", Password: "123456", Role: "Admin"},
			wantMessages: nil,
		},
		{
			name:         "valid editor input",
			input:        AdministratorInput{Email: "editor@teste.com", Password: "123456", Role: "Editor"},
			wantMessages: nil,
		},
		{
			name:         "missing email",
			input:        AdministratorInput{Password: "123456", Role: "Admin"},
			wantMessages: []string{"Email cannot be empty"},
		},
		{
			name:         "missing password",
			input:        AdministratorInput{Email: "adm@teste.com", Role: "Admin"},
			wantMessages: []string{"Password cannot be empty"},
		},
		{
			name:         "missing role",
			input:        AdministratorInput{Email: "adm@teste.com", Password: "123456"},
			wantMessages: []string{"Role cannot be empty"},
		},
		{
			name:  "all fields missing reported in fixed order",
			input: AdministratorInput{},
			wantMessages: []string{
				"Email cannot be empty",
				"Password cannot be empty",
				"Role cannot be empty",
			},
		},
		{
			name:         "unknown role",
			input:        AdministratorInput{Email: "adm@teste.com", Password: "123456", Role: "SuperUser"},
			wantMessages: []string{"Role must be Admin or Editor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantMessages, tt.input.Validate())
		})
	}
}

func TestVehicleInputValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        VehicleInput
		wantMessages []string
	}{
		{
			name:         "valid vehicle",
			input:        VehicleInput{Name: "Fox", Brand: "VW", Year: 2010},
			wantMessages: nil,
		},
		{
			name:         "year at lower bound is accepted",
			input:        VehicleInput{Name: "Beetle", Brand: "VW", Year: 1950},
			wantMessages: nil,
		},
		{
			name:         "vehicle too old",
			input:        VehicleInput{Name: "Fox", Brand: "VW", Year: 1949},
			wantMessages: []string{"Vehicle too old, only years above 1950 accepted"},
		},
		{
			name:         "missing name",
			input:        VehicleInput{Brand: "VW", Year: 2010},
			wantMessages: []string{"Name cannot be empty"},
		},
		{
			name:         "missing brand",
			input:        VehicleInput{Name: "Fox", Year: 2010},
			wantMessages: []string{"Brand cannot be blank"},
		},
		{
			name:  "everything wrong reported in fixed order",
			input: VehicleInput{},
			wantMessages: []string{
				"Name cannot be empty",
				"Brand cannot be blank",
				"Vehicle too old, only years above 1950 accepted",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantMessages, tt.input.Validate())
		})
	}
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	t.Run("parses known roles", func(t *testing.T) {
		t.Parallel()
		role, err := ParseRole("Admin")
		assert.NoError(t, err)
		assert.Equal(t, RoleAdmin, role)

		role, err = ParseRole("Editor")
		assert.NoError(t, err)
		assert.Equal(t, RoleEditor, role)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		t.Parallel()
		_, err := ParseRole("Root")
		assert.ErrorIs(t, err, ErrUnknownRole)
	})

	t.Run("rejects lowercase variants", func(t *testing.T) {
		t.Parallel()
		_, err := ParseRole("admin")
		assert.ErrorIs(t, err, ErrUnknownRole)
	})

	t.Run("valid reports enumeration membership", func(t *testing.T) {
		t.Parallel()
		assert.True(t, RoleAdmin.Valid())
		assert.True(t, RoleEditor.Valid())
		assert.False(t, Role("Root").Valid())
		assert.False(t, Role("").Valid())
	})
}
