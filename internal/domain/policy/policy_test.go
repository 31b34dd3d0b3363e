package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/nexus-inventory/internal/domain/entity"
	"github.com/jhoicas/nexus-inventory/internal/domain/policy"
)

var allRoles = []entity.Role{entity.RoleAdmin, entity.RoleManager, entity.RoleEmployee, "", "guest"}

func TestFor_Contencion(t *testing.T) {
	for _, r := range allRoles {
		c := policy.For(r)
		if c.IsAdmin {
			assert.True(t, c.IsManager, "admin implica manager (%q)", r)
		}
		if c.IsManager {
			assert.True(t, c.IsEmployee, "manager implica employee (%q)", r)
		}
	}
}

func TestFor_PorRol(t *testing.T) {
	assert.Equal(t, policy.Capabilities{IsAdmin: true, IsManager: true, IsEmployee: true}, policy.For(entity.RoleAdmin))
	assert.Equal(t, policy.Capabilities{IsManager: true, IsEmployee: true}, policy.For(entity.RoleManager))
	assert.Equal(t, policy.Capabilities{IsEmployee: true}, policy.For(entity.RoleEmployee))
	assert.Equal(t, policy.Capabilities{}, policy.For("guest"))
}

func TestAllows(t *testing.T) {
	assert.True(t, policy.Allows(entity.RoleEmployee, policy.ViewInventory))
	assert.False(t, policy.Allows(entity.RoleEmployee, policy.EditInventory))
	assert.True(t, policy.Allows(entity.RoleManager, policy.EditInventory))
	assert.False(t, policy.Allows(entity.RoleManager, policy.DeleteInventory))
	assert.True(t, policy.Allows(entity.RoleAdmin, policy.DeleteInventory))
	assert.False(t, policy.Allows("", policy.ViewDashboard))
	assert.False(t, policy.Allows(entity.RoleAdmin, policy.Action("unknown")))
}

func TestSettingsSections(t *testing.T) {
	assert.Equal(t, []string{"general", "notifications", "security", "admin"}, policy.SettingsSections(entity.RoleAdmin))
	assert.Equal(t, []string{"general", "notifications", "security"}, policy.SettingsSections(entity.RoleManager))
	assert.Empty(t, policy.SettingsSections("guest"))
}
