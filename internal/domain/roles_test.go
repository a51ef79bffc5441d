package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleCustomer.Valid())
	assert.False(t, Role("moderator").Valid())
	assert.False(t, Role("").Valid())
}

func TestRole_PayloadKey(t *testing.T) {
	assert.Equal(t, "admin", RoleAdmin.PayloadKey())
	assert.Equal(t, "customer", RoleCustomer.PayloadKey())
}

func TestRole_LoginMessage(t *testing.T) {
	assert.Equal(t, "Admin login successful", RoleAdmin.LoginMessage())
	assert.Equal(t, "Customer login successful", RoleCustomer.LoginMessage())
}
