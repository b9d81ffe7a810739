package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active customer", func(t *testing.T) {
		u, err := NewUser("Ama@Example.com", "passw0rd", RoleCustomer)
		require.NoError(t, err)
		assert.Equal(t, "ama@example.com", u.Email)
		assert.Equal(t, RoleCustomer, u.Role)
		assert.Equal(t, UserStatusActive, u.Status)
		assert.True(t, u.VerifyPassword("passw0rd"))
		assert.False(t, u.VerifyPassword("wrong"))
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewUser("not-an-email", "passw0rd", RoleCustomer)
		assert.Error(t, err)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("a@b.com", "p1", RoleCustomer)
		assert.Error(t, err)
	})

	t.Run("rejects password without digits", func(t *testing.T) {
		_, err := NewUser("a@b.com", "passwords", RoleCustomer)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("a@b.com", "passw0rd", "admin")
		assert.Error(t, err)
	})
}

func TestUserChangePassword(t *testing.T) {
	u, err := NewUser("seller@example.com", "oldpass1", RoleVendor)
	require.NoError(t, err)

	t.Run("requires correct current password", func(t *testing.T) {
		err := u.ChangePassword("wrongpass1", "newpass1")
		assert.Error(t, err)
	})

	t.Run("changes with correct current password", func(t *testing.T) {
		require.NoError(t, u.ChangePassword("oldpass1", "newpass1"))
		assert.True(t, u.VerifyPassword("newpass1"))
		assert.False(t, u.VerifyPassword("oldpass1"))
	})
}

func TestUserDeactivate(t *testing.T) {
	u, err := NewUser("x@y.com", "passw0rd", RoleVendor)
	require.NoError(t, err)

	require.NoError(t, u.Deactivate())
	assert.False(t, u.CanLogin())
	assert.Error(t, u.Deactivate())
}

func TestUserFullName(t *testing.T) {
	u, err := NewUser("kodjo@example.com", "passw0rd", RoleVendor)
	require.NoError(t, err)
	assert.Equal(t, "kodjo@example.com", u.FullName())

	require.NoError(t, u.SetName("Kodjo", "Mensah"))
	assert.Equal(t, "Kodjo Mensah", u.FullName())
	assert.True(t, u.IsVendor())
}
