package authz_test

import (
	"testing"

	"go-profile-backend/internal/authz"

	"github.com/stretchr/testify/assert"
)

func TestOwnerOrReadOnly(t *testing.T) {
	policy := authz.OwnerOrReadOnly{}

	t.Run("Read is allowed for any authenticated caller", func(t *testing.T) {
		assert.True(t, policy.Allows(1, 2, authz.CapabilityRead))
		assert.True(t, policy.Allows(2, 2, authz.CapabilityRead))
	})

	t.Run("Write requires identity equality with the owner", func(t *testing.T) {
		assert.True(t, policy.Allows(7, 7, authz.CapabilityWrite))
		assert.False(t, policy.Allows(7, 8, authz.CapabilityWrite))
	})

	t.Run("Owning some other resource grants nothing", func(t *testing.T) {
		// Caller 3 may own resources of their own; owner here is 4.
		assert.False(t, policy.Allows(3, 4, authz.CapabilityWrite))
	})
}

func TestOwnerOnly(t *testing.T) {
	policy := authz.OwnerOnly{}

	assert.True(t, policy.Allows(5, 5, authz.CapabilityRead))
	assert.False(t, policy.Allows(5, 6, authz.CapabilityRead))
	assert.False(t, policy.Allows(5, 6, authz.CapabilityWrite))
}
