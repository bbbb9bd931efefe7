package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-manager/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	token, err := jwt.Generate("secret", "cantine-1", jwt.RoleManager, "stock-manager", 5)
	require.NoError(t, err)

	userID, role, err := jwt.Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "cantine-1", userID)
	assert.Equal(t, jwt.RoleManager, role)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := jwt.Generate("secret", "u", jwt.RoleAdmin, "stock-manager", 5)
	require.NoError(t, err)

	_, _, err = jwt.Parse("other", token)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := jwt.Generate("secret", "u", jwt.RoleAdmin, "stock-manager", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse("secret", token)
	assert.Error(t, err)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "u", jwt.RoleAdmin, "stock-manager", 5)
	assert.Error(t, err)
}
