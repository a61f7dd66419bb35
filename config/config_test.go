package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shearerbeard/PESA-equation-services/config"
	"github.com/Shearerbeard/PESA-equation-services/expr"
)

func setAddrs(t *testing.T) {
	t.Helper()
	vars := map[string]string{
		"ADDER_ADDR":      "127.0.0.1:9001",
		"SUBTRACTOR_ADDR": "127.0.0.1:9002",
		"MULTIPLIER_ADDR": "127.0.0.1:9003",
		"DIVIDER_ADDR":    "127.0.0.1:9004",
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestLoadReadsAllFourAddresses(t *testing.T) {
	setAddrs(t)

	addrs, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9001", addrs[expr.Add])
	assert.Equal(t, "127.0.0.1:9002", addrs[expr.Sub])
	assert.Equal(t, "127.0.0.1:9003", addrs[expr.Mul])
	assert.Equal(t, "127.0.0.1:9004", addrs[expr.Div])
}

func TestLoadFailsOnMissingVariable(t *testing.T) {
	setAddrs(t)
	require.NoError(t, os.Unsetenv("DIVIDER_ADDR"))

	_, err := config.Load()
	require.Error(t, err)
}

func TestPeersExcludesOwner(t *testing.T) {
	setAddrs(t)
	addrs, err := config.Load()
	require.NoError(t, err)

	peers := addrs.Peers(expr.Add)
	_, ownPresent := peers[expr.Add]
	assert.False(t, ownPresent)
	assert.Len(t, peers, 3)
}

func TestOwnReturnsConfiguredAddress(t *testing.T) {
	setAddrs(t)
	addrs, err := config.Load()
	require.NoError(t, err)

	addr, err := addrs.Own(expr.Mul)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9003", addr)
}
