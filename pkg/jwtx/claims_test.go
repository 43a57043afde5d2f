package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/marquee/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestNewClaims(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	c := jwtx.NewClaims("alice", now)

	require.Equal(t, "alice", c.Subject)
	require.True(t, now.Add(time.Hour).Equal(c.Expiry()))

	// Nothing else is set, so nothing else is serialised.
	require.Empty(t, c.Issuer)
	require.Empty(t, c.Audience)
	require.Empty(t, c.ID)
	require.Nil(t, c.IssuedAt)
	require.Nil(t, c.NotBefore)
}

func TestClaimsExpiry_Absent(t *testing.T) {
	var c jwtx.Claims
	require.True(t, c.Expiry().IsZero())
}
