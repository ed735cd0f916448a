package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}

	signed, err := svc.Issue(7)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	userID, err := svc.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, uint(7), userID)
}

func TestNoExpiryByDefault(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}

	signed, err := svc.Issue(7)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(signed, claims)
	require.NoError(t, err)
	require.NotContains(t, claims, "exp")
}

func TestExpiryWhenConfigured(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret"), TTL: time.Hour}

	signed, err := svc.Issue(7)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(signed, claims)
	require.NoError(t, err)
	require.Contains(t, claims, "exp")

	userID, err := svc.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, uint(7), userID)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret"), TTL: -time.Minute}

	signed, err := svc.Issue(7)
	require.NoError(t, err)

	_, err = svc.Parse(signed)
	require.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	issuer := &Service{Secret: []byte("test_secret")}
	verifier := &Service{Secret: []byte("other_secret")}

	signed, err := issuer.Issue(7)
	require.NoError(t, err)

	_, err = verifier.Parse(signed)
	require.Error(t, err)
}

func TestMalformedTokenRejected(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}

	_, err := svc.Parse("not-a-token")
	require.Error(t, err)
}

func TestUnsignedTokenRejected(t *testing.T) {
	svc := &Service{Secret: []byte("test_secret")}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"userId": 7})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Parse(raw)
	require.Error(t, err)
}
