package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssuer(t *testing.T, secret string) *TokenIssuer {
	t.Helper()
	tokens, err := NewTokenIssuer([]byte(secret))
	require.NoError(t, err)
	return tokens
}

func TestNewTokenIssuer_EmptySecret(t *testing.T) {
	_, err := NewTokenIssuer(nil)
	assert.Error(t, err)
}

func TestNewTokenIssuer_CopiesSecret(t *testing.T) {
	secret := []byte("super-secret")
	tokens, err := NewTokenIssuer(secret)
	require.NoError(t, err)

	tok, err := tokens.Issue("user-1")
	require.NoError(t, err)

	secret[0] = 'X'

	got, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got)
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	tokens := newIssuer(t, "super-secret")

	tok, err := tokens.Issue("user-123")
	require.NoError(t, err)

	got, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", got)
}

func TestIssue_NoExpiry(t *testing.T) {
	t.Parallel()

	tokens := newIssuer(t, "super-secret")
	tokens.now = func() time.Time { return time.Now().Add(-10 * 365 * 24 * time.Hour) }

	tok, err := tokens.Issue("old-user")
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
	assert.Equal(t, "old-user", claims.UserID)

	got, err := tokens.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "old-user", got)
}

func TestIssue_EmptyUserID(t *testing.T) {
	_, err := newIssuer(t, "k").Issue("")
	assert.Error(t, err)
}

func TestVerify_Empty(t *testing.T) {
	_, err := newIssuer(t, "k").Verify("")
	assert.True(t, errors.Is(err, ErrNoToken))
}

func TestVerify_FlippedByte(t *testing.T) {
	t.Parallel()

	tokens := newIssuer(t, "super-secret")
	tok, err := tokens.Issue("user-123")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)

	for i := range parts {
		segment := []byte(parts[i])
		mid := len(segment) / 2
		if segment[mid] == 'A' {
			segment[mid] = 'B'
		} else {
			segment[mid] = 'A'
		}

		tampered := append([]string(nil), parts...)
		tampered[i] = string(segment)

		_, err := tokens.Verify(strings.Join(tampered, "."))
		assert.True(t, errors.Is(err, ErrInvalidToken), "segment %d: got %v", i, err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	tok, err := newIssuer(t, "right-secret").Issue("u2")
	require.NoError(t, err)

	_, err = newIssuer(t, "wrong-secret").Verify(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerify_Malformed(t *testing.T) {
	_, err := newIssuer(t, "k").Verify("not.a.jwt")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	secret := []byte("super-secret")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: "u3"}).SignedString(secret)
	require.NoError(t, err)

	_, err = newIssuer(t, string(secret)).Verify(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "u3"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newIssuer(t, string(secret)).Verify(none)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerify_MissingUserID(t *testing.T) {
	secret := []byte("super-secret")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString(secret)
	require.NoError(t, err)

	_, err = newIssuer(t, string(secret)).Verify(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestVerify_ExpiredWhenPresent(t *testing.T) {
	secret := []byte("super-secret")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: "u4",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = newIssuer(t, string(secret)).Verify(tok)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
