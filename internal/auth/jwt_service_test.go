package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.Issue("p@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "p@x.com", email)
}

func TestJWTService_IssueSetsOneHourExpiry(t *testing.T) {
	fixed := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	svc := NewJWTService("test-secret")
	svc.now = func() time.Time { return fixed }

	token, err := svc.Issue("p@x.com")
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = new(jwt.Parser).ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, "p@x.com", claims.Email)
}

func TestJWTService_Verify(t *testing.T) {
	svc := NewJWTService("test-secret")

	expired := NewJWTService("test-secret")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue("p@x.com")
	require.NoError(t, err)

	foreignToken, err := NewJWTService("other-secret").Issue("p@x.com")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Email: "p@x.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noEmailToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "empty", token: "", wantErr: ErrUnauthenticated},
		{name: "garbage", token: "not-a-jwt", wantErr: ErrInvalidToken},
		{name: "expired", token: expiredToken, wantErr: ErrInvalidToken},
		{name: "wrong secret", token: foreignToken, wantErr: ErrInvalidToken},
		{name: "alg none", token: noneToken, wantErr: ErrInvalidToken},
		{name: "missing email", token: noEmailToken, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, email)
		})
	}
}
