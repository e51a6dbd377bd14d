package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"

	"quizprep_backend/internals/configs"
	"quizprep_backend/internals/constants"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	oldAccess, oldRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	oldAccessTTL, oldRefreshTTL := configs.AccessTokenTTL, configs.RefreshTokenTTL
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	configs.AccessTokenTTL = time.Hour
	configs.RefreshTokenTTL = 30 * 24 * time.Hour
	t.Cleanup(func() {
		configs.JWTSecret, configs.JWTRefreshSecret = oldAccess, oldRefresh
		configs.AccessTokenTTL, configs.RefreshTokenTTL = oldAccessTTL, oldRefreshTTL
	})
}

func TestGenerateTokenPairRoundTrip(t *testing.T) {
	setTestSecrets(t)

	payload := TokenPayload{
		UserID: uuid.New(),
		Email:  "dev@example.com",
		Role:   constants.RoleAdmin,
	}
	pair, err := GenerateTokenPair(payload)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	got, err := VerifyAccessToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if got.UserID != payload.UserID || got.Email != payload.Email || got.Role != payload.Role {
		t.Errorf("access payload = %+v, want %+v", got, payload)
	}

	gotRefresh, err := VerifyRefreshToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("VerifyRefreshToken: %v", err)
	}
	if gotRefresh.UserID != payload.UserID {
		t.Errorf("refresh subject = %s, want %s", gotRefresh.UserID, payload.UserID)
	}

	if !pair.ExpiresAt.After(time.Now().Add(29 * 24 * time.Hour)) {
		t.Errorf("refresh expiry %v too soon", pair.ExpiresAt)
	}
}

func TestVerifyAccessTokenRejectsRefreshToken(t *testing.T) {
	setTestSecrets(t)

	pair, err := GenerateTokenPair(TokenPayload{UserID: uuid.New(), Email: "a@b.c", Role: constants.RoleUser})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	// Signed with the refresh secret, so the access verifier must fail.
	if _, err := VerifyAccessToken(pair.RefreshToken); err == nil {
		t.Error("access verifier accepted a refresh token")
	}
}

func TestVerifyAccessTokenRejectsWrongSecret(t *testing.T) {
	setTestSecrets(t)

	pair, err := GenerateTokenPair(TokenPayload{UserID: uuid.New(), Email: "a@b.c", Role: constants.RoleUser})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	configs.JWTSecret = "a-different-secret"
	if _, err := VerifyAccessToken(pair.AccessToken); err == nil {
		t.Error("verifier accepted a token signed with another secret")
	}
}

func TestComputeRefreshHashIsDeterministic(t *testing.T) {
	setTestSecrets(t)

	h1 := ComputeRefreshHash("some-token")
	h2 := ComputeRefreshHash("some-token")
	h3 := ComputeRefreshHash("other-token")

	if !bytes.Equal(h1, h2) {
		t.Error("same token hashed to different digests")
	}
	if bytes.Equal(h1, h3) {
		t.Error("different tokens hashed to the same digest")
	}
	if len(h1) != 32 {
		t.Errorf("digest length = %d, want 32", len(h1))
	}
}
