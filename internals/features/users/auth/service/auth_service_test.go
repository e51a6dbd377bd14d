package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizprep_backend/internals/constants"
	authModel "quizprep_backend/internals/features/users/auth/model"
	userModel "quizprep_backend/internals/features/users/user/model"
)

// sessionStore is an in-memory stand-in for the sessions table, keyed by
// the refresh token hash.
type sessionStore struct {
	sessions map[string]*authModel.SessionModel
	user     *userModel.UserModel
}

func newSessionStore(t *testing.T, user *userModel.UserModel) *sessionStore {
	t.Helper()
	store := &sessionStore{
		sessions: make(map[string]*authModel.SessionModel),
		user:     user,
	}

	oldFind, oldUser, oldRotate := findSessionByTokenHash, findUserByID, rotateSession
	findSessionByTokenHash = func(_ *gorm.DB, hash []byte) (*authModel.SessionModel, error) {
		session, ok := store.sessions[string(hash)]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		return session, nil
	}
	findUserByID = func(_ *gorm.DB, id uuid.UUID) (*userModel.UserModel, error) {
		if store.user == nil || store.user.ID != id {
			return nil, gorm.ErrRecordNotFound
		}
		return store.user, nil
	}
	rotateSession = func(_ *gorm.DB, session *authModel.SessionModel, newHash []byte, expiresAt time.Time) error {
		delete(store.sessions, string(session.TokenHash))
		session.TokenHash = newHash
		session.ExpiresAt = expiresAt
		store.sessions[string(newHash)] = session
		return nil
	}
	t.Cleanup(func() {
		findSessionByTokenHash, findUserByID, rotateSession = oldFind, oldUser, oldRotate
	})

	return store
}

func (s *sessionStore) add(session *authModel.SessionModel) {
	s.sessions[string(session.TokenHash)] = session
}

func activeUser() *userModel.UserModel {
	return &userModel.UserModel{
		ID:     uuid.New(),
		Email:  "dev@example.com",
		Role:   constants.RoleUser,
		Status: constants.StatusActive,
	}
}

func wantUnauthorized(t *testing.T, err error) {
	t.Helper()
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("error = %v, want 401 fiber error", err)
	}
}

func TestRefreshTokenRevokesReplacedToken(t *testing.T) {
	setTestSecrets(t)
	user := activeUser()
	store := newSessionStore(t, user)

	pair, err := GenerateTokenPair(TokenPayload{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	store.add(&authModel.SessionModel{
		UserID:    user.ID,
		TokenHash: ComputeRefreshHash(pair.RefreshToken),
		ExpiresAt: pair.ExpiresAt,
	})

	rotated, err := RefreshToken(nil, pair.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if rotated.RefreshToken == pair.RefreshToken {
		t.Fatal("rotation returned the same refresh token")
	}

	// The replaced token must not satisfy a second refresh.
	_, err = RefreshToken(nil, pair.RefreshToken)
	wantUnauthorized(t, err)

	// The replacement stays valid.
	if _, err := RefreshToken(nil, rotated.RefreshToken); err != nil {
		t.Fatalf("refresh with rotated token: %v", err)
	}
}

func TestRefreshTokenRejectsExpiredSession(t *testing.T) {
	setTestSecrets(t)
	user := activeUser()
	store := newSessionStore(t, user)

	pair, err := GenerateTokenPair(TokenPayload{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	// Token is still signed-valid but its session row already lapsed.
	store.add(&authModel.SessionModel{
		UserID:    user.ID,
		TokenHash: ComputeRefreshHash(pair.RefreshToken),
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, err = RefreshToken(nil, pair.RefreshToken)
	wantUnauthorized(t, err)
}

func TestRefreshTokenRejectsUnknownSession(t *testing.T) {
	setTestSecrets(t)
	user := activeUser()
	newSessionStore(t, user)

	pair, err := GenerateTokenPair(TokenPayload{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	// Never stored, as after a logout.
	_, err = RefreshToken(nil, pair.RefreshToken)
	wantUnauthorized(t, err)
}
