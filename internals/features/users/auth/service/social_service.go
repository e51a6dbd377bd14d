package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"gorm.io/gorm"

	"quizprep_backend/internals/configs"
	"quizprep_backend/internals/constants"
	authModel "quizprep_backend/internals/features/users/auth/model"
	authRepo "quizprep_backend/internals/features/users/auth/repository"
	userModel "quizprep_backend/internals/features/users/user/model"
)

// SocialLoginInput is the normalized identity handed over by a provider.
type SocialLoginInput struct {
	Provider       constants.Provider
	ProviderID     string
	Email          string
	FullName       *string
	ProfilePicture *string
	AccessToken    *string
	RefreshToken   *string
}

// usernameFromEmail derives a default username from the address local part.
func usernameFromEmail(email string) *string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return nil
	}
	local := email[:at]
	return &local
}

// SocialLogin resolves a provider identity to a user and opens a session.
// Resolution order: existing (provider, provider_id) link, then email match
// (the provider account gets linked), then a fresh user.
func SocialLogin(db *gorm.DB, input SocialLoginInput) (*AuthResult, error) {
	if input.ProviderID == "" || input.Email == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Provider identity is incomplete")
	}

	var result *AuthResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var user *userModel.UserModel

		social, err := authRepo.FindSocialLogin(tx, string(input.Provider), input.ProviderID)
		switch {
		case err == nil:
			social.AccessToken = input.AccessToken
			social.RefreshToken = input.RefreshToken
			if err := authRepo.UpdateSocialLogin(tx, social); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to update social login")
			}
			user, err = authRepo.FindUserByID(tx, social.UserID)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve linked user")
			}

		case errors.Is(err, gorm.ErrRecordNotFound):
			user, err = authRepo.FindUserByEmail(tx, input.Email)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve user")
				}
				user = &userModel.UserModel{
					Email:          input.Email,
					UserName:       usernameFromEmail(input.Email),
					FullName:       input.FullName,
					ProfilePicture: input.ProfilePicture,
				}
				user.SetDefaultValues()
				// The derived username may already be taken.
				if user.UserName != nil {
					var taken int64
					tx.Model(&userModel.UserModel{}).Where("user_name = ?", *user.UserName).Count(&taken)
					if taken > 0 {
						user.UserName = nil
					}
				}
				if err := authRepo.CreateUser(tx, user); err != nil {
					return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
				}
			}
			link := &authModel.SocialLoginModel{
				Provider:     input.Provider,
				ProviderID:   input.ProviderID,
				UserID:       user.ID,
				AccessToken:  input.AccessToken,
				RefreshToken: input.RefreshToken,
			}
			if err := authRepo.CreateSocialLogin(tx, link); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Failed to link social login")
			}

		default:
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve social login")
		}

		if user.Status != constants.StatusActive {
			return fiber.NewError(fiber.StatusForbidden, "Account is not active")
		}

		res, err := issueTokens(tx, user)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Social login failed")
	}
	return result, nil
}

// GoogleLogin verifies a Google ID token and runs the social resolution.
func GoogleLogin(db *gorm.DB, idToken string) (*AuthResult, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "id_token is required")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to decode ID token")
	}

	input := SocialLoginInput{
		Provider:   constants.ProviderGoogle,
		ProviderID: claimSet.Sub,
		Email:      claimSet.Email,
	}
	if claimSet.Name != "" {
		name := claimSet.Name
		input.FullName = &name
	}
	if claimSet.Picture != "" {
		pic := claimSet.Picture
		input.ProfilePicture = &pic
	}
	return SocialLogin(db, input)
}

func githubOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     configs.GithubClientID,
		ClientSecret: configs.GithubClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://github.com/login/oauth/authorize",
			TokenURL: "https://github.com/login/oauth/access_token",
		},
		Scopes: []string{"read:user", "user:email"},
	}
}

type githubUser struct {
	ID        int64   `json:"id"`
	Login     string  `json:"login"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

func githubGet(ctx context.Context, client *http.Client, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GithubLogin exchanges an OAuth code, fetches the GitHub profile, and runs
// the social resolution. The primary verified email is preferred when the
// profile email is hidden.
func GithubLogin(ctx context.Context, db *gorm.DB, code string) (*AuthResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "code is required")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conf := githubOAuthConfig()
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid GitHub authorization code")
	}
	client := conf.Client(ctx, token)

	var profile githubUser
	if err := githubGet(ctx, client, "https://api.github.com/user", &profile); err != nil {
		return nil, fiber.NewError(fiber.StatusBadGateway, "Failed to fetch GitHub profile")
	}

	email := ""
	if profile.Email != nil {
		email = *profile.Email
	}
	if email == "" {
		var emails []githubEmail
		if err := githubGet(ctx, client, "https://api.github.com/user/emails", &emails); err == nil {
			for _, e := range emails {
				if e.Primary && e.Verified {
					email = e.Email
					break
				}
			}
		}
	}
	if email == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "GitHub account has no verified email")
	}

	input := SocialLoginInput{
		Provider:       constants.ProviderGithub,
		ProviderID:     fmt.Sprintf("%d", profile.ID),
		Email:          email,
		ProfilePicture: profile.AvatarURL,
		AccessToken:    &token.AccessToken,
	}
	if profile.Name != nil && *profile.Name != "" {
		input.FullName = profile.Name
	} else if profile.Login != "" {
		login := profile.Login
		input.FullName = &login
	}
	if token.RefreshToken != "" {
		input.RefreshToken = &token.RefreshToken
	}
	return SocialLogin(db, input)
}
