package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"smartmenu/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminNotConfigured = errors.New("admin account not configured")
)

// RoleAdmin is the role required by the admin dashboard routes.
const RoleAdmin = "admin"

// AdminToken is an issued access token.
type AdminToken struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// IAdminAuthUseCase authenticates the single configured admin account.

type IAdminAuthUseCase interface {
	Login(ctx context.Context, email, password string) (AdminToken, error)
}

type AdminAuthUseCase struct {
	email        string
	passwordHash []byte
	tokens       interfaces.ITokenIssuer
}

var _ IAdminAuthUseCase = (*AdminAuthUseCase)(nil)

// NewAdminAuthUseCase expects passwordHash to be a bcrypt hash.
func NewAdminAuthUseCase(email, passwordHash string, tokens interfaces.ITokenIssuer) *AdminAuthUseCase {
	return &AdminAuthUseCase{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(strings.TrimSpace(passwordHash)),
		tokens:       tokens,
	}
}

func (u *AdminAuthUseCase) Login(_ context.Context, email, password string) (AdminToken, error) {
	log := logrus.WithFields(logrus.Fields{"component": "admin", "layer": "usecase"})
	if u.email == "" || len(u.passwordHash) == 0 || u.tokens == nil {
		log.Warn("login attempted but admin account is not configured")
		return AdminToken{}, ErrAdminNotConfigured
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != u.email {
		log.Info("login rejected: unknown email")
		return AdminToken{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		log.Info("login rejected: password mismatch")
		return AdminToken{}, ErrInvalidCredentials
	}

	token, exp, err := u.tokens.Issue(email, []string{RoleAdmin})
	if err != nil {
		log.WithError(err).Error("token issue failed")
		return AdminToken{}, err
	}
	log.WithField("email", email).Info("admin logged in")
	return AdminToken{AccessToken: token, ExpiresAt: exp}, nil
}
