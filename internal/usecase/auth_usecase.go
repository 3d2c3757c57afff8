package usecase

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/sahil00000001/SMFurnishAdmin/internal/domain"
)

var _ domain.AuthUseCase = (*authUseCase)(nil)

type authUseCase struct {
	storage domain.Storage
	log     *logrus.Logger
}

func NewAuthUseCase(storage domain.Storage, logger *logrus.Logger) domain.AuthUseCase {
	return &authUseCase{
		storage: storage,
		log:     logger,
	}
}

// Login checks the credential pair against the stored admin user. The stored
// password is a bcrypt hash; lookups and mismatches both collapse into
// ErrInvalidCredentials so callers cannot tell the two apart.
func (uc *authUseCase) Login(username, password string) (*domain.User, error) {
	user, err := uc.storage.GetUserByUsername(username)
	if err != nil {
		uc.log.Warnf("Use Case: Login failed, unknown user %q", username)
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		uc.log.Warnf("Use Case: Login failed, wrong password for user %q", username)
		return nil, domain.ErrInvalidCredentials
	}

	uc.log.Infof("Use Case: Login successful for user %q", username)
	return user, nil
}
