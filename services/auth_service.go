package services

import (
	"os"
	"time"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

var secretKey = []byte(getSecret("JWT_SECRET", "stayhub-dev-secret"))

func getSecret(env, fallback string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}

// UserInfo is the identity embedded in tokens
type UserInfo struct {
	UserId uint `json:"userid"`
	Role   int  `json:"role"`
}

// Claims are the JWT claims carried by access tokens
type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateToken signs an access token valid for expiryMinutes
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// AuthService authenticates against the account collection
type AuthService struct {
	store *HotelStore
}

// NewAuthService creates an AuthService over the given store
func NewAuthService(store *HotelStore) *AuthService {
	return &AuthService{store: store}
}

// Login checks credentials and returns the user plus a signed token
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return models.User{}, "", errors.NewAppError(errors.ErrCodeUnauthorized, "invalid email or password", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", errors.NewAppError(errors.ErrCodeUnauthorized, "invalid email or password", err)
	}

	token, err := GenerateToken(UserInfo{UserId: user.ID, Role: user.Role}, 60*24*3)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// Register creates a regular account and returns it with a signed token
func (s *AuthService) Register(email, password, firstName, lastName string) (models.User, string, error) {
	if len(password) < 6 {
		return models.User{}, "", errors.NewAppError(errors.ErrCodeInvalidPassword, "password must have at least 6 characters", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	user, err := s.store.AddUser(models.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: firstName,
		LastName:  lastName,
		Role:      constants.RoleUser,
	})
	if err != nil {
		return models.User{}, "", err
	}

	token, err := GenerateToken(UserInfo{UserId: user.ID, Role: user.Role}, 60*24*3)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
