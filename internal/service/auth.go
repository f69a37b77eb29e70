package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gatherly/backend/internal/dto"
	"github.com/gatherly/backend/internal/model"
	"github.com/gatherly/backend/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type AuthService interface {
	Register(request dto.RegisterRequest) (model.User, error)
	IssueTokens(request dto.TokenRequest) (dto.TokenPair, error)
	Refresh(refreshToken string) (dto.TokenPair, error)
	ValidateAccessToken(token string) (model.User, error)
}

type tokenClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type authService struct {
	userRepository repository.UserRepository
	config         dto.Config
}

func newAuthService(userRepository repository.UserRepository, config dto.Config) AuthService {
	return &authService{userRepository: userRepository, config: config}
}

func (a *authService) Register(request dto.RegisterRequest) (model.User, error) {
	if request.Password != request.Password2 {
		return model.User{}, fmt.Errorf("%w: passwords don't match", dto.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	user, err := a.userRepository.Create(model.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: string(hash),
		FullName:     request.FullName,
		Bio:          request.Bio,
		Location:     request.Location,
	})
	if err != nil {
		if errors.Is(err, dto.ErrConflict) {
			return model.User{}, fmt.Errorf("%w: username or email already taken", dto.ErrConflict)
		}
		return model.User{}, err
	}

	return user, nil
}

func (a *authService) IssueTokens(request dto.TokenRequest) (dto.TokenPair, error) {
	user, err := a.userRepository.GetByUsername(request.Username)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return dto.TokenPair{}, fmt.Errorf("%w: invalid username or password", dto.ErrNotAuthenticated)
		}
		return dto.TokenPair{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
		return dto.TokenPair{}, fmt.Errorf("%w: invalid username or password", dto.ErrNotAuthenticated)
	}

	return a.tokenPair(user)
}

func (a *authService) Refresh(refreshToken string) (dto.TokenPair, error) {
	claims, err := a.parseToken(refreshToken)
	if err != nil {
		return dto.TokenPair{}, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return dto.TokenPair{}, fmt.Errorf("%w: not a refresh token", dto.ErrNotAuthenticated)
	}

	user, err := a.userFromClaims(claims)
	if err != nil {
		return dto.TokenPair{}, err
	}

	return a.tokenPair(user)
}

func (a *authService) ValidateAccessToken(token string) (model.User, error) {
	claims, err := a.parseToken(token)
	if err != nil {
		return model.User{}, err
	}
	if claims.TokenType != tokenTypeAccess {
		return model.User{}, fmt.Errorf("%w: not an access token", dto.ErrNotAuthenticated)
	}

	return a.userFromClaims(claims)
}

func (a *authService) tokenPair(user model.User) (dto.TokenPair, error) {
	access, err := a.signToken(user, tokenTypeAccess, a.config.AccessTokenTTL)
	if err != nil {
		return dto.TokenPair{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	refresh, err := a.signToken(user, tokenTypeRefresh, a.config.RefreshTokenTTL)
	if err != nil {
		return dto.TokenPair{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	return dto.TokenPair{Access: access, Refresh: refresh}, nil
}

func (a *authService) signToken(user model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			Issuer:    a.config.JWTIssuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.config.JWTSecret))
}

func (a *authService) parseToken(tokenString string) (*tokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(a.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrNotAuthenticated, err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid token", dto.ErrNotAuthenticated)
	}

	return claims, nil
}

func (a *authService) userFromClaims(claims *tokenClaims) (model.User, error) {
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return model.User{}, fmt.Errorf("%w: invalid subject", dto.ErrNotAuthenticated)
	}

	user, err := a.userRepository.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return model.User{}, fmt.Errorf("%w: unknown user", dto.ErrNotAuthenticated)
		}
		return model.User{}, err
	}

	return user, nil
}
