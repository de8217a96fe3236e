package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AlibekovAA/todo-board/backend/internal/common/clock"
	commoncrypto "github.com/AlibekovAA/todo-board/backend/internal/common/crypto"
	commonerrors "github.com/AlibekovAA/todo-board/backend/internal/common/errors"
	"github.com/AlibekovAA/todo-board/backend/internal/common/logger"
	userdomain "github.com/AlibekovAA/todo-board/backend/internal/user/domain"
	userrepo "github.com/AlibekovAA/todo-board/backend/internal/user/repository"
)

type AuthService struct {
	repo           userrepo.Repository
	hasher         commoncrypto.PasswordHasher
	idGenerator    commoncrypto.IDGenerator
	jwtSecret      []byte
	clock          clock.Clock
	accessTokenTTL time.Duration
	log            *logger.Logger
}

func NewAuthService(
	repo userrepo.Repository,
	hasher commoncrypto.PasswordHasher,
	idGenerator commoncrypto.IDGenerator,
	jwtSecret string,
	accessTokenTTL time.Duration,
	clk clock.Clock,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		repo:           repo,
		hasher:         hasher,
		idGenerator:    idGenerator,
		jwtSecret:      []byte(jwtSecret),
		clock:          clk,
		accessTokenTTL: accessTokenTTL,
		log:            log,
	}
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type TokenResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (userdomain.Summary, error) {
	username := strings.TrimSpace(input.Username)

	s.log.WithFields(ctx, logger.Fields{
		"username": username,
		"action":   "register_attempt",
	}).Info("register attempt")

	if err := validateCredentials(username, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "register_validation_failed",
		}).Warnf("register validation failed: %v", err)
		return userdomain.Summary{}, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "register_hash_failed",
		}).Errorf("register failed: password hash error: %v", err)
		return userdomain.Summary{}, commonerrors.ErrInternalError.WithCause(err)
	}

	user := userdomain.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, userrepo.ErrUsernameAlreadyExists) {
			s.log.WithFields(ctx, logger.Fields{
				"username": username,
				"action":   "register_username_exists",
			}).Warn("register failed: already exists")
			return userdomain.Summary{}, ErrUsernameTaken
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "register_create_failed",
		}).Errorf("register failed: %v", err)
		return userdomain.Summary{}, commonerrors.ErrInternalError.WithCause(err)
	}

	incrementUsersRegistered()
	s.log.WithFields(ctx, logger.Fields{
		"username": username,
		"action":   "register_success",
	}).Info("register success")

	return userdomain.Summary{
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (TokenResult, error) {
	username := strings.TrimSpace(input.Username)

	s.log.WithFields(ctx, logger.Fields{
		"username": username,
		"action":   "login_attempt",
	}).Info("login attempt")

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userrepo.ErrUserNotFound) {
			s.log.WithFields(ctx, logger.Fields{
				"username": username,
				"action":   "login_user_not_found",
			}).Warn("login failed: not found")
			incrementLogins("failure")
			return TokenResult{}, ErrInvalidCredentials
		}
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "login_fetch_failed",
		}).Errorf("login failed: %v", err)
		return TokenResult{}, commonerrors.ErrInternalError.WithCause(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "login_invalid_password",
		}).Warn("login failed: invalid password")
		incrementLogins("failure")
		return TokenResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueAccessToken(user)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"username": username,
			"action":   "login_token_issue_failed",
		}).Errorf("login failed: token issue error: %v", err)
		return TokenResult{}, commonerrors.ErrInternalError.WithCause(err)
	}

	incrementLogins("success")
	s.log.WithFields(ctx, logger.Fields{
		"username": username,
		"action":   "login_success",
	}).Info("login success")

	return TokenResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AuthService) issueAccessToken(user userdomain.User) (string, time.Time, error) {
	jti, err := s.idGenerator.NewID()
	if err != nil {
		return "", time.Time{}, err
	}

	now := s.clock.Now()
	expiresAt := now.Add(s.accessTokenTTL)
	claims := jwt.MapClaims{
		"sub": user.Username,
		"jti": jti,
		"exp": expiresAt.Unix(),
		"iat": now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := t.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	incrementAccessTokensIssued()
	return tokenString, expiresAt, nil
}
