package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/AlibekovAA/todo-board/backend/internal/auth/service"
	"github.com/AlibekovAA/todo-board/backend/internal/common/clock"
	"github.com/AlibekovAA/todo-board/backend/internal/common/logger"
	userdomain "github.com/AlibekovAA/todo-board/backend/internal/user/domain"
	userrepo "github.com/AlibekovAA/todo-board/backend/internal/user/repository"
)

const testJWTSecret = "test-secret-key-must-be-at-least-32-bytes-long"

func setupAuthService(t *testing.T) (*service.AuthService, *mockUserRepo, *mockHasher, *mockIDGenerator, *clock.MockClock) {
	t.Helper()
	repo := &mockUserRepo{}
	hasher := &mockHasher{}
	idGen := &mockIDGenerator{}
	mockClock := clock.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	log, _ := logger.New("", "test", "info")

	svc := service.NewAuthService(
		repo,
		hasher,
		idGen,
		testJWTSecret,
		24*time.Hour,
		mockClock,
		log,
	)

	return svc, repo, hasher, idGen, mockClock
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, hasher, _, mockClock := setupAuthService(t)

	username := "testuser"
	password := "password123"
	hashedPassword := "hashed_password123"

	hasher.hashFunc = func(p string) (string, error) {
		if p != password {
			t.Errorf("expected password %s, got %s", password, p)
		}
		return hashedPassword, nil
	}

	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		if user.Username != username {
			t.Errorf("expected username %s, got %s", username, user.Username)
		}
		if user.PasswordHash != hashedPassword {
			t.Errorf("expected password hash %s, got %s", hashedPassword, user.PasswordHash)
		}
		if !user.CreatedAt.Equal(mockClock.Now()) {
			t.Errorf("expected created_at %v, got %v", mockClock.Now(), user.CreatedAt)
		}
		return nil
	}

	summary, err := svc.Register(context.Background(), service.RegisterInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if summary.Username != username {
		t.Errorf("expected username %s, got %s", username, summary.Username)
	}
}

func TestAuthService_Register_TrimsUsername(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	var created string
	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		created = user.Username
		return nil
	}

	summary, err := svc.Register(context.Background(), service.RegisterInput{
		Username: "  alice  ",
		Password: "pw123",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if created != "alice" || summary.Username != "alice" {
		t.Errorf("expected trimmed username %q, got stored=%q returned=%q", "alice", created, summary.Username)
	}
}

func TestAuthService_Register_ValidationError(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		t.Errorf("no account may be created for invalid credentials, got Create(%q)", user.Username)
		return nil
	}

	testCases := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"empty username", "", "password123", service.ErrInvalidUsername},
		{"whitespace-only username", "    ", "password123", service.ErrInvalidUsername},
		{"short username", "ab", "password123", service.ErrInvalidUsername},
		{"long username", strings.Repeat("a", 51), "password123", service.ErrInvalidUsername},
		{"empty password", "testuser", "", service.ErrInvalidPassword},
		{"whitespace-only password", "testuser", "    ", service.ErrInvalidPassword},
		{"short password", "testuser", "abc", service.ErrInvalidPassword},
		{"long password", "testuser", strings.Repeat("p", 129), service.ErrInvalidPassword},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), service.RegisterInput{
				Username: tc.username,
				Password: tc.password,
			})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, repo, _, _, _ := setupAuthService(t)

	repo.createFunc = func(ctx context.Context, user userdomain.User) error {
		return userrepo.ErrUsernameAlreadyExists
	}

	_, err := svc.Register(context.Background(), service.RegisterInput{
		Username: "testuser",
		Password: "password123",
	})
	if !errors.Is(err, service.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, _, _, mockClock := setupAuthService(t)

	repo.findByUsernameFunc = func(ctx context.Context, username string) (userdomain.User, error) {
		return userdomain.User{
			Username:     username,
			PasswordHash: "hashed:password123",
		}, nil
	}

	result, err := svc.Login(context.Background(), service.LoginInput{
		Username: "testuser",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.AccessToken == "" {
		t.Error("expected access token to be set")
	}

	wantExpiry := mockClock.Now().Add(24 * time.Hour)
	if !result.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expected expiry %v, got %v", wantExpiry, result.ExpiresAt)
	}
}

func TestAuthService_Login_UnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	svc, repo, hasher, _, _ := setupAuthService(t)

	_, unknownErr := svc.Login(context.Background(), service.LoginInput{
		Username: "nobody",
		Password: "password123",
	})
	if !errors.Is(unknownErr, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknownErr)
	}

	repo.findByUsernameFunc = func(ctx context.Context, username string) (userdomain.User, error) {
		return userdomain.User{Username: username, PasswordHash: "hash"}, nil
	}
	hasher.compareFunc = func(hash, password string) error {
		return errors.New("mismatch")
	}

	_, wrongErr := svc.Login(context.Background(), service.LoginInput{
		Username: "testuser",
		Password: "wrongpassword",
	})
	if !errors.Is(wrongErr, service.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongErr)
	}

	if unknownErr.Error() != wrongErr.Error() {
		t.Errorf("expected identical errors, got %q and %q", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_IDGenerationError(t *testing.T) {
	svc, repo, _, idGen, _ := setupAuthService(t)

	repo.findByUsernameFunc = func(ctx context.Context, username string) (userdomain.User, error) {
		return userdomain.User{Username: username, PasswordHash: "hash"}, nil
	}
	idGen.newIDFunc = func() (string, error) {
		return "", errors.New("id generation failed")
	}

	_, err := svc.Login(context.Background(), service.LoginInput{
		Username: "testuser",
		Password: "password123",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
