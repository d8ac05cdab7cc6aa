package usecase_test

import (
	"context"
	"errors"
	"testing"

	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/user"
	"conversational-task-manager/internal/user/usecase"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

type mockUserRepo struct {
	getByIDFunc  func(id string) (model.User, error)
	getByKeyFunc func(keyHash string) (model.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return m.getByIDFunc(id)
}

func (m *mockUserRepo) GetByAPIKeyHash(ctx context.Context, keyHash string) (model.User, error) {
	return m.getByKeyFunc(keyHash)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Key Rejected", func(t *testing.T) {
		d := usecase.New(&mockLogger{}, &mockUserRepo{})
		if _, err := d.Authenticate(ctx, "   "); !errors.Is(err, user.ErrInvalidAPIKey) {
			t.Errorf("expected ErrInvalidAPIKey, got %v", err)
		}
	})

	t.Run("Unknown Key Maps To Invalid", func(t *testing.T) {
		repo := &mockUserRepo{
			getByKeyFunc: func(keyHash string) (model.User, error) {
				return model.User{}, user.ErrNotFound
			},
		}
		d := usecase.New(&mockLogger{}, repo)
		if _, err := d.Authenticate(ctx, "nope"); !errors.Is(err, user.ErrInvalidAPIKey) {
			t.Errorf("expected ErrInvalidAPIKey, got %v", err)
		}
	})

	t.Run("Key Hashed Before Lookup", func(t *testing.T) {
		var gotHash string
		repo := &mockUserRepo{
			getByKeyFunc: func(keyHash string) (model.User, error) {
				gotHash = keyHash
				return model.User{ID: "user-1"}, nil
			},
		}
		d := usecase.New(&mockLogger{}, repo)

		u, err := d.Authenticate(ctx, "secret-key")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != "user-1" {
			t.Errorf("unexpected user: %+v", u)
		}
		if gotHash != usecase.HashAPIKey("secret-key") {
			t.Errorf("raw key reached the repository: %q", gotHash)
		}
		if gotHash == "secret-key" {
			t.Errorf("api key stored unhashed")
		}
	})
}
