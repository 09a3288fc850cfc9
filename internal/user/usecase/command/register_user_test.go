package command

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stocktrail/stocktrail/internal/user/domain"
	"github.com/stocktrail/stocktrail/pkg/auth"
)

// Mock UserRepository
type mockUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*domain.User
	nextID uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.nextID
	m.nextID++
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.User
	for _, user := range m.users {
		out = append(out, *user)
	}
	return out, nil
}

func TestRegisterUser_Defaults(t *testing.T) {
	repo := newMockUserRepo()
	handler := NewRegisterUserHandler(repo)

	user, err := handler.Handle(context.Background(), RegisterUserCommand{
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Password: "s3cret-pass",
		FullName: "Jordan Smith",
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if user.Role != domain.RoleStaff {
		t.Errorf("expected default role staff, got %s", user.Role)
	}
	if !user.IsActive {
		t.Error("new user must be active")
	}
	if user.Password == "s3cret-pass" {
		t.Error("password must be stored hashed")
	}
	if !auth.CheckPassword(user.Password, "s3cret-pass") {
		t.Error("stored hash must verify against the plaintext")
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := newMockUserRepo()
	handler := NewRegisterUserHandler(repo)

	cmd := RegisterUserCommand{
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Password: "s3cret-pass",
		FullName: "Jordan Smith",
	}
	if _, err := handler.Handle(context.Background(), cmd); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	cmd.Email = "other@example.com"
	if _, err := handler.Handle(context.Background(), cmd); err == nil {
		t.Error("expected error for duplicate username")
	}
}

func TestRegisterUser_Validation(t *testing.T) {
	repo := newMockUserRepo()
	handler := NewRegisterUserHandler(repo)

	cases := []struct {
		name string
		cmd  RegisterUserCommand
	}{
		{"missing username", RegisterUserCommand{Email: "a@b.c", Password: "longenough", FullName: "A"}},
		{"missing email", RegisterUserCommand{Username: "a", Password: "longenough", FullName: "A"}},
		{"short password", RegisterUserCommand{Username: "a", Email: "a@b.c", Password: "short", FullName: "A"}},
		{"missing full name", RegisterUserCommand{Username: "a", Email: "a@b.c", Password: "longenough"}},
		{"unknown role", RegisterUserCommand{Username: "a", Email: "a@b.c", Password: "longenough", FullName: "A", Role: "owner"}},
	}
	for _, tc := range cases {
		if _, err := handler.Handle(context.Background(), tc.cmd); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestLoginUser(t *testing.T) {
	repo := newMockUserRepo()
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	if _, err := register.Handle(context.Background(), RegisterUserCommand{
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Password: "s3cret-pass",
		FullName: "Jordan Smith",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	resp, err := login.Handle(context.Background(), LoginUserCommand{
		Username: "jsmith",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("expected login success, got error: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token")
	}

	claims, err := auth.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.Username != "jsmith" || claims.Role != domain.RoleStaff {
		t.Errorf("unexpected claims %+v", claims)
	}
}

func TestLoginUser_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	register := NewRegisterUserHandler(repo)
	login := NewLoginUserHandler(repo)

	if _, err := register.Handle(context.Background(), RegisterUserCommand{
		Username: "jsmith",
		Email:    "jsmith@example.com",
		Password: "s3cret-pass",
		FullName: "Jordan Smith",
	}); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	_, err := login.Handle(context.Background(), LoginUserCommand{
		Username: "jsmith",
		Password: "wrong-pass",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}

func TestLoginUser_UnknownUser(t *testing.T) {
	repo := newMockUserRepo()
	login := NewLoginUserHandler(repo)

	_, err := login.Handle(context.Background(), LoginUserCommand{
		Username: "ghost",
		Password: "whatever",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got: %v", err)
	}
}
