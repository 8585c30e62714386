package auth

import (
	"context"
	"errors"
	"testing"

	"skill-matrix/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUsers struct {
	byID map[uuid.UUID]user.User
	err  error
}

func newMemUsers() *memUsers {
	return &memUsers{byID: map[uuid.UUID]user.User{}}
}

func (m *memUsers) Create(_ context.Context, u user.User) error {
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.byID {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	if m.err != nil {
		return user.User{}, m.err
	}
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, err := m.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func TestService_RegisterAndLogin(t *testing.T) {
	svc := NewService(newMemUsers(), WithBcryptCost(bcrypt.MinCost))
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Email: " Ops@Example.com ", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", u.Email)
	assert.Empty(t, u.PasswordHash)

	got, err := svc.Login(ctx, LoginInput{Email: "OPS@example.com", Password: "correct horse"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.Login(ctx, LoginInput{Email: "ops@example.com", Password: "wrong password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Email: "nobody@example.com", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_RegisterRejects(t *testing.T) {
	svc := NewService(newMemUsers(), WithBcryptCost(bcrypt.MinCost))
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "no-at-sign", Password: "long enough"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@", Password: "long enough"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.io", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.io", Password: "long enough"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterInput{Email: "A@B.io", Password: "long enough"})
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestService_StoreFailure(t *testing.T) {
	users := newMemUsers()
	users.err = errors.New("connection reset")
	svc := NewService(users, WithBcryptCost(bcrypt.MinCost))

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.io", Password: "long enough"})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.Login(context.Background(), LoginInput{Email: "a@b.io", Password: "long enough"})
	assert.ErrorIs(t, err, ErrInternal)
}
