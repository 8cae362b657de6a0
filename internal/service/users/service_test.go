package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xarena/XArena-BookingService/internal/domain"
	userStorage "github.com/xarena/XArena-BookingService/internal/infra/storage/user"
)

type mockUserRepo struct {
	users      map[int64]*domain.User
	listedRole domain.Role
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, userStorage.ErrUserNotFound
}

func (m *mockUserRepo) ListByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	m.listedRole = role
	var out []*domain.User
	for _, u := range m.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *mockUserRepo) {
	repo := &mockUserRepo{users: map[int64]*domain.User{
		2: {ID: 2, Username: "staf_budi", Role: domain.RoleStaff},
		5: {ID: 5, Username: "andi", Role: domain.RoleCustomer},
		6: {ID: 6, Username: "siti", Role: domain.RoleCustomer},
		9: {ID: 9, Username: "admin", Role: domain.RoleAdmin},
	}}
	return NewService(repo, nopLogger{}), repo
}

func TestListCustomers(t *testing.T) {
	svc, repo := newService()

	result, err := svc.ListCustomers(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, repo.listedRole)
	assert.Equal(t, 2, result.Total)
	for _, u := range result.Users {
		assert.Equal(t, string(domain.RoleCustomer), u.Role)
	}
}

func TestListCustomersStaffOnly(t *testing.T) {
	svc, _ := newService()

	for _, actorID := range []int64{5, 9} {
		_, err := svc.ListCustomers(context.Background(), actorID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	}
}

func TestListCustomersUnknownActor(t *testing.T) {
	svc, _ := newService()

	_, err := svc.ListCustomers(context.Background(), 99)

	assert.ErrorIs(t, err, ErrUserNotFound)
}
