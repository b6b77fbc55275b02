package application

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"frankies/internal/service/account/domain"
)

type mockUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	next    int
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: make(map[string]*domain.User), byEmail: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	m.next++
	user.ID = "user-" + strconv.Itoa(m.next)
	m.byID[user.ID] = user
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *mockUserRepo) Save(_ context.Context, user *domain.User) error {
	m.byID[user.ID] = user
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	u, ok := m.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	delete(m.byEmail, u.Email)
	delete(m.byID, id)
	return nil
}

// fakeHasher keeps tests off bcrypt's cost while preserving the contract.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return domain.ErrInvalidCredentials
	}
	return nil
}

func newTestAccounts() (*AccountService, *mockUserRepo) {
	repo := newMockUserRepo()
	return NewAccountService(repo, fakeHasher{}, noop.NewTracerProvider().Tracer("test")), repo
}

func createUserReq() *CreateUserRequest {
	return &CreateUserRequest{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Phone:     "5551234",
		Password:  "s3cret!",
	}
}

func TestAddUserHashesPassword(t *testing.T) {
	svc, repo := newTestAccounts()

	profile, err := svc.AddUser(context.Background(), createUserReq())
	require.NoError(t, err)
	require.NotEmpty(t, profile.ID)
	require.Equal(t, "active", profile.Status)

	stored := repo.byEmail["jane@example.com"]
	require.Equal(t, "hashed:s3cret!", stored.PasswordHash)
}

func TestAddUserDuplicateEmail(t *testing.T) {
	svc, _ := newTestAccounts()

	_, err := svc.AddUser(context.Background(), createUserReq())
	require.NoError(t, err)

	_, err = svc.AddUser(context.Background(), createUserReq())
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUpdateUser(t *testing.T) {
	svc, repo := newTestAccounts()

	profile, err := svc.AddUser(context.Background(), createUserReq())
	require.NoError(t, err)

	err = svc.UpdateUser(context.Background(), profile.ID, &UpdateUserRequest{
		Email:     "jane@example.com",
		FirstName: "Janet",
		LastName:  "Doe",
		Phone:     "5559999",
	})
	require.NoError(t, err)

	stored := repo.byID[profile.ID]
	require.Equal(t, "Janet", stored.FirstName)
	require.Equal(t, "5559999", stored.Phone)
	require.Equal(t, "active", stored.Status)
}

func TestUpdateUserNotFound(t *testing.T) {
	svc, _ := newTestAccounts()

	err := svc.UpdateUser(context.Background(), "missing", &UpdateUserRequest{Email: "x@example.com"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	svc, repo := newTestAccounts()

	profile, err := svc.AddUser(context.Background(), createUserReq())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), profile.ID))
	require.Empty(t, repo.byID)

	err = svc.DeleteUser(context.Background(), profile.ID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUserProfile(t *testing.T) {
	svc, _ := newTestAccounts()

	created, err := svc.AddUser(context.Background(), createUserReq())
	require.NoError(t, err)

	profile, err := svc.GetUserProfile(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "Jane", profile.FirstName)
	require.Equal(t, "jane@example.com", profile.Email)

	// Unknown user yields nil, nil; the handler turns that into a 404.
	profile, err = svc.GetUserProfile(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, profile)
}

func TestUpdateUserProfile(t *testing.T) {
	svc, _ := newTestAccounts()

	created, err := svc.AddUser(context.Background(), createUserReq())
	require.NoError(t, err)

	profile, err := svc.UpdateUserProfile(context.Background(), created.ID, &UpdateProfileRequest{
		FirstName: "Janet",
		LastName:  "Smith",
		Phone:     "5550000",
	})
	require.NoError(t, err)
	require.Equal(t, "Janet", profile.FirstName)
	require.Equal(t, "Smith", profile.LastName)

	profile, err = svc.UpdateUserProfile(context.Background(), "missing", &UpdateProfileRequest{FirstName: "x"})
	require.NoError(t, err)
	require.Nil(t, profile)
}
