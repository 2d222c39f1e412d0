package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripweaver/internal/models/db_models"
	"tripweaver/internal/models/request_models"
	"tripweaver/pkg/utils"
)

type fakeAccountRepo struct {
	byEmail map[string]*db_models.Account
	inserts []*db_models.Account
	err     error
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if f.err != nil {
		return f.err
	}
	f.inserts = append(f.inserts, account)
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	return nil, f.err
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func seededAccountRepo(t *testing.T, email, password string) *fakeAccountRepo {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &fakeAccountRepo{byEmail: map[string]*db_models.Account{
		email: {
			BaseModel:    db_models.BaseModel{ID: uuid.New()},
			Email:        email,
			PasswordHash: hash,
			Role:         "user",
		},
	}}
}

func TestLoginSuccess(t *testing.T) {
	repo := seededAccountRepo(t, "ana@example.com", "correct horse")
	service := NewAccountService(repo)

	token, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := seededAccountRepo(t, "ana@example.com", "correct horse")
	service := NewAccountService(repo)

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "ana@example.com",
		Password: "battery staple",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownAccount(t *testing.T) {
	service := NewAccountService(&fakeAccountRepo{byEmail: map[string]*db_models.Account{}})

	_, err := service.Login(context.Background(), request_models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestCreateAccountHashesPassword(t *testing.T) {
	repo := &fakeAccountRepo{byEmail: map[string]*db_models.Account{}}
	service := NewAccountService(repo)

	err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "correct horse",
	})
	require.NoError(t, err)
	require.Len(t, repo.inserts, 1)
	created := repo.inserts[0]
	assert.Equal(t, "user", created.Role)
	assert.NotEqual(t, "correct horse", created.PasswordHash)
	assert.NoError(t, utils.ComparePasswords(created.PasswordHash, "correct horse"))
}

func TestCreateAccountDuplicateEmail(t *testing.T) {
	repo := seededAccountRepo(t, "ana@example.com", "correct horse")
	service := NewAccountService(repo)

	err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "another one",
	})
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestCreateAccountRepoFailure(t *testing.T) {
	service := NewAccountService(&fakeAccountRepo{err: errors.New("db down")})

	err := service.CreateAccount(context.Background(), request_models.SignUpRequest{
		DisplayName: "Ana",
		Email:       "ana@example.com",
		Password:    "correct horse",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
