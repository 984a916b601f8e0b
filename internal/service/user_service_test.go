package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-user-api/internal/apperr"
	"go-user-api/internal/domain"
	"go-user-api/internal/dto"
)

// stubRepo 按需塞函数，没塞的方法不该被调到
type stubRepo struct {
	get          func(tx *gorm.DB, id string) (*domain.User, error)
	create       func(tx *gorm.DB, u *domain.User) (*domain.User, error)
	update       func(tx *gorm.DB, id string, p domain.UserPatch) (*domain.User, error)
	delete       func(tx *gorm.DB, id string) (*domain.User, error)
	updateStatus func(tx *gorm.DB, id string, s domain.Status) (*domain.User, error)
	list         func(tx *gorm.DB, f domain.ListFilter) ([]domain.User, error)
}

func (s *stubRepo) Get(tx *gorm.DB, id string) (*domain.User, error) { return s.get(tx, id) }
func (s *stubRepo) Create(tx *gorm.DB, u *domain.User) (*domain.User, error) {
	return s.create(tx, u)
}
func (s *stubRepo) Update(tx *gorm.DB, id string, p domain.UserPatch) (*domain.User, error) {
	return s.update(tx, id, p)
}
func (s *stubRepo) Delete(tx *gorm.DB, id string) (*domain.User, error) { return s.delete(tx, id) }
func (s *stubRepo) UpdateStatus(tx *gorm.DB, id string, st domain.Status) (*domain.User, error) {
	return s.updateStatus(tx, id, st)
}
func (s *stubRepo) List(tx *gorm.DB, f domain.ListFilter) ([]domain.User, error) {
	return s.list(tx, f)
}

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func newService(t *testing.T, repo domain.UserRepository) (*UserService, sqlmock.Sqlmock) {
	db, mock := newMockGorm(t)
	return NewUserService(db, repo, zap.NewNop()), mock
}

func TestGetByID_CommitsOnSuccess(t *testing.T) {
	svc, mock := newService(t, &stubRepo{
		get: func(tx *gorm.DB, id string) (*domain.User, error) {
			return &domain.User{ID: id, FirstName: "Ann", Status: domain.StatusEnabled}, nil
		},
	})
	mock.ExpectBegin()
	mock.ExpectCommit()

	out, err := svc.GetByID(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", out.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_AbsentRollsBackWithNotFound(t *testing.T) {
	svc, mock := newService(t, &stubRepo{
		get: func(tx *gorm.DB, id string) (*domain.User, error) { return nil, nil },
	})
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.GetByID(context.Background(), "missing")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 404, ae.Status)
	assert.Equal(t, "No User found", ae.Detail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_PassesConvertedEntity(t *testing.T) {
	var got *domain.User
	svc, mock := newService(t, &stubRepo{
		create: func(tx *gorm.DB, u *domain.User) (*domain.User, error) {
			got = u
			u.ID = "generated"
			return u, nil
		},
	})
	mock.ExpectBegin()
	mock.ExpectCommit()

	out, err := svc.Create(context.Background(), dto.UserCreate{
		FirstName: "Ann", LastName: "Lee", Gender: 2, Email: "a@x.com",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusEnabled, got.Status)
	assert.Equal(t, "generated", out.ID)
	assert.Equal(t, 1, out.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_RepoErrorRollsBackUnchanged(t *testing.T) {
	boom := errors.New("insert failed")
	svc, mock := newService(t, &stubRepo{
		create: func(tx *gorm.DB, u *domain.User) (*domain.User, error) { return nil, boom },
	})
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Create(context.Background(), dto.UserCreate{FirstName: "A", LastName: "B", Gender: 1})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_AbsentNotFound(t *testing.T) {
	svc, mock := newService(t, &stubRepo{
		update: func(tx *gorm.DB, id string, p domain.UserPatch) (*domain.User, error) {
			return nil, nil
		},
	})
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Update(context.Background(), "missing", dto.UserUpdate{})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 404, ae.Status)
}

func TestDelete_SuccessAndAbsent(t *testing.T) {
	users := map[string]*domain.User{"id-1": {ID: "id-1"}}
	svc, mock := newService(t, &stubRepo{
		delete: func(tx *gorm.DB, id string) (*domain.User, error) { return users[id], nil },
	})
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectRollback()

	require.NoError(t, svc.Delete(context.Background(), "id-1"))

	err := svc.Delete(context.Background(), "id-2")
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 404, ae.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_EmptyResultIsNotFound(t *testing.T) {
	svc, mock := newService(t, &stubRepo{
		list: func(tx *gorm.DB, f domain.ListFilter) ([]domain.User, error) { return nil, nil },
	})
	mock.ExpectBegin()
	mock.ExpectRollback()

	// 空列表按 404 返回，这是沿用下来的既有行为
	_, err := svc.List(context.Background(), domain.ListFilter{})
	var ae *apperr.Error
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 404, ae.Status)
	assert.Equal(t, "No User found", ae.Detail)
}

func TestList_MapsEveryEntity(t *testing.T) {
	svc, mock := newService(t, &stubRepo{
		list: func(tx *gorm.DB, f domain.ListFilter) ([]domain.User, error) {
			return []domain.User{{ID: "a", FirstName: "Ann"}, {ID: "b", FirstName: "Bea"}}, nil
		},
	})
	mock.ExpectBegin()
	mock.ExpectCommit()

	out, err := svc.List(context.Background(), domain.ListFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Ann", out[0].FirstName)
	assert.Equal(t, "Bea", out[1].FirstName)
}

func TestChangeStatus(t *testing.T) {
	svc, mock := newService(t, &stubRepo{
		updateStatus: func(tx *gorm.DB, id string, st domain.Status) (*domain.User, error) {
			return &domain.User{ID: id, Status: st}, nil
		},
	})
	mock.ExpectBegin()
	mock.ExpectCommit()

	blocked := 2
	out, err := svc.ChangeStatus(context.Background(), "id-1", dto.UserStatusUpdate{Status: &blocked})
	require.NoError(t, err)
	assert.Equal(t, 2, out.Status)
}

func TestService_NilSessionIsConfigError(t *testing.T) {
	svc := NewUserService(nil, &stubRepo{}, zap.NewNop())
	_, err := svc.GetByID(context.Background(), "id-1")
	assert.Error(t, err)
	var ae *apperr.Error
	assert.False(t, errors.As(err, &ae), "missing session is a configuration error, not a business error")
}
