package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	usersService "github.com/m04kA/HMS-FrontdeskService/internal/service/users"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/users/models"
)

type fakeUserService struct {
	deactivated []int64
	err         error
}

func (f *fakeUserService) Create(_ context.Context, _ *models.CreateUserRequest) (*models.UserResponse, error) {
	return nil, nil
}

func (f *fakeUserService) GetByID(_ context.Context, _ int64) (*models.UserResponse, error) {
	return nil, nil
}

func (f *fakeUserService) List(_ context.Context) (*models.UserListResponse, error) {
	return &models.UserListResponse{}, nil
}

func (f *fakeUserService) Update(_ context.Context, _ int64, _ *models.UpdateUserRequest) (*models.UserResponse, error) {
	return nil, nil
}

func (f *fakeUserService) Deactivate(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deactivated = append(f.deactivated, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandleDelete_DeactivatesUser(t *testing.T) {
	svc := &fakeUserService{}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/7", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "7"})
	rec := httptest.NewRecorder()

	h.HandleDelete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int64{7}, svc.deactivated, "удаление сотрудника деактивирует учетную запись")
}

func TestHandleDelete_UnknownUser(t *testing.T) {
	svc := &fakeUserService{err: usersService.ErrUserNotFound}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/99", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "99"})
	rec := httptest.NewRecorder()

	h.HandleDelete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDelete_InvalidID(t *testing.T) {
	h := NewHandler(&fakeUserService{}, nopLogger{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/abc", nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "abc"})
	rec := httptest.NewRecorder()

	h.HandleDelete(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
