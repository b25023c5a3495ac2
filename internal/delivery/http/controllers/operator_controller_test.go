package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/helpers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// fakeOperatorService implements domain.HallOperatorService for handler tests.
type fakeOperatorService struct {
	operators    []*domain.HallOperator
	createErr    error
	updateErr    error
	deleteErr    error
	emailTaken   bool
	lastHallName string
	lastEmail    string
}

func (f *fakeOperatorService) Create(_ context.Context, op *domain.HallOperator) (*domain.HallOperator, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	op.ID = "op-1"
	return op, nil
}

func (f *fakeOperatorService) GetByID(_ context.Context, id string) (*domain.HallOperator, error) {
	for _, op := range f.operators {
		if op.ID == id {
			return op, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeOperatorService) ListAll(_ context.Context) ([]*domain.HallOperator, error) {
	return f.operators, nil
}

func (f *fakeOperatorService) ListByHallName(_ context.Context, hallName string) ([]*domain.HallOperator, error) {
	f.lastHallName = hallName
	return f.operators, nil
}

func (f *fakeOperatorService) Update(_ context.Context, id string, patch *domain.HallOperator) (*domain.HallOperator, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	patch.ID = id
	return patch, nil
}

func (f *fakeOperatorService) Delete(_ context.Context, id string) error {
	return f.deleteErr
}

func (f *fakeOperatorService) EmailExists(_ context.Context, email string) (bool, error) {
	f.lastEmail = email
	return f.emailTaken, nil
}

func TestOperatorController_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := NewOperatorController(testLogger, &fakeOperatorService{})
		body := `{"hallNames":["Falconry Hall"],"headName":"Ravi Kumar","headEmail":"ravi@gmail.com","phone":"9876543210"}`
		req := httptest.NewRequest(http.MethodPost, "/api/hall-operators", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		ctrl.Create(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		require.Nil(t, envelope.Error)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := NewOperatorController(testLogger, &fakeOperatorService{createErr: domain.ErrDuplicateEmail})
		body := `{"hallNames":["Falconry Hall"],"headName":"Ravi Kumar","headEmail":"ravi@gmail.com"}`
		req := httptest.NewRequest(http.MethodPost, "/api/hall-operators", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		ctrl.Create(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("invalid input", func(t *testing.T) {
		ctrl := NewOperatorController(testLogger, &fakeOperatorService{createErr: domain.ErrInvalidInput})
		req := httptest.NewRequest(http.MethodPost, "/api/hall-operators", bytes.NewBufferString(`{"headName":"Ravi"}`))
		rr := httptest.NewRecorder()

		ctrl.Create(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestOperatorController_ListByHall(t *testing.T) {
	fake := &fakeOperatorService{operators: []*domain.HallOperator{{ID: "op-1", HeadName: "Ravi Kumar"}}}
	ctrl := NewOperatorController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/api/hall-operators/by-hall?hallName=Falconry+Hall", nil)
	rr := httptest.NewRecorder()

	ctrl.ListByHall(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Falconry Hall", fake.lastHallName)
}

func TestOperatorController_CheckEmail(t *testing.T) {
	t.Run("taken", func(t *testing.T) {
		fake := &fakeOperatorService{emailTaken: true}
		ctrl := NewOperatorController(testLogger, fake)
		req := httptest.NewRequest(http.MethodGet, "/api/hall-operators/check-email?email=ravi@gmail.com", nil)
		rr := httptest.NewRecorder()

		ctrl.CheckEmail(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var envelope helpers.APIResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
		dataMap, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, dataMap["exists"])
		assert.Equal(t, "ravi@gmail.com", fake.lastEmail)
	})

	t.Run("missing email", func(t *testing.T) {
		ctrl := NewOperatorController(testLogger, &fakeOperatorService{})
		req := httptest.NewRequest(http.MethodGet, "/api/hall-operators/check-email", nil)
		rr := httptest.NewRecorder()

		ctrl.CheckEmail(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestOperatorController_GetAndDelete(t *testing.T) {
	fake := &fakeOperatorService{operators: []*domain.HallOperator{{ID: "op-1", HeadName: "Ravi Kumar"}}}
	ctrl := NewOperatorController(testLogger, fake)

	t.Run("get found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/hall-operators/op-1", nil)
		req.SetPathValue("id", "op-1")
		rr := httptest.NewRecorder()

		ctrl.Get(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("get missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/hall-operators/op-404", nil)
		req.SetPathValue("id", "op-404")
		rr := httptest.NewRecorder()

		ctrl.Get(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete missing", func(t *testing.T) {
		missing := NewOperatorController(testLogger, &fakeOperatorService{deleteErr: domain.ErrNotFound})
		req := httptest.NewRequest(http.MethodDelete, "/api/hall-operators/op-404", nil)
		req.SetPathValue("id", "op-404")
		rr := httptest.NewRecorder()

		missing.Delete(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
