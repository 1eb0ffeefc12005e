package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Bannawat01/Chong-toa/internal/model"
	"github.com/Bannawat01/Chong-toa/internal/repository"
)

// --- Mock TableStore ---

type mockTableStore struct {
	createFn func(ctx context.Context, tableNumber, seats uint32) (uint64, error)
	listFn   func(ctx context.Context) ([]model.Table, error)
}

func (m *mockTableStore) Create(ctx context.Context, tableNumber, seats uint32) (uint64, error) {
	return m.createFn(ctx, tableNumber, seats)
}
func (m *mockTableStore) ListAvailable(ctx context.Context) ([]model.Table, error) {
	return m.listFn(ctx)
}

func authedPost(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := postJSON(path, body)
	c.Set("user_id", uint64(1)) // as the JWT middleware would
	return c, rec
}

// --- CreateTable ---

func TestCreateTableSuccess(t *testing.T) {
	store := &mockTableStore{
		createFn: func(ctx context.Context, tableNumber, seats uint32) (uint64, error) {
			assert.Equal(t, uint32(5), tableNumber)
			assert.Equal(t, uint32(4), seats)
			return 1, nil
		},
	}
	c, rec := authedPost("/tables", `{"tableNumber":5,"seats":4}`)
	h := NewTableHandler(store, nil, "")

	assert.NoError(t, h.CreateTable(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Table added successfully")
}

func TestCreateTableUnauthenticated(t *testing.T) {
	store := &mockTableStore{}
	c, rec := postJSON("/tables", `{"tableNumber":5,"seats":4}`) // no user_id in context
	h := NewTableHandler(store, nil, "")

	assert.NoError(t, h.CreateTable(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateTableInvalidInput(t *testing.T) {
	store := &mockTableStore{}
	h := NewTableHandler(store, nil, "")

	for _, body := range []string{`{}`, `{"tableNumber":5}`, `{"seats":4}`, `{"tableNumber":0,"seats":0}`} {
		c, rec := authedPost("/tables", body)
		assert.NoError(t, h.CreateTable(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestCreateTableDuplicate(t *testing.T) {
	store := &mockTableStore{
		createFn: func(ctx context.Context, tableNumber, seats uint32) (uint64, error) {
			return 0, repository.ErrTableExists
		},
	}
	c, rec := authedPost("/tables", `{"tableNumber":5,"seats":4}`)
	h := NewTableHandler(store, nil, "")

	assert.NoError(t, h.CreateTable(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "table already exists")
}

// --- ListTables ---

func TestListTablesAvailableOnly(t *testing.T) {
	store := &mockTableStore{
		listFn: func(ctx context.Context) ([]model.Table, error) {
			return []model.Table{
				{ID: 1, TableNumber: 5, Seats: 4, Status: model.TableAvailable},
			}, nil
		},
	}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tables", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := NewTableHandler(store, nil, "")

	assert.NoError(t, h.ListTables(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var tables []model.Table
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tables))
	assert.Len(t, tables, 1)
	assert.Equal(t, uint32(5), tables[0].TableNumber)
	assert.Equal(t, model.TableAvailable, tables[0].Status)
}
