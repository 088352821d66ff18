package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"florestal/entities"
	"florestal/pkg/farm/repositoryImp"
	"florestal/pkg/farm/serviceImp"
	"florestal/pkg/journal"
	"florestal/pkg/logger"
	"florestal/storage"
)

type nopJournal struct{}

func (nopJournal) Record(action, entity, detail string)      {}
func (nopJournal) Recent(limit int) ([]journal.Entry, error) { return nil, nil }

func newCtrl(t *testing.T) (*FarmCtrl, *storage.Store) {
	t.Helper()
	store := storage.New(filepath.Join(t.TempDir(), "dados.json"), logger.NewNop())
	svc := serviceImp.NewFarmService(repositoryImp.New(store), nopJournal{})
	return New(svc), store
}

func do(t *testing.T, h echo.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(r, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}
	require.NoError(t, h(c))
	return rec
}

func TestListAppliesFilters(t *testing.T) {
	ctrl, _ := newCtrl(t)

	rec := do(t, ctrl.List, http.MethodGet, "/farms?estado=Goi%C3%A1s&status=ativa", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Farms []entities.Farm `json:"fazendas"`
		Total int             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	require.Equal(t, "Fazenda São João", resp.Farms[0].Name)
}

func TestListTodosSentinelMeansAll(t *testing.T) {
	ctrl, _ := newCtrl(t)

	rec := do(t, ctrl.List, http.MethodGet, "/farms?estado=Todos&status=Todos", "")
	var resp struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)
}

func TestCreateValidFarm(t *testing.T) {
	ctrl, store := newCtrl(t)

	body := `{"nome":"Fazenda Nova","estado":"Bahia","cidade":"Barreiras","hectares":320,"status":"ativa","proprietario":"Pedro"}`
	rec := do(t, ctrl.Create, http.MethodPost, "/farms", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var f entities.Farm
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	require.Equal(t, 4, f.ID)

	ds, err := store.Load()
	require.NoError(t, err)
	require.Len(t, ds.Farms, 4)
}

func TestCreateInvalidFarmNamesConstraint(t *testing.T) {
	ctrl, store := newCtrl(t)

	body := `{"nome":"","estado":"Bahia","cidade":"Barreiras","hectares":320,"proprietario":"Pedro"}`
	rec := do(t, ctrl.Create, http.MethodPost, "/farms", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "nome")

	// nothing persisted
	_, err := store.Load()
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetUnknownFarm(t *testing.T) {
	ctrl, _ := newCtrl(t)
	rec := do(t, ctrl.Get, http.MethodGet, "/farms/99", "", "id", "99")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteIsTwoStep(t *testing.T) {
	ctrl, store := newCtrl(t)

	rec := do(t, ctrl.Delete, http.MethodDelete, "/farms/2", "", "id", "2")
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Contains(t, rec.Body.String(), `"pending":true`)

	rec = do(t, ctrl.Delete, http.MethodDelete, "/farms/2", "", "id", "2")
	require.Equal(t, http.StatusOK, rec.Code)

	ds, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, ds.FindFarm(2))
}
