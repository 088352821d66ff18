package controllerImp

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"florestal/entities"
	"florestal/pkg/farm/repository"
	"florestal/pkg/farm/service"
)

type FarmCtrl struct{ svc service.FarmService }

func New(svc service.FarmService) *FarmCtrl { return &FarmCtrl{svc} }

type farmReq struct {
	Name      string  `json:"nome"`
	State     string  `json:"estado"`
	City      string  `json:"cidade"`
	Hectares  float64 `json:"hectares"`
	Status    string  `json:"status"`
	OwnerName string  `json:"proprietario"`
	Phone     string  `json:"telefone"`
	Email     string  `json:"email"`
	Notes     string  `json:"observacoes"`
}

func (r farmReq) toEntity() *entities.Farm {
	return &entities.Farm{
		Name:      r.Name,
		State:     r.State,
		City:      r.City,
		Hectares:  r.Hectares,
		Status:    r.Status,
		OwnerName: r.OwnerName,
		Phone:     r.Phone,
		Email:     r.Email,
		Notes:     r.Notes,
	}
}

// sentinel normalizes the UI's "Todos"/"Todas" filter option to "no filter".
func sentinel(v string) string {
	if v == "Todos" || v == "Todas" {
		return ""
	}
	return v
}

func (h *FarmCtrl) List(c echo.Context) error {
	f := service.Filter{
		State:        sentinel(c.QueryParam("estado")),
		Status:       sentinel(c.QueryParam("status")),
		NameContains: c.QueryParam("busca"),
	}
	farms, err := h.svc.List(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"fazendas": farms, "total": len(farms)})
}

// Options feeds selection widgets: every farm as "Nome (Estado)" plus the
// suggested state list for registration forms.
func (h *FarmCtrl) Options(c echo.Context) error {
	farms, err := h.svc.List(service.Filter{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	type option struct {
		ID    int    `json:"id"`
		Label string `json:"label"`
	}
	opts := make([]option, 0, len(farms))
	for _, f := range farms {
		opts = append(opts, option{ID: f.ID, Label: fmt.Sprintf("%s (%s)", f.Name, f.State)})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"fazendas": opts,
		"estados":  entities.SuggestedStates,
		"status":   []string{entities.StatusActive, entities.StatusInactive},
	})
}

func (h *FarmCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.svc.Get(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "fazenda não encontrada"})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Create(c echo.Context) error {
	var req farmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f, err := h.svc.Create(req.toEntity())
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmCtrl) Update(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var req farmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	f, err := h.svc.Update(id, req.toEntity())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) Delete(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	pending, err := h.svc.ConfirmDelete(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if pending {
		return c.JSON(http.StatusAccepted, map[string]any{
			"pending": true,
			"message": "repita a exclusão para confirmar",
		})
	}
	return c.JSON(http.StatusOK, map[string]any{"pending": false, "deleted": id})
}
