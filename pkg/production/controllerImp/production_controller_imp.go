package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"florestal/entities"
	"florestal/pkg/production/service"
)

type ProductionCtrl struct{ svc service.ProductionService }

func New(svc service.ProductionService) *ProductionCtrl { return &ProductionCtrl{svc} }

type createReq struct {
	FarmID        int     `json:"fazenda_id"`
	Date          string  `json:"data"`
	ProjectedTons float64 `json:"toneladas_projetadas"`
	DeliveredTons float64 `json:"toneladas_entregues"`
	Notes         string  `json:"observacoes"`
}

func (h *ProductionCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p := &entities.ProductionRecord{
		FarmID:        req.FarmID,
		Date:          req.Date,
		ProjectedTons: req.ProjectedTons,
		DeliveredTons: req.DeliveredTons,
		Notes:         req.Notes,
	}
	out, err := h.svc.Create(p)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ProductionCtrl) History(c echo.Context) error {
	f := service.HistoryFilter{
		FarmName: c.QueryParam("fazenda"),
		DateFrom: c.QueryParam("de"),
		DateTo:   c.QueryParam("ate"),
	}
	if f.FarmName == "Todas" {
		f.FarmName = ""
	}
	list, err := h.svc.History(f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"registros": list, "total": len(list)})
}
