package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"florestal/pkg/report"
	"florestal/storage"
)

type ReportCtrl struct{ store *storage.Store }

func New(store *storage.Store) *ReportCtrl { return &ReportCtrl{store} }

// Dashboard backs the landing screen: headline metrics plus the by-state and
// by-status breakdowns and the delivery timeline.
func (h *ReportCtrl) Dashboard(c echo.Context) error {
	ds := h.store.LoadOrSeed()
	return c.JSON(http.StatusOK, map[string]any{
		"resumo":     report.Summarize(ds),
		"por_estado": report.GroupByState(ds.Farms),
		"por_status": report.StatusCounts(ds.Farms),
		"evolucao":   report.GroupByDate(ds.Production),
	})
}

func (h *ReportCtrl) General(c echo.Context) error {
	ds := h.store.LoadOrSeed()
	return c.JSON(http.StatusOK, map[string]any{"resumo": report.Summarize(ds)})
}

func (h *ReportCtrl) Farms(c echo.Context) error {
	ds := h.store.LoadOrSeed()
	return c.JSON(http.StatusOK, map[string]any{
		"por_estado": report.GroupByState(ds.Farms),
		"fazendas":   ds.Farms,
	})
}

func (h *ReportCtrl) Production(c echo.Context) error {
	ds := h.store.LoadOrSeed()
	return c.JSON(http.StatusOK, map[string]any{
		"por_fazenda": report.GroupByFarm(ds.Production, ds.Farms),
		"evolucao":    report.GroupByDate(ds.Production),
	})
}
