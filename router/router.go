package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	farmCtrl interface {
		List(echo.Context) error
		Options(echo.Context) error
		Get(echo.Context) error
		Create(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	prodCtrl interface {
		Create(echo.Context) error
		History(echo.Context) error
	},
	reportCtrl interface {
		Dashboard(echo.Context) error
		General(echo.Context) error
		Farms(echo.Context) error
		Production(echo.Context) error
	},
	transferCtrl interface {
		ImportFarms(echo.Context) error
		ImportProduction(echo.Context) error
		ImportBackup(echo.Context) error
		ExportFarmsCSV(echo.Context) error
		ExportFarmsXLSX(echo.Context) error
		ExportProductionCSV(echo.Context) error
		ExportProductionXLSX(echo.Context) error
		ExportBackup(echo.Context) error
	},
	systemCtrl interface {
		Health(echo.Context) error
		Stats(echo.Context) error
		Reset(echo.Context) error
		Journal(echo.Context) error
	},
) *echo.Echo {
	e.GET("/health", systemCtrl.Health)
	e.GET("/dashboard", reportCtrl.Dashboard)

	e.GET("/farms", farmCtrl.List)
	e.GET("/farms/options", farmCtrl.Options)
	e.POST("/farms", farmCtrl.Create)
	e.GET("/farms/:id", farmCtrl.Get)
	e.PUT("/farms/:id", farmCtrl.Update)
	e.DELETE("/farms/:id", farmCtrl.Delete)

	e.GET("/production", prodCtrl.History)
	e.POST("/production", prodCtrl.Create)

	r := e.Group("/reports")
	r.GET("/geral", reportCtrl.General)
	r.GET("/fazendas", reportCtrl.Farms)
	r.GET("/producao", reportCtrl.Production)

	i := e.Group("/import")
	i.POST("/fazendas", transferCtrl.ImportFarms)
	i.POST("/producao", transferCtrl.ImportProduction)
	i.POST("/backup", transferCtrl.ImportBackup)

	x := e.Group("/export")
	x.GET("/fazendas.csv", transferCtrl.ExportFarmsCSV)
	x.GET("/fazendas.xlsx", transferCtrl.ExportFarmsXLSX)
	x.GET("/producao.csv", transferCtrl.ExportProductionCSV)
	x.GET("/producao.xlsx", transferCtrl.ExportProductionXLSX)
	x.GET("/backup.json", transferCtrl.ExportBackup)

	s := e.Group("/system")
	s.GET("/stats", systemCtrl.Stats)
	s.POST("/reset", systemCtrl.Reset)
	s.GET("/journal", systemCtrl.Journal)

	return e
}
