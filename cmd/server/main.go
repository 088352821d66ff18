package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"florestal/config"
	"florestal/database"
	"florestal/router"
	"florestal/storage"

	"florestal/pkg/logger"

	// Journal
	journalRepoImp "florestal/pkg/journal/repositoryImp"

	// Farm
	farmCtrlImp "florestal/pkg/farm/controllerImp"
	farmRepoImp "florestal/pkg/farm/repositoryImp"
	farmSvcImp "florestal/pkg/farm/serviceImp"

	// Production
	prodCtrlImp "florestal/pkg/production/controllerImp"
	prodRepoImp "florestal/pkg/production/repositoryImp"
	prodSvcImp "florestal/pkg/production/serviceImp"

	// Reports
	reportCtrlImp "florestal/pkg/report/controllerImp"

	// Import/Export
	transferCtrlImp "florestal/pkg/transfer/controllerImp"

	// System
	systemCtrlImp "florestal/pkg/system/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Logger
	zlog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	// 3) Record store (canonical JSON dataset) + journal db
	store := storage.New(cfg.DataPath, zlog)
	db, err := database.OpenSQLite(cfg.JournalDBPath)
	if err != nil {
		zlog.Fatal("journal db", "err", err)
	}
	jr := journalRepoImp.New(db, zlog)

	// 4) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	// 5) Repos/Services/Controllers
	fRepo := farmRepoImp.New(store)
	fSvc := farmSvcImp.NewFarmService(fRepo, jr)
	fCtrl := farmCtrlImp.New(fSvc)

	pRepo := prodRepoImp.New(store)
	pSvc := prodSvcImp.NewProductionService(pRepo, jr)
	pCtrl := prodCtrlImp.New(pSvc)

	rCtrl := reportCtrlImp.New(store)
	tCtrl := transferCtrlImp.New(store, jr, zlog)
	sCtrl := systemCtrlImp.New(store, db, jr)

	// 6) Router
	r := router.New(e, fCtrl, pCtrl, rCtrl, tCtrl, sCtrl)

	// 7) Start
	zlog.Info("listening", "port", cfg.Port, "data", cfg.DataPath)
	if err := r.Start(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", "err", err)
	}
}
