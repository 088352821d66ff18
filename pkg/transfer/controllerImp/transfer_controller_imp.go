package controllerImp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"florestal/entities"
	"florestal/pkg/journal"
	journalRepo "florestal/pkg/journal/repository"
	"florestal/pkg/logger"
	"florestal/pkg/transfer"
	"florestal/storage"
)

const (
	mimeCSV  = "text/csv"
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeJSON = "application/json"
)

type TransferCtrl struct {
	store *storage.Store
	jr    journalRepo.Repo
	log   *logger.Logger
}

func New(store *storage.Store, jr journalRepo.Repo, log *logger.Logger) *TransferCtrl {
	return &TransferCtrl{store: store, jr: jr, log: log}
}

func (h *TransferCtrl) upload(c echo.Context) (string, io.ReadCloser, error) {
	fh, err := c.FormFile("arquivo")
	if err != nil {
		return "", nil, fmt.Errorf("campo 'arquivo' ausente")
	}
	src, err := fh.Open()
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, src, nil
}

// ImportFarms parses the whole upload first and only then appends and
// persists, so a bad row never leaves a half-committed batch.
func (h *TransferCtrl) ImportFarms(c echo.Context) error {
	name, src, err := h.upload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer src.Close()

	rows, err := transfer.ReadTable(name, src)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	farms, err := transfer.FarmsFromTable(rows, time.Now().Format(entities.DateLayout))
	if err != nil {
		h.log.Warn("farm import rejected", "file", name, "err", err)
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	ds := h.store.LoadOrSeed()
	transfer.AppendFarms(ds, farms)
	if err := h.store.Save(ds); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	h.jr.Record(journal.ActionImport, "fazenda", fmt.Sprintf("arquivo=%s linhas=%d", name, len(farms)))
	return c.JSON(http.StatusOK, map[string]any{"importadas": len(farms)})
}

func (h *TransferCtrl) ImportProduction(c echo.Context) error {
	name, src, err := h.upload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer src.Close()

	rows, err := transfer.ReadTable(name, src)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	records, err := transfer.ProductionFromTable(rows)
	if err != nil {
		h.log.Warn("production import rejected", "file", name, "err", err)
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	ds := h.store.LoadOrSeed()
	ds.Production = append(ds.Production, records...)
	if err := h.store.Save(ds); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	h.jr.Record(journal.ActionImport, "producao", fmt.Sprintf("arquivo=%s linhas=%d", name, len(records)))
	return c.JSON(http.StatusOK, map[string]any{"importados": len(records)})
}

// ImportBackup replaces the whole dataset verbatim. No field validation:
// the restored document is trusted the way the original app trusted it.
func (h *TransferCtrl) ImportBackup(c echo.Context) error {
	name, src, err := h.upload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	var ds entities.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "backup JSON inválido: " + err.Error()})
	}
	if err := h.store.Save(&ds); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	h.jr.Record(journal.ActionRestore, "dataset", fmt.Sprintf("arquivo=%s fazendas=%d producao=%d", name, len(ds.Farms), len(ds.Production)))
	return c.JSON(http.StatusOK, map[string]any{"fazendas": len(ds.Farms), "producao": len(ds.Production)})
}

func (h *TransferCtrl) attachment(c echo.Context, name, mime string, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, mime, data)
}

func (h *TransferCtrl) ExportFarmsCSV(c echo.Context) error {
	data, err := transfer.FarmsCSV(h.store.LoadOrSeed().Farms)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return h.attachment(c, transfer.FarmsFilename("csv", time.Now()), mimeCSV, data)
}

func (h *TransferCtrl) ExportFarmsXLSX(c echo.Context) error {
	data, err := transfer.FarmsXLSX(h.store.LoadOrSeed().Farms)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return h.attachment(c, transfer.FarmsFilename("xlsx", time.Now()), mimeXLSX, data)
}

func (h *TransferCtrl) ExportProductionCSV(c echo.Context) error {
	data, err := transfer.ProductionCSV(h.store.LoadOrSeed().Production)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return h.attachment(c, transfer.ProductionFilename("csv", time.Now()), mimeCSV, data)
}

func (h *TransferCtrl) ExportProductionXLSX(c echo.Context) error {
	data, err := transfer.ProductionXLSX(h.store.LoadOrSeed().Production)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return h.attachment(c, transfer.ProductionFilename("xlsx", time.Now()), mimeXLSX, data)
}

func (h *TransferCtrl) ExportBackup(c echo.Context) error {
	data, err := transfer.SnapshotJSON(h.store.LoadOrSeed())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return h.attachment(c, transfer.BackupFilename(time.Now()), mimeJSON, data)
}
