package controllerImp

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"florestal/pkg/journal"
	journalRepo "florestal/pkg/journal/repository"
	"florestal/pkg/report"
	"florestal/storage"
)

var appStart = time.Now()

type SystemCtrl struct {
	store *storage.Store
	db    *gorm.DB
	jr    journalRepo.Repo

	// handlers run concurrently; mu guards the confirmation state
	mu           sync.Mutex
	pendingReset bool
}

func New(store *storage.Store, db *gorm.DB, jr journalRepo.Repo) *SystemCtrl {
	return &SystemCtrl{store: store, db: db, jr: jr}
}

func (h *SystemCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	journalOK := true
	journalErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			journalOK = false
			journalErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			journalOK = false
			journalErr = "ping: " + err.Error()
		}
	} else {
		journalOK = false
		journalErr = "gorm db is nil"
	}

	// The data file being absent is not a failure: the store seeds.
	dataFileExists := true
	if _, err := os.Stat(h.store.Path()); err != nil {
		dataFileExists = false
	}

	status := http.StatusOK
	if !journalOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": journalOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"journal":   sub{OK: journalOK, Err: journalErr},
			"data_file": map[string]any{"exists": dataFileExists, "path": h.store.Path()},
		},
		"time": time.Now().Format(time.RFC3339),
	})
}

func (h *SystemCtrl) Stats(c echo.Context) error {
	ds := h.store.LoadOrSeed()
	raw, _ := json.Marshal(ds)
	return c.JSON(http.StatusOK, map[string]any{
		"resumo":             report.Summarize(ds),
		"registros_producao": len(ds.Production),
		"tamanho_bytes":      len(raw),
	})
}

// Reset restores the seed dataset. Destructive, so it takes two calls: the
// first arms the confirmation, the second executes.
func (h *SystemCtrl) Reset(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.pendingReset {
		h.pendingReset = true
		return c.JSON(http.StatusAccepted, map[string]any{
			"pending": true,
			"message": "repita a chamada para confirmar o reset",
		})
	}
	h.pendingReset = false
	if err := h.store.Save(storage.Seed()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	h.jr.Record(journal.ActionReset, "dataset", "dados restaurados para o seed")
	return c.JSON(http.StatusOK, map[string]any{"pending": false, "reset": true})
}

func (h *SystemCtrl) Journal(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limite"))
	entries, err := h.jr.Recent(limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"entradas": entries, "total": len(entries)})
}
