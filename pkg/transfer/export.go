package transfer

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"florestal/entities"
)

// Column order mirrors the entity field order so exported tables line up
// with what the import path accepts.
var farmHeader = []string{
	"id", "nome", "estado", "cidade", "hectares", "status",
	"proprietario", "telefone", "email", "data_cadastro", "observacoes",
}

var productionHeader = []string{
	"fazenda_id", "data", "toneladas_projetadas", "toneladas_entregues", "observacoes",
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func farmRow(f entities.Farm) []string {
	return []string{
		strconv.Itoa(f.ID), f.Name, f.State, f.City, num(f.Hectares), f.Status,
		f.OwnerName, f.Phone, f.Email, f.RegisteredOn, f.Notes,
	}
}

func productionRow(p entities.ProductionRecord) []string {
	return []string{
		strconv.Itoa(p.FarmID), p.Date, num(p.ProjectedTons), num(p.DeliveredTons), p.Notes,
	}
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeXLSX(header []string, rows [][]string) ([]byte, error) {
	x := excelize.NewFile()
	defer x.Close()
	sheet := x.GetSheetName(0)
	toAny := func(row []string) []interface{} {
		out := make([]interface{}, len(row))
		for i, v := range row {
			out[i] = v
		}
		return out
	}
	if err := x.SetSheetRow(sheet, "A1", ptr(toAny(header))); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := x.SetSheetRow(sheet, cellRef, ptr(toAny(row))); err != nil {
			return nil, err
		}
	}
	buf, err := x.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ptr(v []interface{}) *[]interface{} { return &v }

func FarmsCSV(farms []entities.Farm) ([]byte, error) {
	rows := make([][]string, 0, len(farms))
	for _, f := range farms {
		rows = append(rows, farmRow(f))
	}
	return writeCSV(farmHeader, rows)
}

func FarmsXLSX(farms []entities.Farm) ([]byte, error) {
	rows := make([][]string, 0, len(farms))
	for _, f := range farms {
		rows = append(rows, farmRow(f))
	}
	return writeXLSX(farmHeader, rows)
}

func ProductionCSV(production []entities.ProductionRecord) ([]byte, error) {
	rows := make([][]string, 0, len(production))
	for _, p := range production {
		rows = append(rows, productionRow(p))
	}
	return writeCSV(productionHeader, rows)
}

func ProductionXLSX(production []entities.ProductionRecord) ([]byte, error) {
	rows := make([][]string, 0, len(production))
	for _, p := range production {
		rows = append(rows, productionRow(p))
	}
	return writeXLSX(productionHeader, rows)
}

// SnapshotJSON is the full-dataset backup: the stored document, pretty
// printed, unknown keys included.
func SnapshotJSON(ds *entities.Dataset) ([]byte, error) {
	return json.MarshalIndent(ds, "", "  ")
}

func FarmsFilename(ext string, now time.Time) string {
	return fmt.Sprintf("fazendas_%s.%s", now.Format("20060102"), ext)
}

func ProductionFilename(ext string, now time.Time) string {
	return fmt.Sprintf("producao_%s.%s", now.Format("20060102"), ext)
}

func BackupFilename(now time.Time) string {
	return fmt.Sprintf("backup_completo_%s.json", now.Format("20060102_150405"))
}
