// Package transfer moves records between the store's JSON document and the
// external formats the operation exchanges with: CSV and XLSX tables for
// farms and production, and full JSON snapshots for backup and restore.
package transfer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"florestal/entities"
	"florestal/storage"
)

const (
	defaultState = "Goiás"
	defaultOwner = "Não informado"
)

var ErrEmptyTable = errors.New("arquivo sem linhas de dados")

// ReadTable turns an uploaded file into rows. CSV and XLSX are dispatched by
// filename extension; the first XLSX sheet is used.
func ReadTable(name string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv":
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		rows, err := cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("ler CSV: %w", err)
		}
		return rows, nil
	// legacy binary .xls is not a zip container and cannot be opened here,
	// so it falls through to the unsupported-format error
	case ".xlsx", ".xlsm":
		x, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("abrir planilha: %w", err)
		}
		defer x.Close()
		sheets := x.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyTable
		}
		rows, err := x.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("ler planilha: %w", err)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("formato não suportado: %s", name)
	}
}

// norm collapses a header cell so column matching survives case, BOM,
// spaces, dashes and underscores.
func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type headerIndex map[string]int

func indexHeader(head []string) headerIndex {
	h := headerIndex{}
	for i, c := range head {
		h[norm(c)] = i
	}
	return h
}

// findAny returns the first matching column index among the aliases, -1 when
// none is present.
func (h headerIndex) findAny(keys ...string) int {
	for _, k := range keys {
		if idx, ok := h[norm(k)]; ok {
			return idx
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// FarmsFromTable builds farms from a header+rows table. Column names are
// matched leniently (nome/FAZENDA, cidade/CIDADE, hectares/HA, ...); estado
// and proprietario get fixed fallbacks, status is always forced to ativa and
// data_cadastro to today. Ids are not assigned here.
//
// The whole table is parsed before anything is returned: a bad row rejects
// the entire import instead of leaving part of it committed.
func FarmsFromTable(rows [][]string, today string) ([]entities.Farm, error) {
	if len(rows) < 2 {
		return nil, ErrEmptyTable
	}
	h := indexHeader(rows[0])
	cName := h.findAny("nome", "fazenda")
	cState := h.findAny("estado", "uf")
	cCity := h.findAny("cidade")
	cHect := h.findAny("hectares", "ha", "area")
	cOwner := h.findAny("proprietario", "proprietário", "dono")
	cPhone := h.findAny("telefone", "fone")
	cEmail := h.findAny("email", "e-mail")
	if cName == -1 {
		return nil, fmt.Errorf("coluna 'nome' (ou 'FAZENDA') não encontrada, cabeçalhos: %v", rows[0])
	}

	var out []entities.Farm
	for n, row := range rows[1:] {
		hectares := 0.0
		if v := cell(row, cHect); v != "" {
			parsed, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
			if err != nil {
				return nil, fmt.Errorf("linha %d: hectares inválido %q", n+2, v)
			}
			hectares = parsed
		}
		f := entities.Farm{
			Name:         cell(row, cName),
			State:        cell(row, cState),
			City:         cell(row, cCity),
			Hectares:     hectares,
			Status:       entities.StatusActive,
			OwnerName:    cell(row, cOwner),
			Phone:        cell(row, cPhone),
			Email:        cell(row, cEmail),
			RegisteredOn: today,
		}
		if f.State == "" {
			f.State = defaultState
		}
		if f.OwnerName == "" {
			f.OwnerName = defaultOwner
		}
		out = append(out, f)
	}
	return out, nil
}

// ProductionFromTable builds production records from a header+rows table.
// fazenda_id is not checked against existing farms; dangling references are
// tolerated by every joined view.
func ProductionFromTable(rows [][]string) ([]entities.ProductionRecord, error) {
	if len(rows) < 2 {
		return nil, ErrEmptyTable
	}
	h := indexHeader(rows[0])
	cFarm := h.findAny("fazenda_id", "id_fazenda", "fazenda")
	cDate := h.findAny("data", "date")
	cProj := h.findAny("toneladas_projetadas", "projetado", "projetadas")
	cDeli := h.findAny("toneladas_entregues", "entregue", "entregues")
	cNote := h.findAny("observacoes", "observações", "obs")
	if cFarm == -1 || cDate == -1 {
		return nil, fmt.Errorf("colunas 'fazenda_id' e 'data' são obrigatórias, cabeçalhos: %v", rows[0])
	}

	var out []entities.ProductionRecord
	for n, row := range rows[1:] {
		farmID, err := strconv.Atoi(cell(row, cFarm))
		if err != nil {
			return nil, fmt.Errorf("linha %d: fazenda_id inválido %q", n+2, cell(row, cFarm))
		}
		tons := func(idx int, label string) (float64, error) {
			v := cell(row, idx)
			if v == "" {
				return 0, nil
			}
			parsed, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
			if err != nil {
				return 0, fmt.Errorf("linha %d: %s inválido %q", n+2, label, v)
			}
			return parsed, nil
		}
		proj, err := tons(cProj, "toneladas_projetadas")
		if err != nil {
			return nil, err
		}
		deli, err := tons(cDeli, "toneladas_entregues")
		if err != nil {
			return nil, err
		}
		out = append(out, entities.ProductionRecord{
			FarmID:        farmID,
			Date:          cell(row, cDate),
			ProjectedTons: proj,
			DeliveredTons: deli,
			Notes:         cell(row, cNote),
		})
	}
	return out, nil
}

// AppendFarms assigns ids incrementally and appends the batch, so ids stay
// unique even within one import.
func AppendFarms(ds *entities.Dataset, farms []entities.Farm) {
	for _, f := range farms {
		f.ID = storage.NextID(ds.Farms)
		ds.Farms = append(ds.Farms, f)
	}
}
