package service

import "florestal/entities"

// HistoryFilter narrows the joined production listing. Empty fields mean
// "all"; the date range is inclusive on both ends.
type HistoryFilter struct {
	FarmName string
	DateFrom string // YYYY-MM-DD
	DateTo   string // YYYY-MM-DD
}

// JoinedRecord is a production record decorated with its farm's name and
// state. Records whose fazenda_id matches no farm keep empty farm fields.
type JoinedRecord struct {
	entities.ProductionRecord
	FarmName  string `json:"fazenda_nome"`
	FarmState string `json:"fazenda_estado"`
}

type ProductionService interface {
	Create(p *entities.ProductionRecord) (*entities.ProductionRecord, error)
	History(f HistoryFilter) ([]JoinedRecord, error)
}

// Join left-joins each record to its farm by fazenda_id. Input order is
// preserved; dangling records stay, with empty name/state.
func Join(records []entities.ProductionRecord, farms []entities.Farm) []JoinedRecord {
	byID := make(map[int]*entities.Farm, len(farms))
	for i := range farms {
		byID[farms[i].ID] = &farms[i]
	}
	out := make([]JoinedRecord, 0, len(records))
	for _, rec := range records {
		j := JoinedRecord{ProductionRecord: rec}
		if f, ok := byID[rec.FarmID]; ok {
			j.FarmName = f.Name
			j.FarmState = f.State
		}
		out = append(out, j)
	}
	return out
}

// FilterHistory applies the predicates to a joined listing. A farm-name
// filter excludes dangling records: with no farm they can never match.
// Dates compare lexically, which is exact for YYYY-MM-DD strings.
func FilterHistory(joined []JoinedRecord, f HistoryFilter) []JoinedRecord {
	out := make([]JoinedRecord, 0, len(joined))
	for _, j := range joined {
		if f.FarmName != "" && j.FarmName != f.FarmName {
			continue
		}
		if f.DateFrom != "" && j.Date < f.DateFrom {
			continue
		}
		if f.DateTo != "" && j.Date > f.DateTo {
			continue
		}
		out = append(out, j)
	}
	return out
}
