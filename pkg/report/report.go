// Package report computes the read-only aggregates behind the dashboard and
// report screens: overall totals, per-state distribution, per-farm
// production and the delivery timeline. Everything is a pure function over a
// loaded dataset; missing numeric fields count as zero and any division by
// zero yields 0, never NaN.
package report

import (
	"sort"

	"florestal/entities"
)

type Summary struct {
	FarmCount       int     `json:"total_fazendas"`
	ActiveFarmCount int     `json:"fazendas_ativas"`
	TotalHectares   float64 `json:"total_hectares"`
	TotalProjected  float64 `json:"total_projetado"`
	TotalDelivered  float64 `json:"total_entregue"`
	RemainingTons   float64 `json:"toneladas_restantes"`
	CompletionPct   float64 `json:"percentual_conclusao"`
}

func Summarize(ds *entities.Dataset) Summary {
	var s Summary
	s.FarmCount = len(ds.Farms)
	for _, f := range ds.Farms {
		if f.Status == entities.StatusActive {
			s.ActiveFarmCount++
		}
		s.TotalHectares += f.Hectares
	}
	for _, p := range ds.Production {
		s.TotalProjected += p.ProjectedTons
		s.TotalDelivered += p.DeliveredTons
	}
	s.RemainingTons = s.TotalProjected - s.TotalDelivered
	s.CompletionPct = pct(s.TotalDelivered, s.TotalProjected)
	return s
}

type StateSummary struct {
	FarmCount     int     `json:"fazendas"`
	TotalHectares float64 `json:"total_hectares"`
}

func GroupByState(farms []entities.Farm) map[string]StateSummary {
	out := make(map[string]StateSummary)
	for _, f := range farms {
		s := out[f.State]
		s.FarmCount++
		s.TotalHectares += f.Hectares
		out[f.State] = s
	}
	return out
}

// StatusCounts tallies farms per status value for the dashboard bar chart.
func StatusCounts(farms []entities.Farm) map[string]int {
	out := make(map[string]int)
	for _, f := range farms {
		out[f.Status]++
	}
	return out
}

type FarmProduction struct {
	TotalProjected float64 `json:"total_projetado"`
	TotalDelivered float64 `json:"total_entregue"`
	CompletionPct  float64 `json:"percentual_conclusao"`
}

// GroupByFarm joins production to farms by fazenda_id and sums per farm
// name. Records with no matching farm are dropped from this view.
func GroupByFarm(production []entities.ProductionRecord, farms []entities.Farm) map[string]FarmProduction {
	nameByID := make(map[int]string, len(farms))
	for _, f := range farms {
		nameByID[f.ID] = f.Name
	}
	out := make(map[string]FarmProduction)
	for _, p := range production {
		name, ok := nameByID[p.FarmID]
		if !ok {
			continue
		}
		fp := out[name]
		fp.TotalProjected += p.ProjectedTons
		fp.TotalDelivered += p.DeliveredTons
		out[name] = fp
	}
	for name, fp := range out {
		fp.CompletionPct = pct(fp.TotalDelivered, fp.TotalProjected)
		out[name] = fp
	}
	return out
}

type DatePoint struct {
	Date           string  `json:"data"`
	TotalProjected float64 `json:"toneladas_projetadas"`
	TotalDelivered float64 `json:"toneladas_entregues"`
}

// GroupByDate sums tonnage per distinct date, ascending. YYYY-MM-DD strings
// sort chronologically as plain strings.
func GroupByDate(production []entities.ProductionRecord) []DatePoint {
	byDate := make(map[string]DatePoint)
	for _, p := range production {
		d := byDate[p.Date]
		d.Date = p.Date
		d.TotalProjected += p.ProjectedTons
		d.TotalDelivered += p.DeliveredTons
		byDate[p.Date] = d
	}
	out := make([]DatePoint, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func pct(delivered, projected float64) float64 {
	if projected <= 0 {
		return 0
	}
	return delivered / projected * 100
}
