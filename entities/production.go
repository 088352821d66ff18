package entities

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

// ProductionRecord is a dated projected-vs-delivered measurement for a farm.
// There is no identity field; several records may share (fazenda_id, data).
// FarmID may dangle after a farm is deleted; joined views skip such records.
type ProductionRecord struct {
	FarmID        int     `json:"fazenda_id"`
	Date          string  `json:"data"` // YYYY-MM-DD
	ProjectedTons float64 `json:"toneladas_projetadas"`
	DeliveredTons float64 `json:"toneladas_entregues"`
	Notes         string  `json:"observacoes"`
}

func (p *ProductionRecord) Validate() error {
	if p.FarmID <= 0 {
		return errors.New("fazenda é obrigatória")
	}
	if _, err := time.Parse(DateLayout, p.Date); err != nil {
		return errors.New("data inválida, use o formato AAAA-MM-DD")
	}
	if p.ProjectedTons < 0 {
		return errors.New("toneladas projetadas não podem ser negativas")
	}
	if p.DeliveredTons < 0 {
		return errors.New("toneladas entregues não podem ser negativas")
	}
	return nil
}
