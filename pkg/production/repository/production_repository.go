package repository

import "florestal/entities"

type ProductionRepository interface {
	// ListWithFarms returns both sides of the joined views in one load so
	// record and farm come from the same dataset snapshot.
	ListWithFarms() ([]entities.ProductionRecord, []entities.Farm, error)
	Create(p *entities.ProductionRecord) error
}
