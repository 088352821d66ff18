package repositoryImp

import (
	"florestal/entities"
	"florestal/pkg/production/repository"
	"florestal/storage"
)

type productionRepo struct{ store *storage.Store }

func New(store *storage.Store) repository.ProductionRepository {
	return &productionRepo{store}
}

func (r *productionRepo) ListWithFarms() ([]entities.ProductionRecord, []entities.Farm, error) {
	ds := r.store.LoadOrSeed()
	return ds.Production, ds.Farms, nil
}

func (r *productionRepo) Create(p *entities.ProductionRecord) error {
	ds := r.store.LoadOrSeed()
	ds.Production = append(ds.Production, *p)
	return r.store.Save(ds)
}
