package repositoryImp

import (
	"time"

	"florestal/entities"
	"florestal/pkg/farm/repository"
	"florestal/storage"
)

// farmRepo works the way every interaction cycle of the app works: load the
// whole dataset, change it in memory, save the whole dataset back.
type farmRepo struct{ store *storage.Store }

func New(store *storage.Store) repository.FarmRepository { return &farmRepo{store} }

func (r *farmRepo) List() ([]entities.Farm, error) {
	return r.store.LoadOrSeed().Farms, nil
}

func (r *farmRepo) FindByID(id int) (*entities.Farm, error) {
	ds := r.store.LoadOrSeed()
	f := ds.FindFarm(id)
	if f == nil {
		return nil, repository.ErrNotFound
	}
	out := *f
	return &out, nil
}

func (r *farmRepo) Create(f *entities.Farm) error {
	ds := r.store.LoadOrSeed()
	f.ID = storage.NextID(ds.Farms)
	f.RegisteredOn = time.Now().Format(entities.DateLayout)
	ds.Farms = append(ds.Farms, *f)
	return r.store.Save(ds)
}

func (r *farmRepo) Update(f *entities.Farm) error {
	ds := r.store.LoadOrSeed()
	cur := ds.FindFarm(f.ID)
	if cur == nil {
		return repository.ErrNotFound
	}
	// id and data_cadastro are immutable
	f.RegisteredOn = cur.RegisteredOn
	*cur = *f
	return r.store.Save(ds)
}

func (r *farmRepo) Delete(id int) error {
	ds := r.store.LoadOrSeed()
	kept := ds.Farms[:0]
	found := false
	for _, f := range ds.Farms {
		if f.ID == id {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return repository.ErrNotFound
	}
	ds.Farms = kept
	return r.store.Save(ds)
}
