package serviceImp

import (
	"fmt"
	"sync"

	"florestal/entities"
	repo "florestal/pkg/farm/repository"
	"florestal/pkg/farm/service"
	"florestal/pkg/journal"
	journalRepo "florestal/pkg/journal/repository"
)

type farmSvc struct {
	r  repo.FarmRepository
	jr journalRepo.Repo

	// handlers run concurrently; mu guards the confirmation state
	mu            sync.Mutex
	pendingDelete int // farm id armed for deletion, 0 = none
}

func NewFarmService(r repo.FarmRepository, jr journalRepo.Repo) service.FarmService {
	return &farmSvc{r: r, jr: jr}
}

func (s *farmSvc) List(f service.Filter) ([]entities.Farm, error) {
	farms, err := s.r.List()
	if err != nil {
		return nil, err
	}
	return service.FilterFarms(farms, f), nil
}

func (s *farmSvc) Get(id int) (*entities.Farm, error) {
	return s.r.FindByID(id)
}

func (s *farmSvc) Create(f *entities.Farm) (*entities.Farm, error) {
	if f.Status == "" {
		f.Status = entities.StatusActive
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := s.r.Create(f); err != nil {
		return nil, err
	}
	s.jr.Record(journal.ActionCreate, "fazenda", fmt.Sprintf("id=%d nome=%s", f.ID, f.Name))
	return f, nil
}

func (s *farmSvc) Update(id int, f *entities.Farm) (*entities.Farm, error) {
	f.ID = id
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := s.r.Update(f); err != nil {
		return nil, err
	}
	s.jr.Record(journal.ActionUpdate, "fazenda", fmt.Sprintf("id=%d nome=%s", f.ID, f.Name))
	return f, nil
}

func (s *farmSvc) ConfirmDelete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingDelete != id {
		// arming a different id replaces any earlier pending confirmation
		if _, err := s.r.FindByID(id); err != nil {
			return false, err
		}
		s.pendingDelete = id
		return true, nil
	}
	s.pendingDelete = 0
	if err := s.r.Delete(id); err != nil {
		return false, err
	}
	s.jr.Record(journal.ActionDelete, "fazenda", fmt.Sprintf("id=%d", id))
	return false, nil
}
