package serviceImp

import (
	"fmt"

	"florestal/entities"
	"florestal/pkg/journal"
	journalRepo "florestal/pkg/journal/repository"
	repo "florestal/pkg/production/repository"
	"florestal/pkg/production/service"
)

type productionSvc struct {
	r  repo.ProductionRepository
	jr journalRepo.Repo
}

func NewProductionService(r repo.ProductionRepository, jr journalRepo.Repo) service.ProductionService {
	return &productionSvc{r: r, jr: jr}
}

func (s *productionSvc) Create(p *entities.ProductionRecord) (*entities.ProductionRecord, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.r.Create(p); err != nil {
		return nil, err
	}
	s.jr.Record(journal.ActionCreate, "producao",
		fmt.Sprintf("fazenda_id=%d data=%s", p.FarmID, p.Date))
	return p, nil
}

func (s *productionSvc) History(f service.HistoryFilter) ([]service.JoinedRecord, error) {
	records, farms, err := s.r.ListWithFarms()
	if err != nil {
		return nil, err
	}
	return service.FilterHistory(service.Join(records, farms), f), nil
}
