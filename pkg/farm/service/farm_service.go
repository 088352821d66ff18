package service

import (
	"strings"

	"florestal/entities"
)

// Filter holds the optional list predicates. Zero values mean "all"; the
// UI's "Todos" sentinel is normalized to empty before it reaches here.
type Filter struct {
	State        string
	Status       string
	NameContains string
}

type FarmService interface {
	List(f Filter) ([]entities.Farm, error)
	Get(id int) (*entities.Farm, error)
	Create(f *entities.Farm) (*entities.Farm, error)
	Update(id int, f *entities.Farm) (*entities.Farm, error)
	// ConfirmDelete is a two-step destructive action: the first call for an
	// id arms the confirmation and reports pending=true, the second call
	// executes the delete.
	ConfirmDelete(id int) (pending bool, err error)
}

// FilterFarms applies the predicates with logical AND, preserving input
// order. Pure: the input slice is never mutated.
func FilterFarms(farms []entities.Farm, f Filter) []entities.Farm {
	out := make([]entities.Farm, 0, len(farms))
	needle := strings.ToLower(f.NameContains)
	for _, farm := range farms {
		if f.State != "" && farm.State != f.State {
			continue
		}
		if f.Status != "" && farm.Status != f.Status {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(farm.Name), needle) {
			continue
		}
		out = append(out, farm)
	}
	return out
}
