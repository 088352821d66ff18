package repository

import (
	"errors"

	"florestal/entities"
)

var ErrNotFound = errors.New("fazenda não encontrada")

type FarmRepository interface {
	List() ([]entities.Farm, error)
	FindByID(id int) (*entities.Farm, error)
	// Create assigns the next id, stamps data_cadastro and persists.
	Create(f *entities.Farm) error
	Update(f *entities.Farm) error
	Delete(id int) error
}
