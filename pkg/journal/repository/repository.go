package repository

import "florestal/pkg/journal"

type Repo interface {
	// Record appends an entry. Failures are logged inside the repo.
	Record(action, entity, detail string)
	Recent(limit int) ([]journal.Entry, error)
}
