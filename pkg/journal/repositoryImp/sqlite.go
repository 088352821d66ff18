package repositoryImp

import (
	"gorm.io/gorm"

	"florestal/pkg/journal"
	"florestal/pkg/journal/repository"
	"florestal/pkg/logger"
)

type sqliteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func New(db *gorm.DB, log *logger.Logger) repository.Repo {
	return &sqliteRepo{db: db, log: log}
}

func (r *sqliteRepo) Record(action, entity, detail string) {
	e := journal.Entry{Action: action, Entity: entity, Detail: detail}
	if err := r.db.Create(&e).Error; err != nil {
		r.log.Warn("journal write failed", "action", action, "entity", entity, "err", err)
	}
}

func (r *sqliteRepo) Recent(limit int) ([]journal.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []journal.Entry
	return out, r.db.Order("id desc").Limit(limit).Find(&out).Error
}
