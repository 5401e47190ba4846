package repository

import (
	"log"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/realtime"
	"time"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db  *gorm.DB
	hub *realtime.Hub[model.Activity]
}

func NewActivityRepository(db *gorm.DB, hub *realtime.Hub[model.Activity]) *ActivityRepository {
	r := &ActivityRepository{db: db, hub: hub}
	if hub != nil {
		hub.SetFetcher(func() ([]model.Activity, error) {
			return r.list(20)
		})
	}
	return r
}

func (r *ActivityRepository) list(limit int) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.db.Order("timestamp desc").Limit(limit).Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) List(limit int) []model.Activity {
	activities, err := r.list(limit)
	if err != nil {
		log.Println("Gagal mengambil data aktivitas:", err)
		return []model.Activity{}
	}
	return activities
}

func (r *ActivityRepository) Create(activity *model.Activity) error {
	if activity.Timestamp == 0 {
		activity.Timestamp = time.Now().UnixMilli()
	}
	if err := r.db.Create(activity).Error; err != nil {
		return err
	}
	if r.hub != nil {
		r.hub.Notify()
	}
	return nil
}
