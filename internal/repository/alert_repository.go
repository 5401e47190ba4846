package repository

import (
	"log"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/realtime"
	"time"

	"gorm.io/gorm"
)

type AlertRepository struct {
	db  *gorm.DB
	hub *realtime.Hub[model.Alert]
}

func NewAlertRepository(db *gorm.DB, hub *realtime.Hub[model.Alert]) *AlertRepository {
	r := &AlertRepository{db: db, hub: hub}
	if hub != nil {
		hub.SetFetcher(func() ([]model.Alert, error) {
			return r.list(100)
		})
	}
	return r
}

func (r *AlertRepository) list(limit int) ([]model.Alert, error) {
	var alerts []model.Alert
	// Alert diurutkan server-side: terbaru dulu
	err := r.db.Preload("Notes").Order("timestamp desc").Limit(limit).Find(&alerts).Error
	return alerts, err
}

func (r *AlertRepository) List(limit int) []model.Alert {
	alerts, err := r.list(limit)
	if err != nil {
		log.Println("Gagal mengambil data alert:", err)
		return []model.Alert{}
	}
	return alerts
}

func (r *AlertRepository) GetByID(id uint) (model.Alert, error) {
	var alert model.Alert
	err := r.db.Preload("Notes").First(&alert, id).Error
	return alert, err
}

func (r *AlertRepository) Create(alert *model.Alert) error {
	if alert.Timestamp == 0 {
		alert.Timestamp = time.Now().UnixMilli()
	}
	if err := r.db.Create(alert).Error; err != nil {
		return err
	}
	r.notify()
	return nil
}

func (r *AlertRepository) Update(id uint, updates map[string]interface{}) error {
	res := r.db.Model(&model.Alert{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.notify()
	return nil
}

// UpdateStatus ganti status alert + tambah catatan (append-only, catatan
// lama tidak pernah disentuh).
func (r *AlertRepository) UpdateStatus(id uint, status, note, author string) error {
	var alert model.Alert
	if err := r.db.First(&alert, id).Error; err != nil {
		return err
	}

	if err := r.db.Model(&alert).Update("status", status).Error; err != nil {
		return err
	}
	if note != "" {
		entry := model.AlertNote{AlertRefID: alert.ID, Note: note, Author: author}
		if err := r.db.Create(&entry).Error; err != nil {
			return err
		}
	}
	r.notify()
	return nil
}

func (r *AlertRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Alert{}, id).Error; err != nil {
		return err
	}
	r.notify()
	return nil
}

func (r *AlertRepository) notify() {
	if r.hub != nil {
		r.hub.Notify()
	}
}
