package repository

import (
	"log"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/realtime"

	"gorm.io/gorm"
)

type DeviceRepository struct {
	db  *gorm.DB
	hub *realtime.Hub[model.Device]
}

func NewDeviceRepository(db *gorm.DB, hub *realtime.Hub[model.Device]) *DeviceRepository {
	r := &DeviceRepository{db: db, hub: hub}
	if hub != nil {
		hub.SetFetcher(func() ([]model.Device, error) {
			return r.list(50)
		})
	}
	return r
}

func (r *DeviceRepository) list(limit int) ([]model.Device, error) {
	var devices []model.Device
	err := r.db.Preload("TamperEvents").Limit(limit).Find(&devices).Error
	return devices, err
}

// List mengambil maksimal `limit` perangkat. Kalau query gagal, kembalikan
// slice kosong saja supaya halaman dashboard tidak ikut crash.
func (r *DeviceRepository) List(limit int) []model.Device {
	devices, err := r.list(limit)
	if err != nil {
		log.Println("Gagal mengambil data perangkat:", err)
		return []model.Device{}
	}
	return devices
}

func (r *DeviceRepository) GetByID(id uint) (model.Device, error) {
	var device model.Device
	err := r.db.Preload("TamperEvents").First(&device, id).Error
	return device, err
}

func (r *DeviceRepository) GetByDeviceID(deviceID string) (model.Device, error) {
	var device model.Device
	err := r.db.Preload("TamperEvents").Where("device_id = ?", deviceID).First(&device).Error
	return device, err
}

func (r *DeviceRepository) Create(device *model.Device) error {
	if err := r.db.Create(device).Error; err != nil {
		return err
	}
	r.notify()
	return nil
}

// Update merge sebagian field saja (partial update). CreatedAt/UpdatedAt
// diurus gorm otomatis.
func (r *DeviceRepository) Update(id uint, updates map[string]interface{}) error {
	res := r.db.Model(&model.Device{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.notify()
	return nil
}

func (r *DeviceRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Device{}, id).Error; err != nil {
		return err
	}
	r.notify()
	return nil
}

func (r *DeviceRepository) notify() {
	if r.hub != nil {
		r.hub.Notify()
	}
}
