package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"metrologi-backend/internal/model"
	"metrologi-backend/internal/realtime"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// Nama hash di Redis. Satu field per log: key = ID log, value = JSON.
const tamperLogKey = "tamperLogs"

var ErrTamperLogNotFound = errors.New("tamper log tidak ditemukan")

// TamperLogRepository beda sendiri dari repo lain: backend-nya Redis, bukan
// MySQL. Redis tidak mendukung order by timestamp di server, jadi kita ambil
// semua lalu sort descending di sisi aplikasi.
type TamperLogRepository struct {
	rdb *redis.Client
	hub *realtime.Hub[model.TamperLog]
}

func NewTamperLogRepository(rdb *redis.Client, hub *realtime.Hub[model.TamperLog]) *TamperLogRepository {
	r := &TamperLogRepository{rdb: rdb, hub: hub}
	if hub != nil {
		hub.SetFetcher(func() ([]model.TamperLog, error) {
			return r.list(context.Background(), 100)
		})
	}
	return r
}

func (r *TamperLogRepository) list(ctx context.Context, limit int) ([]model.TamperLog, error) {
	raw, err := r.rdb.HGetAll(ctx, tamperLogKey).Result()
	if err != nil {
		return nil, err
	}

	logs := make([]model.TamperLog, 0, len(raw))
	for id, val := range raw {
		var entry model.TamperLog
		if err := json.Unmarshal([]byte(val), &entry); err != nil {
			// Entry korup: skip saja, jangan gagalkan seluruh list
			log.Println("Tamper log korup di Redis, dilewati:", id, err)
			continue
		}
		entry.ID = id
		logs = append(logs, entry)
	}

	SortTamperLogsDesc(logs)
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

// SortTamperLogsDesc urutkan timestamp terbaru dulu. Stable: kalau timestamp
// sama, urutan ditentukan ID supaya hasil konsisten antar pemanggilan
// (HGetAll tidak punya urutan yang terjamin).
func SortTamperLogsDesc(logs []model.TamperLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Timestamp != logs[j].Timestamp {
			return logs[i].Timestamp > logs[j].Timestamp
		}
		return logs[i].ID < logs[j].ID
	})
}

func (r *TamperLogRepository) List(ctx context.Context, limit int) []model.TamperLog {
	logs, err := r.list(ctx, limit)
	if err != nil {
		log.Println("Gagal mengambil tamper log dari Redis:", err)
		return []model.TamperLog{}
	}
	return logs
}

func (r *TamperLogRepository) GetByID(ctx context.Context, id string) (model.TamperLog, error) {
	val, err := r.rdb.HGet(ctx, tamperLogKey, id).Result()
	if err == redis.Nil {
		return model.TamperLog{}, ErrTamperLogNotFound
	}
	if err != nil {
		return model.TamperLog{}, err
	}

	var entry model.TamperLog
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		return model.TamperLog{}, err
	}
	entry.ID = id
	return entry, nil
}

func (r *TamperLogRepository) Create(ctx context.Context, entry *model.TamperLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == 0 {
		entry.Timestamp = time.Now().UnixMilli()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err := r.rdb.HSet(ctx, tamperLogKey, entry.ID, data).Err(); err != nil {
		return err
	}
	r.notify()
	return nil
}

func (r *TamperLogRepository) Delete(ctx context.Context, id string) error {
	deleted, err := r.rdb.HDel(ctx, tamperLogKey, id).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrTamperLogNotFound
	}
	r.notify()
	return nil
}

func (r *TamperLogRepository) notify() {
	if r.hub != nil {
		r.hub.Notify()
	}
}
