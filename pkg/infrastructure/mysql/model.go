package mysql

import (
	"encoding/json"
	"time"
)

// OrderHistory 発注履歴レコード
type OrderHistory struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement"`
	Day        string `gorm:"size:6;index"`
	RecordedAt time.Time
	Data       string `gorm:"type:text"`
}

// NewOrderHistory 生成
func NewOrderHistory(day string, at time.Time, record map[string]string) (*OrderHistory, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	return &OrderHistory{
		Day:        day,
		RecordedAt: at,
		Data:       string(data),
	}, nil
}
