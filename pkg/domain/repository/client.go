package repository

import "botbase/pkg/domain/model"

// OrderHistoryRepository 発注履歴用リポジトリ
type OrderHistoryRepository interface {
	AddOrderHistory(day string, record map[string]string) error
}

// RateRepository レート用リポジトリ
type RateRepository interface {
	AddRate(*model.Rate) error
	GetCurrentRate() *float64
	GetRateHistory() []float64
	GetHistorySizeMax() int
}
