package memory

import "botbase/pkg/domain/model"

// RateRepository レート保存
type RateRepository struct {
	maxSize int
	queue   []model.Rate
}

// NewRateRepository 生成
func NewRateRepository(maxSize int) *RateRepository {
	return &RateRepository{
		maxSize: maxSize,
		queue:   []model.Rate{},
	}
}

// AddRate レート追加
func (r *RateRepository) AddRate(rate *model.Rate) error {
	r.queue = append(r.queue, *rate)
	if len(r.queue) > r.maxSize {
		r.queue = r.queue[1:]
	}
	return nil
}

// GetCurrentRate 現在のレートを取得
func (r *RateRepository) GetCurrentRate() *float64 {
	size := len(r.queue)
	if size == 0 {
		return nil
	}
	return &r.queue[size-1].Rate
}

// GetRateHistory レートの履歴を取得
func (r *RateRepository) GetRateHistory() []float64 {
	h := []float64{}
	for _, rate := range r.queue {
		h = append(h, rate.Rate)
	}
	return h
}

// GetHistorySizeMax 最大容量取得
func (r *RateRepository) GetHistorySizeMax() int {
	return r.maxSize
}
