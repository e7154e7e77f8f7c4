package exchange

import "botbase/pkg/domain/model"

// Client 取引所クライアント
type Client interface {
	GetRate(pair string) (*model.Rate, error)
}
