package strategy

import (
	"botbase/pkg/domain"
	"botbase/pkg/domain/exchange"
	"botbase/pkg/domain/repository"
	"botbase/pkg/usecase"
)

// Type 戦略種別
type Type string

const (
	// WatchOnly 定期取得のみ
	WatchOnly Type = "watch_only"
	// FollowEMA EMAのゴールデンクロス追従
	FollowEMA Type = "follow_ema"
)

// Params 戦略用パラメータ
type Params struct {
	Bot      *usecase.Bot
	Logger   domain.Logger
	ExCli    exchange.Client
	RateRepo repository.RateRepository
}

// Make 戦略を生成
// 未知の種別のときはnilを返す
func Make(t Type, p *Params) (usecase.Logic, error) {
	switch t {
	case WatchOnly:
		return NewWatchOnlyStrategy(p)
	case FollowEMA:
		return NewFollowEMAStrategy(p)
	default:
		return nil, nil
	}
}
