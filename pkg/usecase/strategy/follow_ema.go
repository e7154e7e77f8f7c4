package strategy

import (
	"context"
	"fmt"
	"time"

	"botbase/pkg/domain"
	"botbase/pkg/domain/exchange"
	"botbase/pkg/domain/repository"
	"botbase/pkg/usecase"

	"github.com/BurntSushi/toml"
	"github.com/markcheno/go-talib"
)

// FollowEMAStrategy EMAのゴールデンクロスで買いシグナルを記録する戦略
type FollowEMAStrategy struct {
	bot      *usecase.Bot
	logger   domain.Logger
	exCli    exchange.Client
	rateRepo repository.RateRepository
	config   followEMAConfig
}

type followEMAConfig struct {
	Pair            string `toml:"pair"`
	IntervalSeconds int    `toml:"interval_seconds"`

	// 短期EMAの期間
	ShortTermSize int `toml:"short_term_size"`
	// 長期EMAの期間
	LongTermSize int `toml:"long_term_size"`
}

// NewFollowEMAStrategy 戦略を生成
func NewFollowEMAStrategy(p *Params) (*FollowEMAStrategy, error) {
	s := &FollowEMAStrategy{
		bot:      p.Bot,
		logger:   p.Logger,
		exCli:    p.ExCli,
		rateRepo: p.RateRepo,
	}

	if err := s.loadConfig(); err != nil {
		return nil, err
	}

	return s, nil
}

// Run ロジック実行
func (s *FollowEMAStrategy) Run(ctx context.Context) error {
	for {
		if s.bot.Stopped() {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := s.check(); err != nil {
			s.logger.Error("error occured in check; error: %v", err)
		}

		if err := s.wait(ctx); err != nil {
			return err
		}
	}
}

func (s *FollowEMAStrategy) check() error {
	rate, err := s.exCli.GetRate(s.config.Pair)
	if err != nil {
		return err
	}
	if err := s.rateRepo.AddRate(rate); err != nil {
		return err
	}

	rates := s.rateRepo.GetRateHistory()
	if len(rates) < s.config.LongTermSize+1 {
		s.logger.Debug("skip check (rate history: %d < required(%d))", len(rates), s.config.LongTermSize+1)
		return nil
	}

	shorts := talib.Ema(rates, s.config.ShortTermSize)
	longs := talib.Ema(rates, s.config.LongTermSize)
	if !CrossedUp(shorts, longs) {
		return nil
	}

	s.logger.Info("golden cross; pair = %s, rate = %f", rate.Pair, rate.Rate)

	record := map[string]string{
		"time":  rate.Time.Format(time.RFC3339),
		"pair":  rate.Pair,
		"side":  "buy",
		"price": fmt.Sprintf("%f", rate.Rate),
	}
	if err := s.bot.WriteOrderHistory(record); err != nil {
		return err
	}

	return s.bot.Notify(fmt.Sprintf("golden cross: %s %f", rate.Pair, rate.Rate))
}

// wait 次の取得まで待機
func (s *FollowEMAStrategy) wait(ctx context.Context) error {
	interval := time.Duration(s.config.IntervalSeconds) * time.Second

	s.logger.Debug("waiting ... (%v)", interval)
	ctx, cancel := context.WithTimeout(ctx, interval)
	defer cancel()

	<-ctx.Done()

	if ctx.Err() != context.Canceled && ctx.Err() != context.DeadlineExceeded {
		return ctx.Err()
	}
	return nil
}

func (s *FollowEMAStrategy) loadConfig() error {
	const configPath = "./configs/bot-follow-ema.toml"
	if _, err := toml.DecodeFile(configPath, &s.config); err != nil {
		return err
	}
	return nil
}
