package strategy

import (
	"context"
	"time"

	"botbase/pkg/domain"
	"botbase/pkg/domain/exchange"
	"botbase/pkg/usecase"

	"github.com/BurntSushi/toml"
)

// WatchOnlyStrategy 定期取得のみ
type WatchOnlyStrategy struct {
	bot      *usecase.Bot
	logger   domain.Logger
	exCli    exchange.Client
	interval time.Duration
	pair     string
}

type watchOnlyConfig struct {
	Pair            string `toml:"pair"`
	IntervalSeconds int    `toml:"interval_seconds"`
}

// NewWatchOnlyStrategy 戦略を生成
func NewWatchOnlyStrategy(p *Params) (*WatchOnlyStrategy, error) {
	s := &WatchOnlyStrategy{
		bot:    p.Bot,
		logger: p.Logger,
		exCli:  p.ExCli,
	}

	if err := s.loadConfig(); err != nil {
		return nil, err
	}

	return s, nil
}

// Run ロジック実行
func (s *WatchOnlyStrategy) Run(ctx context.Context) error {
	for {
		if s.bot.Stopped() {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := s.loadConfig(); err != nil {
			return err
		}

		rate, err := s.exCli.GetRate(s.pair)
		if err != nil {
			s.logger.Error("failed to fetch rate; error: %v", err)
		} else {
			s.logger.Info("rate; pair = %s, rate = %f", rate.Pair, rate.Rate)
		}

		if err := s.wait(ctx); err != nil {
			return err
		}
	}
}

// wait 次の取得まで待機
func (s *WatchOnlyStrategy) wait(ctx context.Context) error {
	s.logger.Debug("waiting ... (%v)", s.interval)
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	<-ctx.Done()

	if ctx.Err() != context.Canceled && ctx.Err() != context.DeadlineExceeded {
		return ctx.Err()
	}
	return nil
}

func (s *WatchOnlyStrategy) loadConfig() error {
	const configPath = "./configs/bot-watch-only.toml"
	var conf watchOnlyConfig
	if _, err := toml.DecodeFile(configPath, &conf); err != nil {
		return err
	}

	s.interval = time.Duration(conf.IntervalSeconds) * time.Second
	s.pair = conf.Pair

	return nil
}
