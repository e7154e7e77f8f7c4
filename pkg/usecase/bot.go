package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"botbase/pkg/domain"
	"botbase/pkg/domain/model"
	"botbase/pkg/domain/repository"
	"botbase/pkg/infrastructure/history"
)

// Logic ボットのロジック部分。利用側が実装を与える。
// Runはctxのキャンセルか停止フラグを確認しながら動き続けることが期待される。
type Logic interface {
	Run(ctx context.Context) error
}

// Bot 設定・ロガー・通知・発注履歴を束ねるボット本体
type Bot struct {
	conf     *model.Config
	logger   domain.Logger
	notifier domain.Notifier
	history  *history.Manager
	recorder repository.OrderHistoryRepository
	logic    Logic

	stopped int32
}

// NewBot ボットの生成
func NewBot(conf *model.Config, logger domain.Logger, notifier domain.Notifier, hist *history.Manager) *Bot {
	return &Bot{
		conf:     conf,
		logger:   logger,
		notifier: notifier,
		history:  hist,
	}
}

// SetLogic ロジックを設定
func (b *Bot) SetLogic(l Logic) {
	b.logic = l
}

// SetRecorder 発注履歴のDBミラーを設定
func (b *Bot) SetRecorder(r repository.OrderHistoryRepository) {
	b.recorder = r
}

// Start ボットを起動
// 設定されたロジックを実行し、終了後にステータスログを出力する
func (b *Bot) Start(ctx context.Context) error {
	if b.logic == nil {
		return errors.New("bot logic is not set")
	}

	atomic.StoreInt32(&b.stopped, 0)
	if err := b.logic.Run(ctx); err != nil {
		return err
	}
	b.logger.Info("bot started.")
	return nil
}

// Stop 停止フラグを立てる
// ロジック側がStoppedを確認して自律的に止まる必要がある
func (b *Bot) Stop() {
	atomic.StoreInt32(&b.stopped, 1)
	b.logger.Info("bot logic has been stopped.")
}

// Stopped 停止フラグの確認
func (b *Bot) Stopped() bool {
	return atomic.LoadInt32(&b.stopped) != 0
}

// Notify 稼働状況を通知
func (b *Bot) Notify(message string) error {
	return b.notifier.Notify(message, "")
}

// NotifyWithFile ファイル添付付きで稼働状況を通知
func (b *Bot) NotifyWithFile(message string, attachmentPath string) error {
	return b.notifier.Notify(message, attachmentPath)
}

// WriteOrderHistory 発注履歴を出力
// CSVファイルへ追記した上で、DBミラーが設定されていれば同じレコードを登録する
func (b *Bot) WriteOrderHistory(record map[string]string) error {
	at := time.Now()
	if err := b.history.WriteRowAt(record, at); err != nil {
		return fmt.Errorf("failed to write order history: %w", err)
	}

	if b.recorder != nil {
		if err := b.recorder.AddOrderHistory(history.DayKey(at), record); err != nil {
			b.logger.Error("failed to mirror order history; error: %v", err)
			return err
		}
	}
	return nil
}

// Close 発注履歴ファイルをクローズ
// 2回以上呼んでも安全
func (b *Bot) Close() error {
	return b.history.CloseAll()
}

// Logger ロガーを取得
func (b *Bot) Logger() domain.Logger {
	return b.logger
}

// Config 設定を取得
func (b *Bot) Config() *model.Config {
	return b.conf
}
