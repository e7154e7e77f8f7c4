package usecase

import (
	"time"

	"botbase/pkg/domain"
	"botbase/pkg/domain/model"
	"botbase/pkg/infrastructure/discord"
	"botbase/pkg/infrastructure/line"

	"github.com/pmylund/go-cache"
)

// StatusNotifier 稼働状況の通知
// DiscordのWebhookが設定されていればDiscordへ、なければLINEへ通知する
type StatusNotifier struct {
	logger  domain.Logger
	line    *line.Client
	discord *discord.Client
	sent    *cache.Cache
}

// NewStatusNotifier 通知先の設定から通知用クライアントを生成
func NewStatusNotifier(logger domain.Logger, conf *model.Config) *StatusNotifier {
	n := &StatusNotifier{
		logger: logger,
	}
	if conf.DiscordWebhook != "" {
		n.discord = discord.NewClient(conf.DiscordWebhook)
	}
	if conf.LineNotifyToken != "" {
		n.line = line.NewClient(conf.LineNotifyToken)
	}
	if conf.NotifySuppressSeconds > 0 {
		window := time.Duration(conf.NotifySuppressSeconds) * time.Second
		n.sent = cache.New(window, time.Minute)
	}
	return n
}

// Notify メッセージを通知
// 送信に成功したらINFOレベルでログを出力し、失敗したらERRORレベルで
// ログを出力した上でエラーを返す
func (n *StatusNotifier) Notify(message string, attachmentPath string) error {
	if n.sent != nil {
		if _, found := n.sent.Get(message); found {
			n.logger.Debug("skip duplicated notification; message = %s", message)
			return nil
		}
	}

	var err error
	switch {
	case n.discord != nil:
		err = n.discord.Notify(message, attachmentPath)
	case n.line != nil:
		err = n.line.Notify(message, attachmentPath)
	default:
		n.logger.Warn("notification channel is not configured; message = %s", message)
		return nil
	}

	if err != nil {
		n.logger.Error("failed to send notification; error: %v", err)
		return err
	}

	if n.sent != nil {
		n.sent.Set(message, struct{}{}, cache.DefaultExpiration)
	}
	n.logger.Info(message)
	return nil
}
