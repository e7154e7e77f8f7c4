package domain

// Logger ロガー
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
	// Exception エラーとスタックトレース付きでERRORレベルのログを出力
	Exception(err error, format string, v ...interface{})
}

// Notifier 稼働状況の通知先
type Notifier interface {
	// Notify メッセージを通知（attachmentPathが空でなければファイルを添付）
	Notify(message string, attachmentPath string) error
}
