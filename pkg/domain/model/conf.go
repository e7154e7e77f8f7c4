package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// 設定ファイル読み込み時のエラー
var (
	// ErrConfigNotFound 設定ファイルが存在しない
	ErrConfigNotFound = errors.New("config file is not found")
	// ErrConfigParse 設定ファイルがJSONとして不正
	ErrConfigParse = errors.New("config file is invalid json")
)

// デフォルト値
const (
	DefaultExchangeName = "Exchange"
	DefaultBotName      = "Bot"
	DefaultLogLevel     = "DEBUG"
	DefaultLogDir       = "log"
)

// Config ボット用設定
type Config struct {
	ExchangeName string `json:"exchange_name"`
	BotName      string `json:"bot_name"`
	LogLevel     string `json:"log_level"`
	// LogDir 空文字列でファイル出力を無効化
	LogDir string `json:"log_dir"`

	LineNotifyToken string `json:"line_notify_token"`
	DiscordWebhook  string `json:"discordWebhook"`

	// NotifySuppressSeconds 同一メッセージの通知を抑止する秒数（0で無効）
	NotifySuppressSeconds int `json:"notify_suppress_seconds"`

	DB *DB `json:"db"`
}

// DB DB用設定
type DB struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Name     string `json:"name"`
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// LoadConfig JSONの設定ファイルを読み込む
// 省略されたキーにはデフォルト値を適用する
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR] Config file is not found.")
		return nil, fmt.Errorf("%w; path: %s", ErrConfigNotFound, path)
	}

	conf := &Config{
		ExchangeName: DefaultExchangeName,
		BotName:      DefaultBotName,
		LogLevel:     DefaultLogLevel,
		LogDir:       DefaultLogDir,
	}
	if err := json.Unmarshal(data, conf); err != nil {
		fmt.Fprintln(os.Stderr, "[ERROR] Json file is invalid.")
		return nil, fmt.Errorf("%w; path: %s: %v", ErrConfigParse, path, err)
	}

	return conf, nil
}

// LoggerName ロガーの識別名
func (c *Config) LoggerName() string {
	return fmt.Sprintf("%s_%s", c.ExchangeName, c.BotName)
}
