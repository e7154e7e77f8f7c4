package model_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"botbase/pkg/domain/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err.Error())
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := map[string]struct {
		content string
		want    model.Config
	}{
		"empty json applies all defaults": {
			content: `{}`,
			want: model.Config{
				ExchangeName: "Exchange",
				BotName:      "Bot",
				LogLevel:     "DEBUG",
				LogDir:       "log",
			},
		},
		"explicit values override defaults": {
			content: `{"exchange_name":"Acme","bot_name":"Trader","log_level":"INFO","log_dir":"out"}`,
			want: model.Config{
				ExchangeName: "Acme",
				BotName:      "Trader",
				LogLevel:     "INFO",
				LogDir:       "out",
			},
		},
		"empty log_dir disables file output": {
			content: `{"log_dir":""}`,
			want: model.Config{
				ExchangeName: "Exchange",
				BotName:      "Bot",
				LogLevel:     "DEBUG",
				LogDir:       "",
			},
		},
		"notification keys": {
			content: `{"line_notify_token":"token","discordWebhook":"https://discord/x","notify_suppress_seconds":60}`,
			want: model.Config{
				ExchangeName:          "Exchange",
				BotName:               "Bot",
				LogLevel:              "DEBUG",
				LogDir:                "log",
				LineNotifyToken:       "token",
				DiscordWebhook:        "https://discord/x",
				NotifySuppressSeconds: 60,
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := model.LoadConfig(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if got.ExchangeName != tt.want.ExchangeName {
				t.Errorf("ExchangeName = %v, want %v", got.ExchangeName, tt.want.ExchangeName)
			}
			if got.BotName != tt.want.BotName {
				t.Errorf("BotName = %v, want %v", got.BotName, tt.want.BotName)
			}
			if got.LogLevel != tt.want.LogLevel {
				t.Errorf("LogLevel = %v, want %v", got.LogLevel, tt.want.LogLevel)
			}
			if got.LogDir != tt.want.LogDir {
				t.Errorf("LogDir = %v, want %v", got.LogDir, tt.want.LogDir)
			}
			if got.LineNotifyToken != tt.want.LineNotifyToken {
				t.Errorf("LineNotifyToken = %v, want %v", got.LineNotifyToken, tt.want.LineNotifyToken)
			}
			if got.DiscordWebhook != tt.want.DiscordWebhook {
				t.Errorf("DiscordWebhook = %v, want %v", got.DiscordWebhook, tt.want.DiscordWebhook)
			}
			if got.NotifySuppressSeconds != tt.want.NotifySuppressSeconds {
				t.Errorf("NotifySuppressSeconds = %v, want %v", got.NotifySuppressSeconds, tt.want.NotifySuppressSeconds)
			}
		})
	}
}

func TestLoadConfig_DBConfig(t *testing.T) {
	got, err := model.LoadConfig(writeConfig(t, `{"db":{"host":"localhost","port":3306,"name":"bot","user_name":"root","password":"pass"}}`))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got.DB == nil {
		t.Fatal("DB is nil")
	}
	if got.DB.Host != "localhost" || got.DB.Port != 3306 || got.DB.Name != "bot" || got.DB.UserName != "root" || got.DB.Password != "pass" {
		t.Errorf("DB = %#v", got.DB)
	}
}

func TestLoadConfig_NotFound(t *testing.T) {
	_, err := model.LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, model.ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	_, err := model.LoadConfig(writeConfig(t, `{"exchange_name":`))
	if !errors.Is(err, model.ErrConfigParse) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigParse", err)
	}
}

func TestLoggerName(t *testing.T) {
	conf := &model.Config{ExchangeName: "Acme", BotName: "Trader"}
	if got := conf.LoggerName(); got != "Acme_Trader" {
		t.Errorf("LoggerName() = %v, want Acme_Trader", got)
	}
}
