package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// ログレベル
const (
	Debug = iota
	Info
	Warn
	Error
)

const (
	timeFormat = "2006-01-02 15:04:05"

	// ローテーション設定
	maxFileSizeMB = 2
	maxBackups    = 3
)

var levelTags = map[int]string{
	Debug: "DEBUG",
	Info:  "INFO",
	Warn:  "WARNING",
	Error: "ERROR",
}

// ParseLevel ログレベル名をレベル値に変換
func ParseLevel(name string) (int, error) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	default:
		return Debug, fmt.Errorf("log level is unknown; level = %s", name)
	}
}

// Options ロガー生成時の設定
type Options struct {
	// Level ログレベル名（DEBUG/INFO/WARNING/ERROR）
	Level string
	// Dir ログファイルの出力先（空でファイル出力なし）
	Dir string
}

// Registry 名前付きロガーの管理
// 同名のロガーは一度だけ生成され、以降は同じインスタンスを返す
type Registry struct {
	mu      sync.Mutex
	console io.Writer
	loggers map[string]*Logger
}

// NewRegistry ロガー管理を生成
func NewRegistry(console io.Writer) *Registry {
	return &Registry{
		console: console,
		loggers: map[string]*Logger{},
	}
}

// Get 名前付きロガーを取得（なければ生成）
// 2回目以降の呼び出しではシンクを追加しない
func (r *Registry) Get(name string, opts Options) (*Logger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l, nil
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		name:    name,
		level:   level,
		console: r.console,
		now:     time.Now,
	}

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log dir; dir = %s: %w", opts.Dir, err)
		}
		l.file = &lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, name+".log"),
			MaxSize:    maxFileSizeMB,
			MaxBackups: maxBackups,
		}
	}

	r.loggers[name] = l
	return l, nil
}

// Logger レベル付きロガー
// コンソールには "[LEVEL] 時刻 : メッセージ"、
// ファイルには "[LEVEL] 時刻 名前: メッセージ" の形式で出力する
type Logger struct {
	name    string
	level   int
	console io.Writer
	file    io.Writer
	mu      sync.Mutex
	now     func() time.Time
}

func (l *Logger) output(level int, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	msg := fmt.Sprintf(format, v...)
	ts := l.now().Format(timeFormat)
	tag := levelTags[level]

	consoleTag := tag
	switch level {
	case Warn:
		consoleTag = Yellow(tag)
	case Error:
		consoleTag = Red(tag)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "[%s] %s : %s\n", consoleTag, ts, msg)
	if l.file != nil {
		fmt.Fprintf(l.file, "[%s] %s %s: %s\n", tag, ts, l.name, msg)
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.output(Debug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.output(Info, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.output(Warn, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.output(Error, format, v...)
}

// Exception エラーとスタックトレース付きでERRORレベルのログを出力
func (l *Logger) Exception(err error, format string, v ...interface{}) {
	msg := fmt.Sprintf(format, v...)
	l.output(Error, "%s; error: %v\n%s", msg, err, debug.Stack())
}
