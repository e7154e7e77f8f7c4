package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const dayKeyFormat = "060102"

// ErrClosed クローズ済みのファイルへの書き込み
var ErrClosed = errors.New("order history file is already closed")

var jst = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		loc = time.FixedZone("Asia/Tokyo", 9*60*60)
	}
	return loc
}()

// DayKey 日本時間での日付キー（yymmdd）
func DayKey(at time.Time) string {
	return at.In(jst).Format(dayKeyFormat)
}

// Manager 発注履歴ファイルの管理
// 日本時間の日付ごとに1ファイルを保持し、日付が変わると新しいファイルに切り替わる
// プロセス内の単一の書き込み元を想定しており、内部で排他制御はしない
type Manager struct {
	dir      string
	baseName string
	columns  []string
	files    map[string]*File
	closed   bool
}

// NewManager 発注履歴ファイル管理の生成
// columnsは全レコードに適用する列名（この順でCSVに出力される）
func NewManager(dir, exchangeName, botName string, columns []string) *Manager {
	return &Manager{
		dir:      dir,
		baseName: fmt.Sprintf("%s_%s_order_history", exchangeName, botName),
		columns:  columns,
		files:    map[string]*File{},
	}
}

// GetOrCreate 時刻atの日付に対応する発注履歴ファイルを取得
// ファイルが存在しない場合、新規で作成してヘッダー行を書き込む
func (m *Manager) GetOrCreate(at time.Time) (*File, error) {
	if m.closed {
		return nil, ErrClosed
	}

	day := DayKey(at)
	if f, ok := m.files[day]; ok {
		return f, nil
	}

	if m.dir != "" {
		if err := os.MkdirAll(m.dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create order history dir; dir = %s: %w", m.dir, err)
		}
	}

	path := filepath.Join(m.dir, fmt.Sprintf("%s_%s.csv", m.baseName, day))
	f, err := newFile(path, m.columns)
	if err != nil {
		return nil, err
	}
	m.files[day] = f
	return f, nil
}

// WriteRow 現在日付のファイルに1レコードを追記
func (m *Manager) WriteRow(record map[string]string) error {
	return m.WriteRowAt(record, time.Now())
}

// WriteRowAt 時刻atの日付のファイルに1レコードを追記
func (m *Manager) WriteRowAt(record map[string]string, at time.Time) error {
	f, err := m.GetOrCreate(at)
	if err != nil {
		return err
	}
	return f.WriteRow(record)
}

// CloseAll 開いている発注履歴ファイルをすべてクローズ
// 2回以上呼んでも安全で、クローズ済みのファイルを開き直すことはない
func (m *Manager) CloseAll() error {
	m.closed = true

	var firstErr error
	for _, f := range m.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
