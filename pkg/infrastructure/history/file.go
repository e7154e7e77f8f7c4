package history

import (
	"encoding/csv"
	"fmt"
	"os"
)

// File 1日分の発注履歴ファイル
type File struct {
	path    string
	columns []string
	fp      *os.File
	writer  *csv.Writer
	closed  bool
}

func newFile(path string, columns []string) (*File, error) {
	fp, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open order history file; path = %s: %w", path, err)
	}

	f := &File{
		path:    path,
		columns: columns,
		fp:      fp,
		writer:  csv.NewWriter(fp),
	}

	// 空ファイルのときだけヘッダーを書く（同日の再起動で重複させない）
	info, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	if info.Size() == 0 {
		if err := f.writeRow(columns); err != nil {
			fp.Close()
			return nil, err
		}
	}

	return f, nil
}

// Path ファイルパス
func (f *File) Path() string {
	return f.path
}

// WriteRow レコードを1行追記
// レコードの値は列名の順に並べられ、存在しない列は空文字列になる
func (f *File) WriteRow(record map[string]string) error {
	if f.closed {
		return ErrClosed
	}

	row := make([]string, len(f.columns))
	for i, c := range f.columns {
		row[i] = record[c]
	}
	return f.writeRow(row)
}

func (f *File) writeRow(row []string) error {
	if err := f.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write order history; path = %s: %w", f.path, err)
	}
	f.writer.Flush()
	if err := f.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush order history; path = %s: %w", f.path, err)
	}
	return nil
}

// Close ファイルをクローズ（クローズ済みなら何もしない）
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	f.writer.Flush()
	if err := f.writer.Error(); err != nil {
		f.fp.Close()
		return err
	}
	return f.fp.Close()
}
