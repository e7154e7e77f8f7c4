package mysql

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Client MySQL用クライアント
type Client struct {
	db *gorm.DB
}

// NewClient MySQL用クライアントの生成
func NewClient(userName, password, dbHost string, dbPort int, dbName string) (*Client, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8&parseTime=True&loc=Local", userName, password, dbHost, dbPort, dbName)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database; db = %s: %w", dbName, err)
	}

	if err := db.AutoMigrate(&OrderHistory{}); err != nil {
		return nil, err
	}

	return &Client{
		db: db,
	}, nil
}

// AddOrderHistory 発注履歴の新規登録
func (c *Client) AddOrderHistory(day string, record map[string]string) error {
	r, err := NewOrderHistory(day, time.Now(), record)
	if err != nil {
		return err
	}
	return c.db.Create(r).Error
}

// GetOrderHistories 指定日の発注履歴を取得
func (c *Client) GetOrderHistories(day string) ([]OrderHistory, error) {
	records := []OrderHistory{}
	if err := c.db.Where("day = ?", day).Order("recorded_at").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
