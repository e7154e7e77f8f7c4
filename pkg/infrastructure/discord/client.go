package discord

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Client Discord Webhook用クライアント
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient Discord Webhook用クライアントの生成
func NewClient(webhookURL string) *Client {
	return &Client{
		url: webhookURL,
		httpClient: &http.Client{
			// 通知でボットのループを止めないためのタイムアウト
			Timeout: 10 * time.Second,
		},
	}
}

// Notify メッセージを通知
// attachmentPathが空でなければ画像ファイルを添付する
func (c *Client) Notify(message string, attachmentPath string) error {
	var req *http.Request
	var err error
	if attachmentPath == "" {
		req, err = c.makeRequest(message)
	} else {
		req, err = c.makeMultipartRequest(message, attachmentPath)
	}
	if err != nil {
		return err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	// Webhookは成功時に200または204を返す
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNoContent {
		return fmt.Errorf("discord response %d error: %s", res.StatusCode, body)
	}

	return nil
}

func (c *Client) makeRequest(message string) (*http.Request, error) {
	values := url.Values{}
	values.Set("content", " "+message+" ")

	req, err := http.NewRequest(http.MethodPost, c.url, strings.NewReader(values.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

func (c *Client) makeMultipartRequest(message, attachmentPath string) (*http.Request, error) {
	f, err := os.Open(attachmentPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("content", " "+message+" "); err != nil {
		return nil, err
	}
	fw, err := w.CreateFormFile("imageFile", filepath.Base(attachmentPath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, f); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, c.url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req, nil
}
