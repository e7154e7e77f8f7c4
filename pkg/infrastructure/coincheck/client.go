package coincheck

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"botbase/pkg/domain"
	"botbase/pkg/domain/model"
)

const origin = "https://coincheck.com/"

// Client Coincheck公開API用クライアント
type Client struct {
	logger     domain.Logger
	origin     string
	httpClient *http.Client
}

// NewPublicClient 認証なしの公開API用クライアントの生成
func NewPublicClient(logger domain.Logger) *Client {
	return &Client{
		logger: logger,
		origin: origin,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// GetRate レート取得
func (c *Client) GetRate(pair string) (*model.Rate, error) {
	u, err := c.makeURL(fmt.Sprintf("/api/rate/%s", pair))
	if err != nil {
		return nil, err
	}

	var res struct {
		Rate string `json:"rate"`
	}
	if err := c.request(http.MethodGet, u, &res); err != nil {
		return nil, err
	}

	rate, err := strconv.ParseFloat(res.Rate, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response of GetRate, pair: %s; error: %w", pair, err)
	}

	c.logger.Debug("fetched rate; pair = %s, rate = %f", pair, rate)

	return &model.Rate{
		Pair: pair,
		Rate: rate,
		Time: time.Now(),
	}, nil
}

func (c *Client) makeURL(p string) (string, error) {
	u, err := url.Parse(c.origin)
	if err != nil {
		return "", err
	}
	u.Path = p
	return u.String(), nil
}

func (c *Client) request(method, u string, result interface{}) error {
	req, err := http.NewRequest(method, u, nil)
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

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("coincheck response %d error: %s", res.StatusCode, body)
	}

	return json.Unmarshal(body, result)
}
