package market

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL Yahoo Finance 차트 API
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client 시세 조회 클라이언트
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient 기본 클라이언트 생성
func NewClient() *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: DefaultBaseURL,
	}
}

// NewClientWithBaseURL 테스트용: 엔드포인트 교체
func NewClientWithBaseURL(base string) *Client {
	c := NewClient()
	c.baseURL = base
	return c
}

// chartResponse v8 차트 API 응답 (필요한 필드만)
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// PricePoint 차트용 (시각, 종가) 쌍
type PricePoint struct {
	Time  int64   `json:"time"` // unix 초
	Close float64 `json:"close"`
}

// History 지정 심볼의 종가 시계열을 가져온다.
// 결측 구간(nil close)은 건너뛴다.
func (c *Client) History(symbol, rng, interval string) ([]PricePoint, error) {
	resp, err := c.fetchChart(symbol, rng, interval)
	if err != nil {
		return nil, err
	}

	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote data for %s", symbol)
	}
	closes := result.Indicators.Quote[0].Close

	points := make([]PricePoint, 0, len(closes))
	for i, cl := range closes {
		if cl == nil || i >= len(result.Timestamp) {
			continue
		}
		points = append(points, PricePoint{Time: result.Timestamp[i], Close: *cl})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("empty close series for %s", symbol)
	}
	return points, nil
}

// LatestClose 가장 최근 종가 하나
func (c *Client) LatestClose(symbol, rng, interval string) (float64, error) {
	points, err := c.History(symbol, rng, interval)
	if err != nil {
		return 0, err
	}
	return points[len(points)-1].Close, nil
}

func (c *Client) fetchChart(symbol, rng, interval string) (*chartResponse, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(rng), url.QueryEscape(interval))

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (odin-spear-dashboard)")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch chart: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch chart: status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read chart body: %w", err)
	}

	var resp chartResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart api: %s", resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart result for %s", symbol)
	}
	return &resp, nil
}
