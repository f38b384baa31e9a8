package market

import (
	"sync"
	"time"
)

// fxSymbol USD/KRW 환율 심볼
const fxSymbol = "USDKRW=X"

// FX 소스 구분
const (
	FXSourceLive     = "live"
	FXSourceCache    = "cache"
	FXSourceFallback = "fallback"
)

// FXProvider USD/KRW 환율 제공자.
// 조회 실패 시 주입된 폴백 값을 쓰고, 성공 값은 TTL 동안 캐시한다.
// 폴백과 TTL 은 설정에서 주입된다 (모듈 전역 가변 상태 금지).
type FXProvider struct {
	client   *Client
	fallback float64
	ttl      time.Duration

	mu        sync.Mutex
	cached    float64
	fetchedAt time.Time
}

// NewFXProvider 환율 제공자 생성
func NewFXProvider(client *Client, fallback float64, ttl time.Duration) *FXProvider {
	return &FXProvider{
		client:   client,
		fallback: fallback,
		ttl:      ttl,
	}
}

// Rate 현재 환율과 출처(live/cache/fallback)를 돌려준다. 실패하지 않는다.
func (p *FXProvider) Rate() (float64, string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.fetchedAt.IsZero() && time.Since(p.fetchedAt) < p.ttl {
		return p.cached, FXSourceCache
	}

	rate, err := p.client.LatestClose(fxSymbol, "1d", "1m")
	if err != nil || rate <= 0 {
		// 직전 캐시가 있으면 만료됐어도 폴백보다 낫다
		if p.cached > 0 {
			return p.cached, FXSourceCache
		}
		return p.fallback, FXSourceFallback
	}

	p.cached = rate
	p.fetchedAt = time.Now()
	return rate, FXSourceLive
}

// Fallback 설정된 폴백 환율
func (p *FXProvider) Fallback() float64 {
	return p.fallback
}
