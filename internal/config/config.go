package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 애플리케이션 설정
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Market MarketConfig `toml:"market"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 데이터 디렉터리 설정
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// MarketConfig 시세/환율 설정
type MarketConfig struct {
	// USDKRWFallback 환율 조회 실패 시 쓰는 폴백 (원)
	USDKRWFallback float64 `toml:"usdkrw_fallback"`
	// CacheTTLSeconds 환율 캐시 유지 시간
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`
	// ChartRange / ChartInterval 가격 차트 조회 구간
	ChartRange    string `toml:"chart_range"`
	ChartInterval string `toml:"chart_interval"`
}

// DefaultConfig 기본 설정
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20780,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Market: MarketConfig{
			USDKRWFallback:  1400.0,
			CacheTTLSeconds: 300,
			ChartRange:      "5d",
			ChartInterval:   "5m",
		},
	}
}

// GetExeDir 실행 파일 디렉터리
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfig config.toml 로드. 파일이 없으면 기본 설정을 쓴다.
// 설정 파일은 실행 파일과 같은 디렉터리에 둔다.
func LoadConfig() (*AppConfig, error) {
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := os.ReadFile(filepath.Join(exeDir, "config.toml"))
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig config.toml 저장
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureDataDir 데이터 디렉터리(업로드 임시 저장 포함) 생성
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Join(dataDir, "uploads"), 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}
