package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/config"
	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/server"
	"github.com/tradeprogram/ODIN-SPEAR-STRATEGY/internal/util"
)

var (
	port    = flag.Int("port", 0, "서비스 포트 (config.toml 보다 우선)")
	devMode = flag.Bool("dev", false, "개발 모드")
	dataDir = flag.String("dataDir", "", "데이터 디렉터리 (설정 파일보다 우선)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  ODIN'S SPEAR STRATEGY - 시그널 대시보드")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("설정 로드 실패, 기본 설정 사용: %v", err)
		cfg = config.DefaultConfig()
	}

	// 명령행 인자가 설정을 덮어쓴다
	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("서비스 시작, 포트 %d 대기 중...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("서비스 시작 실패: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("브라우저 여는 중: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("브라우저 자동 실행 실패, 직접 접속하세요: %s\n", url)
		}
	} else {
		fmt.Printf("개발 모드: %s 로 접속하세요\n", url)
	}

	fmt.Println("\n종료하려면 Ctrl+C ...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n서비스 종료 중...")
	if err := srv.Close(); err != nil {
		log.Printf("종료 중 정리 실패: %v", err)
	}
}
