package util

import (
	"os/exec"
	"runtime"
)

// OpenBrowser 기본 브라우저로 URL 열기
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "windows":
		// cmd /c start 보다 안정적 (Windows 7 포함)
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		return exec.Command("open", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

// OpenBrowserWithFallback 기본 방식 실패 시 대체 수단 시도
func OpenBrowserWithFallback(url string) error {
	err := OpenBrowser(url)
	if err == nil {
		return nil
	}

	switch runtime.GOOS {
	case "windows":
		return exec.Command("explorer", url).Start()
	case "linux":
		browsers := []string{"google-chrome", "firefox", "chromium-browser", "sensible-browser"}
		for _, browser := range browsers {
			if e := exec.Command(browser, url).Start(); e == nil {
				return nil
			}
		}
	}
	return err
}
