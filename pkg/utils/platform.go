//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端按移动端行为运行（调试用）
const MobileEmulateEnv = "DRAGONEGG_MOBILE_EMULATE"

// IsMobile 是否运行在移动设备上
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
