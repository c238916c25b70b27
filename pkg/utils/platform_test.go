//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 返回 false
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

func TestIsMobile_Emulated(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "1")
	if !IsMobile() {
		t.Error("IsMobile() should honour DRAGONEGG_MOBILE_EMULATE=1")
	}
}

func TestEnsureStorageDirDesktop(t *testing.T) {
	if err := EnsureStorageDir("dragonegg"); err != nil {
		t.Errorf("EnsureStorageDir() = %v, want nil on desktop", err)
	}
	if p := StoragePath("dragonegg"); p != "" {
		t.Errorf("StoragePath() = %q, want empty on desktop", p)
	}
}
