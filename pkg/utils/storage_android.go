//go:build android

package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 在打开 gdata 前创建设置目录并检查可写
//
// gdata 在 Android 上写入 /data/data/{package}/{appName}，但不会创建该目录。
func EnsureStorageDir(appName string) error {
	dir := StoragePath(appName)
	if dir == "" {
		return fmt.Errorf("failed to resolve Android package name")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory %s: %w", dir, err)
	}

	marker := filepath.Join(dir, ".write_check")
	if err := os.WriteFile(marker, nil, 0644); err != nil {
		return fmt.Errorf("settings directory %s is not writable: %w", dir, err)
	}
	return os.Remove(marker)
}

// StoragePath 返回设置目录，无法识别包名时返回空字符串
func StoragePath(appName string) string {
	pkg, err := packageName()
	if err != nil {
		return ""
	}
	return filepath.Join("/data/data", pkg, appName)
}

// packageName 从 /proc/self/cmdline 读取包名（第一个参数）
func packageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	name := string(bytes.TrimSpace(data))
	if name == "" {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}
	return name, nil
}
