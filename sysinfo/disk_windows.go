//go:build windows

package sysinfo

import (
	"context"

	"golang.org/x/sys/windows"
)

// diskUsage reads the capacity of the volume holding path using the
// GetDiskFreeSpaceEx API. Available honours per-user quotas.
func diskUsage(_ context.Context, path string) (DiskUsage, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return DiskUsage{}, err
	}

	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	err = windows.GetDiskFreeSpaceEx(
		p,
		&freeBytesAvailable,
		&totalBytes,
		&totalFreeBytes,
	)
	if err != nil {
		return DiskUsage{}, err
	}

	return DiskUsage{
		Path:      path,
		Total:     totalBytes,
		Available: freeBytesAvailable,
	}, nil
}
