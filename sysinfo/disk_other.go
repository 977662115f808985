//go:build !linux && !darwin && !windows

package sysinfo

import (
	"context"

	"github.com/shirou/gopsutil/v4/disk"
)

func diskUsage(ctx context.Context, path string) (DiskUsage, error) {
	st, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return DiskUsage{}, err
	}
	return DiskUsage{Path: path, Total: st.Total, Available: st.Free}, nil
}
