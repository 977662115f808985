//go:build linux || darwin

package sysinfo

import (
	"context"

	"golang.org/x/sys/unix"
)

// diskUsage reads filesystem capacity with statfs(2). Available uses the
// blocks free to unprivileged users, so reserved blocks count as used.
func diskUsage(_ context.Context, path string) (DiskUsage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return DiskUsage{}, err
	}

	bsize := uint64(st.Bsize)
	return DiskUsage{
		Path:      path,
		Total:     uint64(st.Blocks) * bsize,
		Available: uint64(st.Bavail) * bsize,
	}, nil
}
