// Package sysinfo reads the host metrics hoststat reports on: uptime,
// memory, disk usage, network interface addresses and the public IP.
// It also holds the formatting helpers used to present those values.
package sysinfo

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"hoststat/logger"
)

// MemoryUsage holds physical memory totals in bytes.
type MemoryUsage struct {
	Total     uint64
	Available uint64
}

// Used returns the bytes in use, never less than zero.
func (m MemoryUsage) Used() uint64 {
	return usedBytes(m.Total, m.Available)
}

// DiskUsage holds the capacity of the filesystem containing Path.
type DiskUsage struct {
	// Path is the storage path that was queried
	Path string

	// Total is the filesystem size in bytes
	Total uint64

	// Available is the space an unprivileged user may still allocate
	Available uint64
}

// Used returns the bytes not available to the caller, never less than zero.
func (d DiskUsage) Used() uint64 {
	return usedBytes(d.Total, d.Available)
}

func usedBytes(total, available uint64) uint64 {
	if available > total {
		return 0
	}
	return total - available
}

// Interface is an active network interface and its external IPv4 addresses.
type Interface struct {
	Name      string
	Addresses []string
}

// SystemInfo is a one-shot snapshot of the host.
type SystemInfo struct {
	// Now is the instant the snapshot was taken
	Now time.Time

	// Uptime is the time since the host booted
	Uptime time.Duration

	// Memory is the physical memory usage
	Memory MemoryUsage

	// Disks holds one entry per requested storage path, in request order
	Disks []DiskUsage

	// Interfaces lists interfaces carrying at least one external IPv4 address
	Interfaces []Interface

	// PublicIP is the address seen by the lookup service; empty when skipped
	PublicIP string
}

// Source supplies raw host readings. HostSource reads the local machine.
type Source interface {
	Uptime(ctx context.Context) (time.Duration, error)
	Memory(ctx context.Context) (MemoryUsage, error)
	DiskUsage(ctx context.Context, path string) (DiskUsage, error)
	Interfaces(ctx context.Context) ([]Interface, error)
	PublicIP(ctx context.Context) (string, error)
}

// Options selects what Collect reads.
type Options struct {
	// Paths are the storage paths to report disk usage for
	Paths []string

	// PublicIP enables the public IP lookup
	PublicIP bool

	// Now overrides the snapshot time; zero means time.Now()
	Now time.Time
}

// Collect gathers a SystemInfo snapshot from src.
//
// Parameters:
//   - ctx: Bounds every reading, including the public IP request
//   - src: The source of raw readings
//   - opts: Storage paths to check and whether to look up the public IP
//
// Returns:
//   - A populated SystemInfo, with Disks in the order of opts.Paths
//   - An error naming the failed metric, e.g. `disk usage of "/data": ...`
//
// Disk checks and the public IP lookup run concurrently and are joined
// before Collect returns. The first failure cancels the remaining work.
func Collect(ctx context.Context, src Source, opts Options) (*SystemInfo, error) {
	log := logger.WithComponent("sysinfo")
	start := time.Now()

	info := &SystemInfo{Now: opts.Now}
	if info.Now.IsZero() {
		info.Now = start
	}

	uptime, err := src.Uptime(ctx)
	if err != nil {
		return nil, fmt.Errorf("uptime: %w", err)
	}
	info.Uptime = uptime

	mem, err := src.Memory(ctx)
	if err != nil {
		return nil, fmt.Errorf("memory usage: %w", err)
	}
	info.Memory = mem

	ifaces, err := src.Interfaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("network interfaces: %w", err)
	}
	info.Interfaces = ifaces

	log.Debug().
		Dur("uptime", uptime).
		Uint64("mem_total", mem.Total).
		Uint64("mem_available", mem.Available).
		Int("interfaces", len(ifaces)).
		Msg("Host readings collected")

	g, gctx := errgroup.WithContext(ctx)

	info.Disks = make([]DiskUsage, len(opts.Paths))
	for i, path := range opts.Paths {
		g.Go(func() error {
			du, err := src.DiskUsage(gctx, path)
			if err != nil {
				return fmt.Errorf("disk usage of %q: %w", path, err)
			}
			du.Path = path
			info.Disks[i] = du

			log.Debug().
				Str("path", path).
				Uint64("total", du.Total).
				Uint64("available", du.Available).
				Msg("Disk usage collected")
			return nil
		})
	}

	if opts.PublicIP {
		g.Go(func() error {
			ip, err := src.PublicIP(gctx)
			if err != nil {
				return fmt.Errorf("public ip lookup: %w", err)
			}
			info.PublicIP = ip
			log.Debug().Str("ip", ip).Msg("Public IP resolved")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Debug().Dur("elapsed", time.Since(start)).Msg("Snapshot complete")
	return info, nil
}
