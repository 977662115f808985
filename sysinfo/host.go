package sysinfo

import (
	"context"
	"net/http"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	psnet "github.com/shirou/gopsutil/v4/net"
)

// HostSource reads metrics from the local machine.
type HostSource struct {
	// PublicIPURL is the lookup service queried by PublicIP
	PublicIPURL string

	// Client performs the public IP request; nil means http.DefaultClient.
	// Deadlines come from the context passed to PublicIP.
	Client *http.Client
}

var _ Source = (*HostSource)(nil)

// NewHostSource returns a HostSource that resolves the public IP through
// publicIPURL.
func NewHostSource(publicIPURL string) *HostSource {
	return &HostSource{PublicIPURL: publicIPURL}
}

// Uptime returns the time since boot.
func (h *HostSource) Uptime(ctx context.Context) (time.Duration, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

// Memory returns total and available physical memory. Available counts
// reclaimable caches as free, so Used reflects memory applications hold.
func (h *HostSource) Memory(ctx context.Context) (MemoryUsage, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryUsage{}, err
	}
	return MemoryUsage{Total: vm.Total, Available: vm.Available}, nil
}

// DiskUsage returns the capacity of the filesystem holding path. A missing
// or inaccessible path is an error.
func (h *HostSource) DiskUsage(ctx context.Context, path string) (DiskUsage, error) {
	if err := ctx.Err(); err != nil {
		return DiskUsage{}, err
	}
	return diskUsage(ctx, path)
}

// Interfaces lists the interfaces that are up and carry at least one
// non-loopback IPv4 address, in the order the OS reports them.
func (h *HostSource) Interfaces(ctx context.Context) ([]Interface, error) {
	stats, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	var result []Interface
	for _, st := range stats {
		addrs := make([]string, 0, len(st.Addrs))
		for _, a := range st.Addrs {
			addrs = append(addrs, a.Addr)
		}
		if iface, ok := activeInterface(st.Name, st.Flags, addrs); ok {
			result = append(result, iface)
		}
	}
	return result, nil
}

// PublicIP asks the configured lookup service for the host's public address.
func (h *HostSource) PublicIP(ctx context.Context) (string, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	return LookupPublicIP(ctx, client, h.PublicIPURL)
}
