package sysinfo

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errProbe = errors.New("probe failed")

type fakeSource struct {
	uptime     time.Duration
	memory     MemoryUsage
	disks      map[string]DiskUsage
	diskErrs   map[string]error
	interfaces []Interface
	publicIP   string
	ipErr      error

	mu          sync.Mutex
	ipCalls     int
	diskQueries []string
}

func (f *fakeSource) Uptime(context.Context) (time.Duration, error) { return f.uptime, nil }

func (f *fakeSource) Memory(context.Context) (MemoryUsage, error) { return f.memory, nil }

func (f *fakeSource) DiskUsage(_ context.Context, path string) (DiskUsage, error) {
	f.mu.Lock()
	f.diskQueries = append(f.diskQueries, path)
	f.mu.Unlock()

	if err := f.diskErrs[path]; err != nil {
		return DiskUsage{}, err
	}
	return f.disks[path], nil
}

func (f *fakeSource) Interfaces(context.Context) ([]Interface, error) { return f.interfaces, nil }

func (f *fakeSource) PublicIP(context.Context) (string, error) {
	f.mu.Lock()
	f.ipCalls++
	f.mu.Unlock()
	return f.publicIP, f.ipErr
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		uptime: 26 * time.Hour,
		memory: MemoryUsage{Total: 8 << 30, Available: 2 << 30},
		disks: map[string]DiskUsage{
			"/":     {Total: 100 << 30, Available: 40 << 30},
			"/data": {Total: 2 << 40, Available: 1 << 40},
			"/tmp":  {Total: 1 << 30, Available: 1 << 30},
		},
		interfaces: []Interface{{Name: "eth0", Addresses: []string{"192.168.1.20"}}},
		publicIP:   "203.0.113.7",
	}
}

func TestCollect(t *testing.T) {
	src := newFakeSource()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	info, err := Collect(context.Background(), src, Options{
		Paths:    []string{"/", "/data", "/tmp"},
		PublicIP: true,
		Now:      now,
	})
	require.NoError(t, err)

	assert.Equal(t, now, info.Now)
	assert.Equal(t, 26*time.Hour, info.Uptime)
	assert.Equal(t, uint64(6<<30), info.Memory.Used())
	require.Len(t, info.Disks, 3)
	assert.Equal(t, []string{"/", "/data", "/tmp"}, []string{info.Disks[0].Path, info.Disks[1].Path, info.Disks[2].Path})
	assert.Equal(t, uint64(60<<30), info.Disks[0].Used())
	assert.Equal(t, uint64(0), info.Disks[2].Used())
	assert.Equal(t, "203.0.113.7", info.PublicIP)
	assert.Equal(t, src.interfaces, info.Interfaces)
	assert.Equal(t, 1, src.ipCalls)
}

func TestCollectSkipsPublicIP(t *testing.T) {
	src := newFakeSource()

	info, err := Collect(context.Background(), src, Options{Paths: []string{"/"}})
	require.NoError(t, err)

	assert.Empty(t, info.PublicIP)
	assert.Zero(t, src.ipCalls)
	assert.False(t, info.Now.IsZero())
}

func TestCollectDiskError(t *testing.T) {
	src := newFakeSource()
	src.diskErrs = map[string]error{"/missing": errProbe}

	info, err := Collect(context.Background(), src, Options{Paths: []string{"/", "/missing"}})
	require.Error(t, err)
	assert.Nil(t, info)
	assert.ErrorIs(t, err, errProbe)
	assert.Contains(t, err.Error(), `disk usage of "/missing"`)
}

func TestCollectPublicIPError(t *testing.T) {
	src := newFakeSource()
	src.ipErr = errProbe

	_, err := Collect(context.Background(), src, Options{Paths: []string{"/"}, PublicIP: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, errProbe)
	assert.Contains(t, err.Error(), "public ip lookup")
}

func TestUsedSaturates(t *testing.T) {
	assert.Equal(t, uint64(0), DiskUsage{Total: 10, Available: 20}.Used())
	assert.Equal(t, uint64(0), MemoryUsage{Total: 10, Available: 20}.Used())
	assert.Equal(t, uint64(4), MemoryUsage{Total: 10, Available: 6}.Used())
}
