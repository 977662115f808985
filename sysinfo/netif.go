package sysinfo

import (
	"net/netip"
	"strings"
)

// activeInterface builds an Interface from raw interface data. It reports
// false when the interface is down or has no external IPv4 address left
// after filtering.
func activeInterface(name string, flags []string, addrs []string) (Interface, bool) {
	up := false
	for _, f := range flags {
		if strings.EqualFold(f, "up") {
			up = true
			break
		}
	}
	if !up {
		return Interface{}, false
	}

	external := externalIPv4(addrs)
	if len(external) == 0 {
		return Interface{}, false
	}
	return Interface{Name: name, Addresses: external}, true
}

// externalIPv4 keeps the IPv4 entries of addrs that are not loopback,
// stripping any prefix length. Entries may be "a.b.c.d/n" or bare addresses;
// unparsable ones are skipped.
func externalIPv4(addrs []string) []string {
	var out []string
	for _, raw := range addrs {
		addr, ok := parseAddr(raw)
		if !ok {
			continue
		}
		if !addr.Is4() || addr.IsLoopback() {
			continue
		}
		out = append(out, addr.String())
	}
	return out
}

func parseAddr(raw string) (netip.Addr, bool) {
	if prefix, err := netip.ParsePrefix(raw); err == nil {
		return prefix.Addr(), true
	}
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr, true
}
