package system

import (
	"net"
	"net/netip"
)

// IPv4Addrs lists the IPv4 addresses of the interfaces that are up,
// skipping loopback.
func IPv4Addrs() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		out = append(out, ipv4Of(addrs)...)
	}
	return out, nil
}

func ipv4Of(addrs []net.Addr) []string {
	var out []string
	for _, a := range addrs {
		prefix, err := netip.ParsePrefix(a.String())
		if err != nil {
			continue
		}
		if ip := prefix.Addr(); ip.Is4() && !ip.IsLoopback() {
			out = append(out, ip.String())
		}
	}
	return out
}
