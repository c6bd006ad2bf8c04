package system

import (
	"net"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIPv4Of(t *testing.T) {
	addrs := []net.Addr{
		&net.IPNet{IP: net.ParseIP("192.168.4.1"), Mask: net.CIDRMask(24, 32)},
		&net.IPNet{IP: net.ParseIP("fe80::1"), Mask: net.CIDRMask(64, 128)},
		&net.IPNet{IP: net.ParseIP("127.0.0.1"), Mask: net.CIDRMask(8, 32)},
		&net.IPNet{IP: net.ParseIP("10.0.0.7"), Mask: net.CIDRMask(8, 32)},
	}
	want := []string{"192.168.4.1", "10.0.0.7"}
	if diff := cmp.Diff(want, ipv4Of(addrs)); diff != "" {
		t.Errorf("addrs (-want +got):\n%s", diff)
	}
}
