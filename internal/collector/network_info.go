package collector

import (
	"context"
	"net"
	"strings"

	"github.com/monify-labs/sysinfo/internal/report"
)

// writeNetworkInfo reports the hostname and local addresses
func writeNetworkInfo(ctx context.Context, env *Env, r *report.Report) {
	r.Heading("=== Networking Information ===")

	hostname, err := env.Hostname()
	if err != nil {
		hostname = ""
	}
	r.Linef("Hostname: %s", valueOr(hostname, Unknown))

	if ips := localIPs(ctx, env); len(ips) > 0 {
		r.Linef("Local IP Address: %s", strings.Join(ips, ", "))
	} else {
		r.Line("Local IP Address: Not available")
	}
}

// localIPs retrieves the routable addresses of all interfaces, private
// ranges first
func localIPs(ctx context.Context, env *Env) []string {
	interfaces, err := env.Interfaces(ctx)
	if err != nil {
		env.Log.WithError(err).Debug("Failed to list network interfaces")
		return nil
	}

	var private, public []string
	for _, iface := range interfaces {
		for _, addr := range iface.Addrs {
			// Parse IP from CIDR notation
			ip, _, err := net.ParseCIDR(addr.Addr)
			if err != nil {
				// Try parsing as plain IP
				ip = net.ParseIP(addr.Addr)
			}

			if ip == nil || ip.IsLoopback() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() {
				continue
			}
			if ip.IsPrivate() {
				private = append(private, ip.String())
			} else {
				public = append(public, ip.String())
			}
		}
	}

	return append(private, public...)
}
