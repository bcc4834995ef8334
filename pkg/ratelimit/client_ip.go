package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// IPResolver, rate limit anahtarı olarak kullanılan client IP'sini belirler.
//
// X-Forwarded-For ve X-Real-IP client tarafından serbestçe yazılabilir;
// bu yüzden sadece bağlantı güvenilir bir proxy'den geliyorsa okunur.
// Aksi halde RemoteAddr kullanılır. nil *IPResolver hiçbir proxy'ye güvenmez.
type IPResolver struct {
	trusted []*net.IPNet
}

// NewIPResolver, CIDR ("10.0.0.0/8") veya tek adres ("127.0.0.1") listesinden
// resolver oluşturur. Boş liste forwarding header'larını tamamen yok sayar.
func NewIPResolver(trustedProxies []string) (*IPResolver, error) {
	r := &IPResolver{}
	for _, entry := range trustedProxies {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				return nil, fmt.Errorf("invalid trusted proxy %q", entry)
			}
			bits := 128
			if ip.To4() != nil {
				ip = ip.To4()
				bits = 32
			}
			r.trusted = append(r.trusted, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}

		_, network, err := net.ParseCIDR(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
		}
		r.trusted = append(r.trusted, network)
	}
	return r, nil
}

// ClientIP, request'in gerçek client adresini döner.
//
// RemoteAddr güvenilir proxy ise X-Forwarded-For sağdan sola gezilir ve
// güvenilir olmayan ilk adres seçilir; zincirin soluna client istediğini
// yazabileceği için ilk eleman körü körüne alınmaz. XFF yoksa X-Real-IP
// denenir.
func (r *IPResolver) ClientIP(req *http.Request) string {
	remote := remoteHost(req)
	if !r.isTrusted(remote) {
		return remote
	}

	if xff := req.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if net.ParseIP(hop) == nil {
				break
			}
			if !r.isTrusted(hop) || i == 0 {
				return hop
			}
		}
	}

	if xri := strings.TrimSpace(req.Header.Get("X-Real-IP")); net.ParseIP(xri) != nil {
		return xri
	}

	return remote
}

func (r *IPResolver) isTrusted(addr string) bool {
	if r == nil {
		return false
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, network := range r.trusted {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

func remoteHost(req *http.Request) string {
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
