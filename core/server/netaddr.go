package server

import (
	"net"
)

// Loopback is returned when the outward-facing address cannot be determined.
const Loopback = "127.0.0.1"

// probeAddr is only used to select a route. UDP dial sends no packets.
const probeAddr = "8.8.8.8:80"

// LocalIP returns the address other devices on the network can reach this
// machine at. It never fails: any probing error yields Loopback.
func LocalIP() string {
	return localIPVia(probeAddr)
}

func localIPVia(addr string) string {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return Loopback
	}
	defer conn.Close()

	local, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok || local.IP == nil || local.IP.IsUnspecified() {
		return Loopback
	}
	return local.IP.String()
}
