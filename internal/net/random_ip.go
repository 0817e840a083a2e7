package net

import (
	"crypto/rand"
	"net"
)

// RandV4 returns a pseudo-random unicast IPv4 string for X-Forwarded-For.
// Private, loopback and multicast first octets are avoided.
func RandV4() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	switch {
	case b[0] == 0, b[0] == 10, b[0] == 127, b[0] >= 224:
		b[0] = 11 + b[0]%100
	}
	return net.IPv4(b[0], b[1], b[2], b[3]).String()
}
