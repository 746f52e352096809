package dnsload

import (
	"encoding/binary"
	"math/rand"
	"strings"
)

const (
	// QueryHeaderSize is the size of the fixed DNS header of generated queries.
	QueryHeaderSize = 12

	// QueryFooterSize is the size of the QTYPE and QCLASS fields of generated queries.
	QueryFooterSize = 4

	// flags of a standard query with recursion desired.
	queryFlags = 0x0100

	qtypeA   = 0x0001
	qclassIN = 0x0001

	domainLabelLength = 8
	domainSuffix      = ".com"
)

const lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"

// RandomDomain generates a fresh synthetic domain name of the form
// <8 random lowercase letters>.com.
func RandomDomain(rnd *rand.Rand) string {
	var sb strings.Builder
	sb.Grow(domainLabelLength + len(domainSuffix))
	for i := 0; i < domainLabelLength; i++ {
		sb.WriteByte(lowercaseLetters[rnd.Intn(len(lowercaseLetters))])
	}
	sb.WriteString(domainSuffix)
	return sb.String()
}

// BuildQuery serializes domain into a wire-format DNS query packet asking for
// the A record of the domain, with a random transaction ID drawn from rnd.
// The domain is expected to consist of dot separated labels of at most 63 bytes
// each, which the fixed generation scheme of RandomDomain guarantees.
func BuildQuery(rnd *rand.Rand, domain string) []byte {
	packet := make([]byte, 0, QueryHeaderSize+len(domain)+2+QueryFooterSize)

	packet = binary.BigEndian.AppendUint16(packet, uint16(rnd.Intn(1<<16)))
	packet = binary.BigEndian.AppendUint16(packet, queryFlags)
	// question count 1, answer, authority and additional counts 0
	packet = binary.BigEndian.AppendUint16(packet, 1)
	packet = append(packet, 0, 0, 0, 0, 0, 0)

	for _, label := range strings.Split(domain, ".") {
		packet = append(packet, byte(len(label)))
		packet = append(packet, label...)
	}
	packet = append(packet, 0)

	packet = binary.BigEndian.AppendUint16(packet, qtypeA)
	packet = binary.BigEndian.AppendUint16(packet, qclassIN)
	return packet
}
