package dnsload

import (
	"encoding/binary"
	"math/rand"
	"regexp"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomDomain(t *testing.T) {
	// nolint:gosec
	rnd := rand.New(rand.NewSource(1))
	pattern := regexp.MustCompile(`^[a-z]{8}\.com$`)

	for i := 0; i < 100; i++ {
		domain := RandomDomain(rnd)
		assert.Regexp(t, pattern, domain)
	}
}

func TestBuildQuery_layout(t *testing.T) {
	// nolint:gosec
	rnd := rand.New(rand.NewSource(1))
	domain := "abcdefgh.com"

	packet := BuildQuery(rnd, domain)

	require.Len(t, packet, QueryHeaderSize+len(domain)+2+QueryFooterSize)

	assert.EqualValues(t, 0x0100, binary.BigEndian.Uint16(packet[2:4]), "flags")
	assert.EqualValues(t, 1, binary.BigEndian.Uint16(packet[4:6]), "question count")
	assert.EqualValues(t, 0, binary.BigEndian.Uint16(packet[6:8]), "answer count")
	assert.EqualValues(t, 0, binary.BigEndian.Uint16(packet[8:10]), "authority count")
	assert.EqualValues(t, 0, binary.BigEndian.Uint16(packet[10:12]), "additional count")

	assert.EqualValues(t, 8, packet[12], "first label length")
	assert.Equal(t, "abcdefgh", string(packet[13:21]), "first label")
	assert.EqualValues(t, 3, packet[21], "second label length")
	assert.Equal(t, "com", string(packet[22:25]), "second label")
	assert.EqualValues(t, 0, packet[25], "name terminator")

	assert.EqualValues(t, 1, binary.BigEndian.Uint16(packet[26:28]), "question type A")
	assert.EqualValues(t, 1, binary.BigEndian.Uint16(packet[28:30]), "question class IN")
}

func TestBuildQuery_roundTrip(t *testing.T) {
	// nolint:gosec
	rnd := rand.New(rand.NewSource(1))
	domain := RandomDomain(rnd)

	packet := BuildQuery(rnd, domain)

	var msg dns.Msg
	require.NoError(t, msg.Unpack(packet), "generated packet is not a valid DNS message")

	require.Len(t, msg.Question, 1)
	assert.Equal(t, dns.Fqdn(domain), msg.Question[0].Name)
	assert.Equal(t, dns.TypeA, msg.Question[0].Qtype)
	assert.EqualValues(t, dns.ClassINET, msg.Question[0].Qclass)
	assert.Equal(t, binary.BigEndian.Uint16(packet[0:2]), msg.Id)
	assert.True(t, msg.RecursionDesired)
	assert.False(t, msg.Response)
}

func TestBuildQuery_randomTransactionID(t *testing.T) {
	// nolint:gosec
	rnd := rand.New(rand.NewSource(1))
	domain := "abcdefgh.com"

	first := BuildQuery(rnd, domain)

	ids := map[uint16]struct{}{binary.BigEndian.Uint16(first[0:2]): {}}
	for i := 0; i < 20; i++ {
		packet := BuildQuery(rnd, domain)
		ids[binary.BigEndian.Uint16(packet[0:2])] = struct{}{}
		assert.Equal(t, first[2:], packet[2:], "everything after the transaction ID should be identical")
	}

	assert.Greater(t, len(ids), 1, "transaction IDs should differ between packets")
}
