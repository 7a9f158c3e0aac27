package collaborator

import (
	"fmt"
	"net/netip"
	"strings"
)

// Encode renders r as its canonical textual table. Salts emit as lower-case
// "0x"-prefixed hex, one per line; nil address lists omit their key
// entirely; integers emit as bare decimals. Formatting cannot fail, so
// there is no error result; only the eventual file write can.
//
// Limitation: string values are quoted verbatim. A user name or key block
// containing a double quote produces output that will not re-parse.
func Encode(r Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s = \"%s\"\n", keyUserName, r.UserName)

	fmt.Fprintf(&b, "%s = [\n", keyUserSaltList)
	for _, salt := range r.UserSaltList {
		fmt.Fprintf(&b, "    \"%s\",\n", salt)
	}
	b.WriteString("]\n")

	writeAddrList(&b, keyIPv4Addresses, r.IPv4Addresses)
	writeAddrList(&b, keyIPv6Addresses, r.IPv6Addresses)

	fmt.Fprintf(&b, "%s = \"%s\"\n", keyGPGKeyPublic, r.GPGKeyPublic)
	fmt.Fprintf(&b, "%s = %d\n", keySyncInterval, r.SyncInterval)
	fmt.Fprintf(&b, "%s = %d\n", keyUpdatedAtTimestamp, r.UpdatedAtTimestamp)

	return b.String()
}

func writeAddrList(b *strings.Builder, key string, addrs []netip.Addr) {
	if len(addrs) == 0 {
		return
	}
	fmt.Fprintf(b, "%s = [\n", key)
	for _, addr := range addrs {
		fmt.Fprintf(b, "    \"%s\",\n", addr)
	}
	b.WriteString("]\n")
}
