// Package collaborator decodes and encodes collaborator identity records.
//
// A record travels as a flat TOML table. Decoding walks the untyped value
// tree field by field instead of relying on a reflection-based binding
// layer, so each field carries its own validation and coercion rules.
package collaborator

import "net/netip"

// Table keys of the on-disk record format.
const (
	keyUserName           = "user_name"
	keyUserSaltList       = "user_salt_list"
	keyIPv4Addresses      = "ipv4_addresses"
	keyIPv6Addresses      = "ipv6_addresses"
	keyGPGKeyPublic       = "gpg_key_public"
	keySyncInterval       = "sync_interval"
	keyUpdatedAtTimestamp = "updated_at_timestamp"
)

// Record is one collaborator's identity and networking profile. A Record
// produced by DecodeOne is fully validated; it is never mutated afterward,
// only re-encoded or discarded.
type Record struct {
	UserName           string
	UserSaltList       []Uint128
	IPv4Addresses      []netip.Addr // nil when the source had no usable list
	IPv6Addresses      []netip.Addr // nil when the source had no usable list
	GPGKeyPublic       string
	SyncInterval       uint64
	UpdatedAtTimestamp uint64
}
