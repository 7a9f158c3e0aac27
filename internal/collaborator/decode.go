package collaborator

import (
	"fmt"
	"net/netip"

	"github.com/danmuck/peerbook/internal/tomltree"
)

// DecodeOne decodes a single collaborator table, fail-fast. The first hard
// field failure aborts the decode and no record is returned.
//
// Malformed elements inside the optional address arrays are the one soft
// case: they are skipped, never abort the decode, and come back in the
// second result so the caller can report them. An address array left with
// zero valid elements decodes to nil, same as an absent key.
func DecodeOne(root tomltree.Value) (Record, []error, error) {
	if !root.IsTable() {
		return Record{}, nil, ErrNotTable
	}

	userName, err := extractString(root, keyUserName)
	if err != nil {
		return Record{}, nil, err
	}

	saltList, err := extractSaltList(root, keyUserSaltList)
	if err != nil {
		return Record{}, nil, err
	}

	var soft []error

	ipv4, softV4, err := extractAddrList(root, keyIPv4Addresses, familyIPv4)
	if err != nil {
		return Record{}, nil, err
	}
	soft = append(soft, softV4...)

	ipv6, softV6, err := extractAddrList(root, keyIPv6Addresses, familyIPv6)
	if err != nil {
		return Record{}, nil, err
	}
	soft = append(soft, softV6...)

	gpgKey, err := extractString(root, keyGPGKeyPublic)
	if err != nil {
		return Record{}, nil, err
	}

	syncInterval, err := extractUint64(root, keySyncInterval)
	if err != nil {
		return Record{}, nil, err
	}

	updatedAt, err := extractUint64(root, keyUpdatedAtTimestamp)
	if err != nil {
		return Record{}, nil, err
	}

	return Record{
		UserName:           userName,
		UserSaltList:       saltList,
		IPv4Addresses:      ipv4,
		IPv6Addresses:      ipv6,
		GPGKeyPublic:       gpgKey,
		SyncInterval:       syncInterval,
		UpdatedAtTimestamp: updatedAt,
	}, soft, nil
}

func extractString(table tomltree.Value, key string) (string, error) {
	node, ok := table.Get(key)
	if !ok {
		return "", fieldErr(key, ErrMissingField, "")
	}
	s, ok := node.AsString()
	if !ok {
		return "", fieldErr(key, ErrWrongFieldType, fmt.Sprintf("expected string, got %s", node.Kind()))
	}
	return s, nil
}

// extractSaltList is fail-fast: a non-string element or an unparsable hex
// string aborts the whole field.
func extractSaltList(table tomltree.Value, key string) ([]Uint128, error) {
	node, ok := table.Get(key)
	if !ok {
		return nil, fieldErr(key, ErrMissingField, "")
	}
	elems, ok := node.AsArray()
	if !ok {
		return nil, fieldErr(key, ErrWrongFieldType, fmt.Sprintf("expected array, got %s", node.Kind()))
	}
	salts := make([]Uint128, 0, len(elems))
	for i, elem := range elems {
		s, ok := elem.AsString()
		if !ok {
			return nil, fieldErr(key, ErrWrongFieldType,
				fmt.Sprintf("element %d: expected string, got %s", i, elem.Kind()))
		}
		salt, err := ParseUint128Hex(s)
		if err != nil {
			return nil, fieldErr(key, ErrInvalidHex, fmt.Sprintf("element %d: %v", i, err))
		}
		salts = append(salts, salt)
	}
	return salts, nil
}

type addrFamily int

const (
	familyIPv4 addrFamily = iota
	familyIPv6
)

func (f addrFamily) matches(addr netip.Addr) bool {
	if f == familyIPv4 {
		return addr.Is4()
	}
	return addr.Is6() && !addr.Is4In6()
}

// extractAddrList decodes an optional address array. An absent key is not
// an error; a present non-array key is. Elements that are not strings or do
// not parse in the requested family are skipped and reported as soft
// errors. Zero surviving elements collapse to nil.
func extractAddrList(table tomltree.Value, key string, family addrFamily) ([]netip.Addr, []error, error) {
	node, ok := table.Get(key)
	if !ok {
		return nil, nil, nil
	}
	elems, ok := node.AsArray()
	if !ok {
		return nil, nil, fieldErr(key, ErrWrongFieldType, fmt.Sprintf("expected array, got %s", node.Kind()))
	}
	var addrs []netip.Addr
	var soft []error
	for i, elem := range elems {
		s, ok := elem.AsString()
		if !ok {
			soft = append(soft, fieldErr(key, ErrInvalidAddress,
				fmt.Sprintf("element %d: expected string, got %s, skipping", i, elem.Kind())))
			continue
		}
		addr, err := netip.ParseAddr(s)
		if err != nil || !family.matches(addr) {
			soft = append(soft, fieldErr(key, ErrInvalidAddress,
				fmt.Sprintf("element %d: %q, skipping", i, s)))
			continue
		}
		addrs = append(addrs, addr)
	}
	if len(addrs) == 0 {
		return nil, soft, nil
	}
	return addrs, soft, nil
}

// extractUint64 accepts an integer node between 0 and MaxInt64 inclusive.
// The upper bound is enforced by the tree's integer type itself.
func extractUint64(table tomltree.Value, key string) (uint64, error) {
	node, ok := table.Get(key)
	if !ok {
		return 0, fieldErr(key, ErrMissingField, "")
	}
	i, ok := node.AsInteger()
	if !ok {
		return 0, fieldErr(key, ErrWrongFieldType, fmt.Sprintf("expected integer, got %s", node.Kind()))
	}
	if i < 0 {
		return 0, fieldErr(key, ErrIntegerRange, fmt.Sprintf("value %d", i))
	}
	return uint64(i), nil
}
