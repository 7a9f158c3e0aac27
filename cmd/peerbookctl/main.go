package main

import (
	"flag"
	"fmt"
	"net/netip"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/peerbook/internal/addressbook"
	"github.com/danmuck/peerbook/internal/collaborator"
	"github.com/danmuck/peerbook/internal/logging"
)

func main() {
	configPath := flag.String("config", defaultConfigPath, "path to peerbookctl config file")
	dir := flag.String("dir", "", "address book directory (overrides config)")
	name := flag.String("name", "", "load a single collaborator by name")
	write := flag.Bool("write", false, "write a sample record and exit")
	flag.Parse()

	logging.ConfigureRuntime()

	if err := run(*configPath, *dir, *name, *write); err != nil {
		fmt.Fprintf(os.Stderr, "peerbookctl: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, dir string, name string, write bool) error {
	cfg, err := loadFileConfig(configPath)
	if err != nil {
		return err
	}
	if dir != "" {
		cfg.AddressBookDir = dir
	}
	store := addressbook.NewStore(cfg.AddressBookDir)

	switch {
	case write:
		return writeSample(store)
	case name != "":
		return showOne(store, name)
	default:
		return showAll(store)
	}
}

func showOne(store *addressbook.Store, name string) error {
	rec, err := store.Load(name)
	if err != nil {
		return err
	}
	fmt.Print(collaborator.Encode(rec))
	return nil
}

func showAll(store *addressbook.Store) error {
	records, errs, err := store.LoadAll()
	if err != nil {
		return err
	}
	for _, e := range errs {
		log.Warn().Err(e).Msg("record error")
	}
	log.Info().Int("records", len(records)).Int("errors", len(errs)).Msg("address book loaded")
	for _, rec := range records {
		fmt.Print(collaborator.Encode(rec))
		fmt.Println()
	}
	return nil
}

func writeSample(store *addressbook.Store) error {
	rec := collaborator.Record{
		UserName: "bob",
		UserSaltList: []collaborator.Uint128{
			{Lo: 0x123456789abcdef0},
			{Lo: 0xabcdef0123456789},
		},
		IPv4Addresses: []netip.Addr{
			netip.MustParseAddr("192.168.1.1"),
			netip.MustParseAddr("10.0.0.1"),
		},
		IPv6Addresses: []netip.Addr{
			netip.MustParseAddr("fe80::1"),
			netip.MustParseAddr("::1"),
		},
		GPGKeyPublic:       "-----BEGIN PGP PUBLIC KEY BLOCK----- ...",
		SyncInterval:       300,
		UpdatedAtTimestamp: 1728308000,
	}
	if err := store.Save(rec); err != nil {
		return err
	}
	log.Info().Str("path", store.Path(rec.UserName)).Msg("sample record written")
	return nil
}
