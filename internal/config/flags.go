// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Session Foundation

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-relay relay base URL in format [host]:[port]
//	-listen dev relay listen address in format [host]:[port]
//	-owner hex-encoded owner identity
//	-identity-secret hex-encoded identity secret
//	-backend snapshot store backend (sqlite|badger)
//	-d snapshot database DSN (sqlite file path)
//	-badger-dir badger value-log directory
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval background sync interval (e.g., "30s", "5m")
func ParseFlags() *StructuredConfig {
	var relayAddress, listenAddress NetAddress
	var owner string
	var identitySecret string
	var backend string
	var databaseDSN string
	var badgerDir string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var syncInterval time.Duration

	flag.Var(&relayAddress, "relay", "Relay net address host:port")
	flag.Var(&listenAddress, "listen", "Dev relay listen address host:port")
	flag.StringVar(&owner, "owner", "", "Hex-encoded owner identity")
	flag.StringVar(&identitySecret, "identity-secret", "", "Hex-encoded identity secret")
	flag.StringVar(&backend, "backend", "", "Snapshot store backend (sqlite|badger)")
	flag.StringVar(&databaseDSN, "d", "", "Snapshot database DSN")
	flag.StringVar(&badgerDir, "badger-dir", "", "Badger directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 30s, 5m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Owner:             owner,
			IdentitySecretHex: identitySecret,
		},
		Storage: Storage{
			Backend:   backend,
			DSN:       databaseDSN,
			BadgerDir: badgerDir,
		},
		Relay: Relay{
			HTTPAddress:    relayAddress.String(),
			ListenAddress:  listenAddress.String(),
			RequestTimeout: requestTimeout,
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
