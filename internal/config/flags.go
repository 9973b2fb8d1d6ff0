// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-driver storage driver (memory, sqlite, postgres)
//	-d database DSN
//	-c/-config json file path with configs
//	-oracle-url embedding oracle base URL
//	-oracle-timeout embedding oracle HTTP timeout
//	-threshold similarity threshold
//	-embedding-dim expected embedding length
//	-inference-timeout embedding extraction timeout
//	-encryption-key-file path to the embedding encryption key
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-stats-interval store statistics refresh interval
//	-log-level log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var driver, databaseDSN, jsonConfigPath string
	var oracleURL string
	var oracleTimeout, inferenceTimeout, requestTimeout, statsInterval time.Duration
	var threshold float64
	var embeddingDim int
	var keyFile, tokenSignKey, tokenIssuer, logLevel string

	fs := flag.NewFlagSet("go-face-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&driver, "driver", "", "Storage driver: memory, sqlite, postgres")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&oracleURL, "oracle-url", "", "Embedding oracle base URL")
	fs.DurationVar(&oracleTimeout, "oracle-timeout", 0, "Embedding oracle HTTP timeout")
	fs.Float64Var(&threshold, "threshold", 0, "Similarity threshold (0..1]")
	fs.IntVar(&embeddingDim, "embedding-dim", 0, "Expected embedding length")
	fs.DurationVar(&inferenceTimeout, "inference-timeout", 0, "Embedding extraction timeout")
	fs.StringVar(&keyFile, "encryption-key-file", "", "Embedding encryption key file")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&statsInterval, "stats-interval", 0, "Store statistics refresh interval")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SimilarityThreshold: threshold,
			EmbeddingDim:        embeddingDim,
			InferenceTimeout:    inferenceTimeout,
			EncryptionKeyFile:   keyFile,
			TokenSignKey:        tokenSignKey,
			TokenIssuer:         tokenIssuer,
			LogLevel:            logLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			OracleURL:      oracleURL,
			RequestTimeout: oracleTimeout,
		},
		Workers: Workers{
			StatsInterval: statsInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
