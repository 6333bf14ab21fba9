// Package config provides user configuration management for fedivt.
//
// This package manages a YAML-based configuration file that stores, per
// Mastodon-compatible server, the one-time OAuth app registration and the
// last username used, plus application preferences such as the default
// serial-bridge address and column mode. The configuration follows
// OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/fedivt/config.yaml or $HOME/.config/fedivt/config.yaml
//   - macOS: $HOME/.config/fedivt/config.yaml
//   - Windows: %LOCALAPPDATA%\fedivt\config.yaml
//
// # Security
//
// IMPORTANT: This package NEVER stores account passwords. The stored
// client_id/client_secret identify the application to a server; the user is
// always prompted for their own credentials on the login screen.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	server := registry.EnsureServer("mastodon.example")
//	if !server.Registered() {
//	    // register the app, then:
//	    registry.SetClientCredentials("mastodon.example", id, secret)
//	}
//
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
