package config

import "time"

// Registry represents the entire user configuration file.
// This stores per-server client registrations and application preferences.
type Registry struct {
	Version     int                `yaml:"version"`
	Servers     map[string]*Server `yaml:"servers,omitempty"` // Keyed by server hostname
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Server represents stored state for a single Mastodon-compatible server.
// This is keyed by the server's hostname in the Registry.
type Server struct {
	ClientID     string    `yaml:"client_id,omitempty"`     // OAuth app client id from one-time registration
	ClientSecret string    `yaml:"client_secret,omitempty"` // OAuth app client secret
	LastUsername string    `yaml:"last_username,omitempty"` // Pre-filled on the login screen
	LastLogin    time.Time `yaml:"last_login,omitempty"`    // Last successful login time
}

// Registered reports whether this server already has an app registration.
func (s *Server) Registered() bool {
	return s.ClientID != "" && s.ClientSecret != ""
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	TerminalAddr string `yaml:"terminal_addr,omitempty"` // Default serial-bridge address (host:port)
	Wide         bool   `yaml:"wide"`                    // 132-column mode instead of 80
	FetchLimit   int    `yaml:"fetch_limit"`             // Posts per timeline fetch
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: 1,
		Servers: make(map[string]*Server),
		Preferences: &Preferences{
			FetchLimit: 20,
		},
	}
}

// GetServer retrieves server state by hostname.
// Returns nil if the server doesn't exist in the registry.
func (r *Registry) GetServer(host string) *Server {
	return r.Servers[host]
}

// EnsureServer ensures a server entry exists in the registry.
// If the server doesn't exist, creates a new entry with default values.
// Returns the server entry (existing or newly created).
func (r *Registry) EnsureServer(host string) *Server {
	if r.Servers == nil {
		r.Servers = make(map[string]*Server)
	}

	if server, exists := r.Servers[host]; exists {
		return server
	}

	server := &Server{}
	r.Servers[host] = server
	return server
}

// SetClientCredentials stores the one-time app registration for a server.
func (r *Registry) SetClientCredentials(host, clientID, clientSecret string) {
	server := r.EnsureServer(host)
	server.ClientID = clientID
	server.ClientSecret = clientSecret
}

// UpdateLastLogin records a successful login for a server.
func (r *Registry) UpdateLastLogin(host, username string) {
	server := r.EnsureServer(host)
	server.LastUsername = username
	server.LastLogin = time.Now()
}
