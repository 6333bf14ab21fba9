// Package client talks to a Mastodon-compatible server: one-time app
// registration, password-grant login, timelines, threads, posting, and
// the background streaming listener.
//
// The Client itself is not safe for concurrent use. The session loop is
// single threaded and calls it synchronously; the only concurrent piece
// is StreamListener, which communicates back through an atomic flag.
package client
