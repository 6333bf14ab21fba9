package urls

// Documentation URLs for guides and troubleshooting
// All URLs point to the documentation site at https://muurk.github.io/fedivt/

// GettingStarted is the quick start guide for new users, covering
// server setup, app registration, and the first login.
const GettingStarted = "https://muurk.github.io/fedivt/getting-started/"

// TerminalSetup is the guide for wiring a real VT-100 family terminal,
// covering serial bridges, baud rates, and newline mode quirks.
const TerminalSetup = "https://muurk.github.io/fedivt/terminal-setup/"

// TroubleshootingGuide provides solutions to common issues encountered
// with servers, logins, and terminal links.
const TroubleshootingGuide = "https://muurk.github.io/fedivt/troubleshooting/"

// APICompatibility documents which Mastodon-compatible server software
// fedivt is known to work with, and the API endpoints it relies on.
const APICompatibility = "https://muurk.github.io/fedivt/api-compatibility/"
