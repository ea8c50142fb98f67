// internal/config/model.go
//
// Typed configuration model for Gestularia.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                        – dotenv values,
//   • `conf/global.yaml`                     – primary static file,
//   • `GEST_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`; Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.  RootDomain is the apex the platform
// itself answers on; every subdomain under it is a tenant site.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	RootDomain string `koanf:"root_domain" validate:"required,fqdn"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Database section
//

// Database holds the control-plane DSN.
type Database struct {
	DSN string `koanf:"dsn" validate:"required"`
}

//
// Auth section
//

// Auth holds the session-cookie signing key.  Rotating it signs every
// user out; there is no key ring.
type Auth struct {
	SessionKey string `koanf:"session_key" validate:"required,min=32"`
}

//
// Cache section
//

// Cache tunes the in-memory site-record cache.  Zero values fall back
// to the package defaults in internal/tenant.
type Cache struct {
	IdleTTLMin int `koanf:"idle_ttl_min"`
	MaxEntries int `koanf:"max_entries"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.  The loader
// discovers `Root` (repo root or GEST_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // GEST_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Auth     Auth     `koanf:"auth"`
	Cache    Cache    `koanf:"cache"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
