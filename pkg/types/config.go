package types

import "errors"

// Config holds the runtime settings for the wiki: where the store file lives,
// where the web server listens, and whether pages require a login.
type Config struct {
	DBFile     string `json:"db_file" yaml:"db_file"`
	ListenAddr string `json:"listen_addr" yaml:"listen_addr"`
	SiteTitle  string `json:"site_title" yaml:"site_title"`
	Private    bool   `json:"private" yaml:"private"`
	Debug      bool   `json:"debug" yaml:"debug"`
}

// Config validation errors.
var (
	ErrDBFileEmpty     = errors.New("db_file must not be empty")
	ErrListenAddrEmpty = errors.New("listen_addr must not be empty")
)

// Defaults applied by WithDefaults when a field is unset.
const (
	DefaultDBFile     = "wiki.db"
	DefaultListenAddr = ":5000"
	DefaultSiteTitle  = "Tome"
)

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.DBFile == "" {
		return ErrDBFileEmpty
	}
	if c.ListenAddr == "" {
		return ErrListenAddrEmpty
	}
	return nil
}

// WithDefaults returns a copy of the Config with empty fields filled in.
func (c Config) WithDefaults() Config {
	if c.DBFile == "" {
		c.DBFile = DefaultDBFile
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.SiteTitle == "" {
		c.SiteTitle = DefaultSiteTitle
	}
	return c
}
