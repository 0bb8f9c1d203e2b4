package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty db file returns ErrDBFileEmpty",
			config:  Config{DBFile: "", ListenAddr: ":5000"},
			wantErr: ErrDBFileEmpty,
		},
		{
			name:    "empty listen addr returns ErrListenAddrEmpty",
			config:  Config{DBFile: "wiki.db", ListenAddr: ""},
			wantErr: ErrListenAddrEmpty,
		},
		{
			name:    "valid config",
			config:  Config{DBFile: "wiki.db", ListenAddr: ":5000"},
			wantErr: nil,
		},
		{
			name:    "empty site title is valid",
			config:  Config{DBFile: "wiki.db", ListenAddr: ":5000", SiteTitle: ""},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	if cfg.DBFile != DefaultDBFile {
		t.Fatalf("expected db file %q, got %q", DefaultDBFile, cfg.DBFile)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Fatalf("expected listen addr %q, got %q", DefaultListenAddr, cfg.ListenAddr)
	}
	if cfg.SiteTitle != DefaultSiteTitle {
		t.Fatalf("expected site title %q, got %q", DefaultSiteTitle, cfg.SiteTitle)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaulted config should validate, got %v", err)
	}
}

func TestConfigWithDefaultsKeepsSetFields(t *testing.T) {
	cfg := Config{DBFile: "custom.db", ListenAddr: ":8080", SiteTitle: "Notes", Private: true}.WithDefaults()
	if cfg.DBFile != "custom.db" || cfg.ListenAddr != ":8080" || cfg.SiteTitle != "Notes" {
		t.Fatalf("defaults overwrote set fields: %+v", cfg)
	}
	if !cfg.Private {
		t.Fatal("defaults cleared Private")
	}
}
