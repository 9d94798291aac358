package models

import (
	"time"
)

// InstallRecord captures one successful feature install. Records are
// kept in install order; that order decides pubspec emission precedence.
type InstallRecord struct {
	// ID is a unique identifier for this install (stable across reloads)
	ID string `yaml:"id"`

	// Feature is the installed feature name
	Feature string `yaml:"feature"`

	// Sequence is the 0-based install position within the project
	Sequence int `yaml:"sequence"`

	// InstalledAt is when the install completed
	InstalledAt time.Time `yaml:"installed_at"`

	// Config is the configuration the feature was installed with
	Config Config `yaml:"config,omitempty"`
}

// NewInstallRecord creates an InstallRecord
func NewInstallRecord(id, feature string, sequence int, config Config) *InstallRecord {
	return &InstallRecord{
		ID:          id,
		Feature:     feature,
		Sequence:    sequence,
		InstalledAt: time.Now().UTC(),
		Config:      config.Clone(),
	}
}
