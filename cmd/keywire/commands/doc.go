// Package commands implements the keywire CLI: identity initialisation,
// fingerprints, prekey management and bundle export/inspection.
package commands
