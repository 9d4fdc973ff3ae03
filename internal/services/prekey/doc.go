// Package prekey allocates, stores and publishes prekeys: sequential
// uint16 ids, fresh keypairs, and the shareable bundle built from a prekey
// and the owner's identity key.
package prekey
