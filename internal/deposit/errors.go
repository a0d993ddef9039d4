package deposit

import "errors"

var (
	// ErrAuthRequired means the request carried an empty auth token.
	ErrAuthRequired = errors.New("auth token is required")
	// ErrProofKeyRequired means the request carried an empty proof key.
	ErrProofKeyRequired = errors.New("proof key is required")
	// ErrProofKeyFormat means strict proof-key checking is enabled and the
	// proof key is not a hex-encoded secp256k1 public key.
	ErrProofKeyFormat = errors.New("proof key is not a valid public key")
	// ErrIdentifierConflict means identifier allocation kept colliding with
	// existing sessions after the bounded number of retries.
	ErrIdentifierConflict = errors.New("could not allocate a unique session identifier")
	// ErrStoreUnavailable means the session store rejected the write for a
	// reason other than a duplicate identifier. Nothing was persisted; the
	// whole request is safe to retry.
	ErrStoreUnavailable = errors.New("session store unavailable")
)
