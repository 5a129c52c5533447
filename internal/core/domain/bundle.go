package domain

// Bundle is the flattened emission of a resolved script sequence: the
// concatenated sources plus a content fingerprint for cache busting.
type Bundle struct {
	Scripts     []Script
	Data        []byte
	Fingerprint string
}
