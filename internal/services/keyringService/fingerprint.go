package keyringservice

import (
	"fmt"

	"golang.org/x/crypto/ssh"
)

// Fingerprint describes the public half of a managed key.
type Fingerprint struct {
	// Type is the key algorithm as it appears on the wire, e.g. "ssh-ed25519".
	Type string
	// SHA256 is the OpenSSH-style fingerprint, e.g. "SHA256:...".
	SHA256 string
	// Comment is whatever trails the key material, usually a name or email.
	Comment string
}

// ReadFingerprint parses name's public key file and returns its fingerprint.
// The key material itself is never validated beyond what parsing requires.
func (r Keyring) ReadFingerprint(name string) (Fingerprint, error) {
	data, err := r.ReadPublicKey(name)
	if err != nil {
		return Fingerprint{}, err
	}

	pub, comment, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("failed to parse public key for %s: %w", name, err)
	}

	return Fingerprint{
		Type:    pub.Type(),
		SHA256:  ssh.FingerprintSHA256(pub),
		Comment: comment,
	}, nil
}
