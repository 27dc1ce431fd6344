// Package auth gates SSH sessions on an authorized_keys style allowlist.
package auth

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"strings"

	"golang.org/x/crypto/ssh"
)

// ErrAllowlistNotFound is returned when the allowlist file doesn't exist.
var ErrAllowlistNotFound = errors.New("allowlist file not found")

// Allowlist is a set of SSH public keys permitted to open sessions.
type Allowlist struct {
	keys []ssh.PublicKey
}

// Load reads an OpenSSH authorized_keys format file. Empty lines, comments
// and unparseable lines are skipped.
func Load(path string) (*Allowlist, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAllowlistNotFound
		}
		return nil, err
	}
	defer file.Close()

	al := &Allowlist{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		pubKey, _, _, _, err := ssh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			continue
		}
		al.keys = append(al.keys, pubKey)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return al, nil
}

// Contains reports whether key is in the allowlist, comparing marshaled
// key bytes.
func (a *Allowlist) Contains(key ssh.PublicKey) bool {
	if key == nil {
		return false
	}

	keyBytes := key.Marshal()
	for _, allowed := range a.keys {
		if bytes.Equal(keyBytes, allowed.Marshal()) {
			return true
		}
	}
	return false
}

// Len reports the number of keys loaded.
func (a *Allowlist) Len() int {
	return len(a.keys)
}

// CreateEmpty writes an allowlist file containing only explanatory comments.
func CreateEmpty(path string) error {
	content := `# SSH Public Key Allowlist
# Add one public key per line in OpenSSH authorized_keys format.
# Example:
# ssh-ed25519 AAAAC3NzaC1lZDI1NTE5AAAAIExample... user@host
`
	return os.WriteFile(path, []byte(content), 0644)
}
