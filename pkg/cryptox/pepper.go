package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PepperSize is the number of random bytes in a generated pepper.
const PepperSize = 32

// LoadOrGeneratePepper loads the pepper from file, generating and saving a
// new one when the file does not exist yet.
//
// Losing or changing the pepper makes every stored digest unverifiable, so
// the file must be backed up alongside the database.
func LoadOrGeneratePepper(file string) ([]byte, error) {
	if strings.TrimSpace(file) == "" {
		return nil, errors.New("cryptox: empty pepper path")
	}

	file = filepath.Clean(file)
	if err := os.MkdirAll(filepath.Dir(file), 0750); err != nil {
		return nil, fmt.Errorf("cryptox: create pepper dir: %w", err)
	}

	data, err := os.ReadFile(file)
	switch {
	case err == nil:
		pepper := strings.TrimSpace(string(data))
		if pepper == "" {
			return nil, fmt.Errorf("cryptox: pepper file %q is empty", file)
		}
		return []byte(pepper), nil
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("cryptox: read pepper: %w", err)
	}

	buf := make([]byte, PepperSize)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("cryptox: generate pepper: %w", err)
	}
	pepper := base64.RawURLEncoding.EncodeToString(buf)

	// O_EXCL so two processes starting together cannot both write.
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return LoadOrGeneratePepper(file)
		}
		return nil, fmt.Errorf("cryptox: write pepper: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(pepper); err != nil {
		return nil, fmt.Errorf("cryptox: write pepper: %w", err)
	}
	return []byte(pepper), nil
}
