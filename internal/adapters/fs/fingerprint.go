// Package fs provides filesystem-backed adapters: fingerprinting of
// the checkpoint files that back a loaded dataset.
package fs

import (
	"fmt"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"

	"go.trai.ch/runviz/internal/core/domain"
	"go.trai.ch/runviz/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter summarizes a file set by hashing each file's identity
// and change-indicators (size, modification time). Content is never
// read; a stat pass is cheap enough to run on every staleness check.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint computes the token for the given file set. The input
// order does not matter: entries are sorted by path before hashing, so
// equal sets always yield equal tokens. A file that cannot be stat'ed
// is an error; the caller decides whether a vanished backing file is
// fatal.
func (f *Fingerprinter) Fingerprint(files []string) (domain.Fingerprint, error) {
	sorted := make([]string, len(files))
	copy(sorted, files)
	sort.Strings(sorted)

	hasher := xxhash.New()
	for _, path := range sorted {
		info, err := os.Stat(path)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to stat backing file"), "path", path)
		}

		_, _ = hasher.WriteString(path)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(fmt.Sprintf("%d", info.Size()))
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(fmt.Sprintf("%d", info.ModTime().UnixNano()))
		_, _ = hasher.Write([]byte{0})
	}

	return domain.Fingerprint(fmt.Sprintf("%016x", hasher.Sum64())), nil
}
