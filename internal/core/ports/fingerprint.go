package ports

import "go.trai.ch/runviz/internal/core/domain"

//go:generate mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks

// Fingerprinter computes a comparable token over a set of files. The
// token is stable under reordering of the set and changes whenever any
// file's change-indicators (size, modification time) change.
type Fingerprinter interface {
	Fingerprint(files []string) (domain.Fingerprint, error)
}
