// Package importer turns uploaded ledger files into transaction create
// parameters.
package importer

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/nirbeaver/property-management/internal/encoding"
	"github.com/nirbeaver/property-management/internal/importer/ledger"
	"github.com/nirbeaver/property-management/internal/transaction"
)

// Format names a supported import file format.
type Format string

const (
	FormatLedger Format = "ledger"
)

// Importer parses one file format into create parameters.
type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}

// PropertyResolver maps a property name from the file to its id.
type PropertyResolver func(name string) (uuid.UUID, bool)

// Service dispatches uploads to the right parser, normalizing the input
// to UTF-8 first.
type Service struct {
	ledgerImporter Importer
}

// NewService creates an import service. Rows naming an unknown property
// fall back to fallbackProperty.
func NewService(fallbackProperty uuid.UUID, resolve PropertyResolver) *Service {
	return &Service{
		ledgerImporter: ledger.New(fallbackProperty, ledger.PropertyResolver(resolve)),
	}
}

// Import parses r in the given format.
func (s *Service) Import(format Format, r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("normalizing input: %w", err)
	}

	switch format {
	case FormatLedger:
		return s.ledgerImporter.Parse(utf8r)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
