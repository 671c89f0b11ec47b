// Package parser runs the front-end pipeline: section discovery, metadata
// resolution, hierarchy reconstruction, structure classification, identifier
// normalization and uniqueness checking, producing the canonical IR tree.
package parser

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"

	"github.com/specforge/specforge/config"
	"github.com/specforge/specforge/ir"
	"github.com/specforge/specforge/naming"
	"github.com/specforge/specforge/sheet"
)

// Parser is one pipeline instance. Instances share no mutable state, so
// independent documents may be parsed in parallel with independent parsers.
type Parser struct {
	cfg        *config.Config
	fs         afs.Service
	detector   *sheet.Detector
	normalizer *naming.Normalizer
}

// New creates a Parser. A nil config selects the defaults.
func New(cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.DefaultConfig()
	} else {
		cfg.Normalize()
	}
	return &Parser{
		cfg:        cfg,
		fs:         afs.New(),
		detector:   sheet.NewDetector(),
		normalizer: naming.NewNormalizer(cfg.MaxIdentifierLength),
	}
}

// ParseFile reads and parses one source document. An optional second URL
// supplies the shared-header section as a separate document. The sources are
// fully read and released before any parsing happens.
func (p *Parser) ParseFile(ctx context.Context, URL string, sharedURL ...string) (*ir.MessageModel, error) {
	sheets, err := p.readDocument(ctx, URL)
	if err != nil {
		return nil, err
	}
	if len(sharedURL) > 0 && sharedURL[0] != "" {
		shared, err := p.readDocument(ctx, sharedURL[0])
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, shared...)
	}
	return p.ParseSheets(sheets, URL)
}

// readDocument loads a document's bytes and decodes them per extension.
func (p *Parser) readDocument(ctx context.Context, URL string) ([]*sheet.Sheet, error) {
	ext := strings.ToLower(path.Ext(URL))
	switch ext {
	case ".xlsx", ".xlsm", ".csv":
	default:
		return nil, fmt.Errorf("%w: %s", ErrBadFile, URL)
	}
	data, err := p.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadFile, URL, err)
	}
	if ext == ".csv" {
		s, err := sheet.ReadCSV(data, URL)
		if err != nil {
			return nil, err
		}
		return []*sheet.Sheet{s}, nil
	}
	return sheet.ReadWorkbook(data)
}

// ParseSheets runs the full pipeline over already-loaded sheets. On any
// terminal failure no model is returned: the contract is all-or-nothing.
func (p *Parser) ParseSheets(sheets []*sheet.Sheet, sourcePath string) (*ir.MessageModel, error) {
	sections := sheet.Locate(sheets)
	if sections.Primary == nil {
		// Fixed-format documents carry no standard section names; a single
		// unmatched sheet is accepted as the primary candidate.
		if len(sections.Unmatched) == 1 && sections.Secondary == nil && sections.Shared == nil {
			sections.Primary = sections.Unmatched[0]
		} else {
			return nil, fmt.Errorf("%w: expected a %q section in %s",
				ErrMissingSection, sheet.SectionRequest, sourcePath)
		}
	}

	model := &ir.MessageModel{Metadata: p.resolveMetadata(sections, sourcePath)}
	for _, s := range []*sheet.Sheet{sections.Primary, sections.Secondary, sections.Shared} {
		if s == nil {
			continue
		}
		group, err := p.parseSection(s)
		if err != nil {
			return nil, err
		}
		model.AddGroup(group)
	}

	naming.ApplyIdentifiers(model.Groups, p.normalizer)
	if err := naming.CheckUnique(model.Groups); err != nil {
		return nil, err
	}
	return model, nil
}

// parseSection detects the section's layout and builds its field group.
func (p *Parser) parseSection(s *sheet.Sheet) (*ir.FieldGroup, error) {
	switch p.detector.Detect(s) {
	case sheet.LayoutHierarchical:
		cols, err := sheet.MapColumns(s, sheet.HeaderRow, sheet.HierarchicalColumns)
		if err != nil {
			return nil, err
		}
		group, err := p.buildHierarchy(s, cols)
		if err != nil {
			return nil, err
		}
		if err := p.classify(group); err != nil {
			return nil, err
		}
		return group, nil
	case sheet.LayoutFixed:
		return p.parseFixed(s)
	}
	return nil, fmt.Errorf("section %q: %w", s.Name, sheet.ErrAmbiguousLayout)
}
