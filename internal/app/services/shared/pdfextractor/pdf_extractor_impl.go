package pdfextractor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

const (
	minBaselineTolerance    = 1.0
	baselineToleranceRatio  = 0.3
	fallbackGlyphWidthRatio = 0.5
)

var (
	errEmptyDocument = errors.New("document is empty")
	errNoPages       = errors.New("document has no pages")
)

// documentSource is the part of a PDF reader the extractor needs: the page
// count and, per 1-based page number, its text fragments in reading order.
type documentSource interface {
	NumPage() int
	PageFragments(pageNumber int) ([]string, error)
}

type opener func(data []byte) (documentSource, error)

type pdfExtractor struct {
	Log  *zap.Logger
	open opener
}

func NewPDFExtractor(logger *zap.Logger) contracts.TextExtractor {
	return &pdfExtractor{
		Log:  logger,
		open: openLedongthucDocument,
	}
}

// ExtractText joins each page's fragments with single spaces and terminates
// every page with a newline.
func (e *pdfExtractor) ExtractText(ctx context.Context, document []byte) (text string, err error) {
	if len(document) == 0 {
		return "", exceptions.ErrUnreadableDocument(errEmptyDocument)
	}

	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = exceptions.ErrUnreadableDocument(fmt.Errorf("pdf reader panicked: %v", rec))
		}
	}()

	source, err := e.open(document)
	if err != nil {
		return "", exceptions.ErrUnreadableDocument(err)
	}

	pageCount := source.NumPage()
	if pageCount <= 0 {
		return "", exceptions.ErrUnreadableDocument(errNoPages)
	}

	var builder strings.Builder
	for pageNumber := 1; pageNumber <= pageCount; pageNumber++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		fragments, err := source.PageFragments(pageNumber)
		if err != nil {
			return "", exceptions.ErrUnreadableDocument(fmt.Errorf("page %d: %w", pageNumber, err))
		}
		builder.WriteString(strings.Join(fragments, " "))
		builder.WriteString("\n")
	}

	text = builder.String()
	e.Log.Debug("pdfExtractor.ExtractText succeeded",
		zap.Int(constvars.LoggingPageCountKey, pageCount),
		zap.Int(constvars.LoggingTextLengthKey, len(text)),
	)
	return text, nil
}

type ledongthucDocument struct {
	reader *pdf.Reader
}

func openLedongthucDocument(data []byte) (documentSource, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return &ledongthucDocument{reader: reader}, nil
}

func (d *ledongthucDocument) NumPage() int {
	return d.reader.NumPage()
}

// PageFragments returns the page's text runs in content order. A run ends
// where the baseline moves or the next glyph starts more than a glyph width
// away from the previous one.
func (d *ledongthucDocument) PageFragments(pageNumber int) ([]string, error) {
	page := d.reader.Page(pageNumber)
	if page.V.IsNull() {
		return nil, nil
	}
	return groupGlyphs(page.Content().Text), nil
}

func groupGlyphs(glyphs []pdf.Text) []string {
	var fragments []string
	var current strings.Builder
	flush := func() {
		if fragment := strings.TrimSpace(current.String()); fragment != "" {
			fragments = append(fragments, fragment)
		}
		current.Reset()
	}

	var previous *pdf.Text
	for i := range glyphs {
		glyph := &glyphs[i]
		// TJ arrays are closed with a synthetic newline glyph.
		if glyph.S == "\n" {
			continue
		}
		if previous != nil && startsNewRun(*previous, *glyph) {
			flush()
		}
		current.WriteString(glyph.S)
		previous = glyph
	}
	flush()
	return fragments
}

func startsNewRun(previous, next pdf.Text) bool {
	baselineTolerance := math.Max(minBaselineTolerance, math.Max(previous.FontSize, next.FontSize)*baselineToleranceRatio)
	if math.Abs(next.Y-previous.Y) > baselineTolerance {
		return true
	}

	// Fonts without a width table report zero-width glyphs.
	glyphWidth := previous.W
	if glyphWidth <= 0 {
		glyphWidth = previous.FontSize * fallbackGlyphWidthRatio
	}
	gap := next.X - (previous.X + previous.W)
	return gap > glyphWidth || gap < -glyphWidth
}
