package converter

import (
	"context"
	"errors"
	"fmt"
	"os"

	"f0oster/adconvert/activedirectory"
	"f0oster/adconvert/activedirectory/formatters"

	"github.com/hashicorp/go-hclog"
)

var ErrReadInput = errors.New("failed to read input file")

// Archiver receives each written category's records after the output file is produced.
type Archiver interface {
	Archive(ctx context.Context, category activedirectory.Category, records []*activedirectory.Record) error
}

type Option func(*Converter)

// WithArchiver attaches an archive step to Run.
func WithArchiver(archiver Archiver) Option {
	return func(c *Converter) {
		c.archiver = archiver
	}
}

// Converter runs one Variant of the block pipeline.
type Converter struct {
	variant    Variant
	parser     *activedirectory.Parser
	classifier *activedirectory.Classifier
	archiver   Archiver
	logger     hclog.Logger
}

func New(variant Variant, logger hclog.Logger, opts ...Option) *Converter {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	logger = logger.Named(variant.Name)

	c := &Converter{
		variant:    variant,
		parser:     activedirectory.NewParser(variant.Translator, logger.Named("parser")),
		classifier: activedirectory.NewClassifier(variant.Categories...),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Converter) Variant() Variant {
	return c.variant
}

// Result holds the records of one conversion partitioned by category.
type Result struct {
	Records map[activedirectory.Category][]*activedirectory.Record
	Skipped []*activedirectory.ParseResult
}

func (r *Result) Category(category activedirectory.Category) []*activedirectory.Record {
	return r.Records[category]
}

func (r *Result) Count(category activedirectory.Category) int {
	return len(r.Records[category])
}

// Convert decodes raw input and runs fold, classify and transform over every block.
func (c *Converter) Convert(raw []byte) (*Result, error) {
	data, err := c.variant.Encoding.Decode(raw)
	if err != nil {
		return nil, err
	}

	result := &Result{Records: make(map[activedirectory.Category][]*activedirectory.Record)}
	for _, parsed := range c.parser.Parse(data) {
		if parsed.Error != nil {
			result.Skipped = append(result.Skipped, parsed)
			continue
		}

		category := c.classifier.Classify(parsed.Record)
		if t, ok := c.variant.Transformers[category]; ok && t != nil {
			t.Transform(parsed.Record)
		}
		result.Records[category] = append(result.Records[category], parsed.Record)
	}

	return result, nil
}

// Render serializes the records of one section.
func (c *Converter) Render(result *Result, section Section) string {
	return formatters.FormatRecords(result.Category(section.Category), section.Filter)
}

// Run converts inputPath into outputPath. Read failures abort the run; write and
// archive failures are logged per section and do not stop the remaining sections.
func (c *Converter) Run(ctx context.Context, inputPath, outputPath string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrReadInput, inputPath, err)
	}

	result, err := c.Convert(raw)
	if err != nil {
		return fmt.Errorf("convert %s: %w", inputPath, err)
	}
	c.logSummary(result)

	if err := c.Write(outputPath, result); err != nil {
		c.logger.Error("output incomplete", "path", outputPath, "error", err)
	}

	if c.archiver != nil {
		c.archive(ctx, result)
	}
	return nil
}

func (c *Converter) logSummary(result *Result) {
	fields := []interface{}{}
	for _, category := range c.variant.Categories {
		fields = append(fields, string(category), result.Count(category))
	}
	fields = append(fields,
		string(activedirectory.CategoryOther), result.Count(activedirectory.CategoryOther),
		"skipped", len(result.Skipped),
	)
	c.logger.Info("records found", fields...)
}

func (c *Converter) archive(ctx context.Context, result *Result) {
	for _, section := range c.variant.Sections {
		records := result.Category(section.Category)
		if len(records) == 0 {
			continue
		}
		if err := c.archiver.Archive(ctx, section.Category, records); err != nil {
			c.logger.Error("failed to archive records", "category", section.Category, "error", err)
			continue
		}
		c.logger.Debug("archived records", "category", section.Category, "count", len(records))
	}
}
