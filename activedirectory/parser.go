package activedirectory

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Base64Suffix tags values exported with the "key:: value" form. The payload is kept as-is.
const Base64Suffix = " (base64 encoded)"

const (
	base64Separator = ":: "
	plainSeparator  = ": "
)

var (
	ErrMalformedBlock = errors.New("malformed block")
	ErrEmptyBlock     = errors.New("block contains no attributes")
)

var (
	// a value wrapped onto the next line leaves "key: " followed by the line break
	wrappedValue  = regexp.MustCompile(`: \r?\n`)
	blankLine     = regexp.MustCompile(`\r?\n\r?\n`)
	lineSeparator = regexp.MustCompile(`\r?\n`)
)

// Parser handles conversion of raw export blocks to Records.
type Parser struct {
	translator KeyTranslator
	logger     hclog.Logger
}

// NewParser builds a parser. A nil translator leaves keys untouched.
func NewParser(translator KeyTranslator, logger hclog.Logger) *Parser {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Parser{
		translator: translator,
		logger:     logger,
	}
}

// DecodeLine splits one attribute line into key and value. ok is false for lines
// carrying no recognised separator or an empty value.
func DecodeLine(line string) (key, value string, ok bool) {
	if k, v, found := strings.Cut(line, base64Separator); found {
		v = strings.TrimSpace(v)
		if v == "" {
			return "", "", false
		}
		return k, v + Base64Suffix, true
	}

	if k, v, found := strings.Cut(line, plainSeparator); found {
		v = strings.TrimSpace(v)
		if v == "" {
			return "", "", false
		}
		return k, v, true
	}

	return "", "", false
}

// DecodeLine decodes a line and passes the key through the parser's translator.
func (p *Parser) DecodeLine(line string) (key, value string, ok bool) {
	key, value, ok = DecodeLine(line)
	if ok && p.translator != nil {
		key = p.translator.Translate(key)
	}
	return key, value, ok
}

// SplitBlocks rejoins wrapped values across the whole input and then splits it
// on blank lines. Blocks are trimmed and empty ones dropped.
func SplitBlocks(data string) []string {
	joined := wrappedValue.ReplaceAllString(data, plainSeparator)

	var blocks []string
	for _, block := range blankLine.Split(joined, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// ParseBlock folds every line of block into a new Record.
func (p *Parser) ParseBlock(block string) (*Record, error) {
	record := NewRecord()
	for _, line := range lineSeparator.Split(block, -1) {
		key, value, ok := p.DecodeLine(line)
		if !ok {
			continue
		}
		record.Fold(key, value)
	}

	if record.Len() == 0 {
		return nil, ErrEmptyBlock
	}
	return record, nil
}

// Parse splits data into blocks and folds each of them.
func (p *Parser) Parse(data string) []*ParseResult {
	return p.ParseBlocks(SplitBlocks(data))
}

// ParseBlocks processes multiple blocks and returns results for each.
// A block that fails to fold is reported in its result and does not stop the others.
func (p *Parser) ParseBlocks(blocks []string) []*ParseResult {
	results := make([]*ParseResult, 0, len(blocks))

	for _, block := range blocks {
		result := p.parseGuarded(block)
		if result.Error != nil {
			p.logger.Warn("failed to parse block", "error", result.Error, "block", block)
		}
		results = append(results, result)
	}

	return results
}

func (p *Parser) parseGuarded(block string) (result *ParseResult) {
	result = &ParseResult{Block: block}

	defer func() {
		if r := recover(); r != nil {
			result.Record = nil
			result.Error = fmt.Errorf("%w: %v", ErrMalformedBlock, r)
		}
	}()

	record, err := p.ParseBlock(block)
	if err != nil {
		result.Error = fmt.Errorf("%w: %w", ErrMalformedBlock, err)
		return result
	}
	result.Record = record
	return result
}
