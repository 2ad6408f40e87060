package activedirectory

import (
	"github.com/go-ldap/ldap/v3"
)

// Category is the bucket a parsed record is routed to by its objectClass values.
type Category string

const (
	CategoryUser               Category = "user"
	CategoryOrganizationalUnit Category = "organizationalUnit"
	CategoryComputer           Category = "computer"
	CategoryOther              Category = "other"
)

// KeyTranslator renames attribute keys while lines are decoded.
type KeyTranslator interface {
	Translate(name string) string
}

// Record is one folded directory object. Attributes keep first-seen order; an
// attribute holding a single value is a scalar, more than one is a sequence.
type Record struct {
	entry *ldap.Entry
}

// ParseResult represents the result of folding a single raw block.
// It contains either a record or an error, never both.
type ParseResult struct {
	Record *Record
	Block  string // Always populated for error reporting
	Error  error
}
