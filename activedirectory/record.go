package activedirectory

import (
	"slices"

	"github.com/go-ldap/ldap/v3"
)

const dnAttribute = "dn"

func NewRecord() *Record {
	return &Record{entry: &ldap.Entry{}}
}

// Entry exposes the record as a go-ldap entry. The returned value shares state with the record.
func (r *Record) Entry() *ldap.Entry {
	return r.entry
}

// DN returns the first value of the dn attribute.
func (r *Record) DN() string {
	return r.entry.DN
}

// Attributes returns the record's attributes in first-seen order.
func (r *Record) Attributes() []*ldap.EntryAttribute {
	return r.entry.Attributes
}

// Names returns the attribute names in first-seen order.
func (r *Record) Names() []string {
	names := make([]string, 0, len(r.entry.Attributes))
	for _, attr := range r.entry.Attributes {
		names = append(names, attr.Name)
	}
	return names
}

func (r *Record) Len() int {
	return len(r.entry.Attributes)
}

func (r *Record) Has(name string) bool {
	return r.attribute(name) != nil
}

// Get returns the first value of name, or "" when absent.
func (r *Record) Get(name string) string {
	return r.entry.GetAttributeValue(name)
}

// Values returns every value of name in insertion order.
func (r *Record) Values(name string) []string {
	attr := r.attribute(name)
	if attr == nil {
		return nil
	}
	return slices.Clone(attr.Values)
}

// IsMultiValued reports whether name was promoted to a sequence.
func (r *Record) IsMultiValued(name string) bool {
	attr := r.attribute(name)
	return attr != nil && len(attr.Values) > 1
}

// Fold adds one decoded line to the record.
//
// A new key becomes a scalar. Re-seeing the same value while the key is still a
// scalar is a no-op, a different value promotes it to a two element sequence, and
// once it is a sequence every further value is appended as is.
func (r *Record) Fold(name, value string) {
	attr := r.attribute(name)
	if attr == nil {
		r.entry.Attributes = append(r.entry.Attributes, ldap.NewEntryAttribute(name, []string{value}))
		if name == dnAttribute {
			r.entry.DN = value
		}
		return
	}

	if len(attr.Values) == 1 && attr.Values[0] == value {
		return
	}

	attr.Values = append(attr.Values, value)
	attr.ByteValues = append(attr.ByteValues, []byte(value))
}

// Set replaces the values of name. An existing attribute keeps its position,
// a new one is appended after all others.
func (r *Record) Set(name string, values ...string) {
	replacement := ldap.NewEntryAttribute(name, slices.Clone(values))
	if name == dnAttribute && len(values) > 0 {
		r.entry.DN = values[0]
	}

	for i, attr := range r.entry.Attributes {
		if attr.Name == name {
			r.entry.Attributes[i] = replacement
			return
		}
	}
	r.entry.Attributes = append(r.entry.Attributes, replacement)
}

// HasObjectClass reports whether any objectClass value equals one of classes.
// A record without objectClass has none of them.
func (r *Record) HasObjectClass(classes ...string) bool {
	attr := r.attribute("objectClass")
	if attr == nil {
		return false
	}
	for _, value := range attr.Values {
		if slices.Contains(classes, value) {
			return true
		}
	}
	return false
}

func (r *Record) attribute(name string) *ldap.EntryAttribute {
	for _, attr := range r.entry.Attributes {
		if attr.Name == name {
			return attr
		}
	}
	return nil
}
