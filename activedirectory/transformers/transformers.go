package transformers

import (
	"f0oster/adconvert/activedirectory"
)

// PlaceholderPassword is injected as userPassword for every converted user.
// It is one known salted hash for staging migrations, not a per-user secret.
const PlaceholderPassword = "{SSHA}BwZ58YY9qeQu5Ln9dPhcCQrCIYcNCEa/"

// Transformer synthesizes or rewrites fields on a classified record in place.
type Transformer interface {
	Transform(record *activedirectory.Record)
}

// TransformerFunc adapts a plain function to Transformer.
type TransformerFunc func(record *activedirectory.Record)

func (f TransformerFunc) Transform(record *activedirectory.Record) {
	f(record)
}

// Chain applies transformers in order.
type Chain []Transformer

func (c Chain) Transform(record *activedirectory.Record) {
	for _, t := range c {
		t.Transform(record)
	}
}

// SetLiteral sets Name to a constant Value.
type SetLiteral struct {
	Name  string
	Value string
}

func (t SetLiteral) Transform(record *activedirectory.Record) {
	record.Set(t.Name, t.Value)
}

// CopyAttribute copies every value of From to To. Nothing happens when From is absent.
type CopyAttribute struct {
	From string
	To   string
}

func (t CopyAttribute) Transform(record *activedirectory.Record) {
	values := record.Values(t.From)
	if len(values) == 0 {
		return
	}
	record.Set(t.To, values...)
}

// ExpirePassword zeroes pwdLastSet so the account must change its password on first logon.
func ExpirePassword() Transformer {
	return SetLiteral{Name: "pwdLastSet", Value: "0"}
}

// UIDFromDomainID derives uid from the translated sAMAccountName.
func UIDFromDomainID() Transformer {
	return CopyAttribute{From: "ntUserDomainId", To: "uid"}
}

// InjectPlaceholderPassword sets userPassword to PlaceholderPassword.
func InjectPlaceholderPassword() Transformer {
	return SetLiteral{Name: "userPassword", Value: PlaceholderPassword}
}
