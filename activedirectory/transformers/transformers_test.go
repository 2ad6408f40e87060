package transformers_test

import (
	"testing"

	"f0oster/adconvert/activedirectory"
	"f0oster/adconvert/activedirectory/transformers"

	"github.com/stretchr/testify/assert"
)

func newUser() *activedirectory.Record {
	r := activedirectory.NewRecord()
	r.Fold("dn", "cn=Bob,dc=example,dc=com")
	r.Fold("objectClass", "person")
	r.Fold("ntUserDomainId", "bob")
	r.Fold("pwdLastSet", "133456789012345678")
	return r
}

func TestExpirePassword(t *testing.T) {
	r := newUser()
	transformers.ExpirePassword().Transform(r)

	assert.Equal(t, "0", r.Get("pwdLastSet"))
	assert.Equal(t, []string{"dn", "objectClass", "ntUserDomainId", "pwdLastSet"}, r.Names())
}

func TestUIDFromDomainID(t *testing.T) {
	r := newUser()
	transformers.UIDFromDomainID().Transform(r)

	assert.Equal(t, "bob", r.Get("uid"))
	assert.Equal(t, "uid", r.Names()[r.Len()-1])
}

func TestCopyAttribute_MissingSource(t *testing.T) {
	r := activedirectory.NewRecord()
	r.Fold("dn", "cn=NoSam")

	transformers.UIDFromDomainID().Transform(r)
	assert.False(t, r.Has("uid"))
}

func TestCopyAttribute_MultiValued(t *testing.T) {
	r := activedirectory.NewRecord()
	r.Fold("mail", "a@example.com")
	r.Fold("mail", "b@example.com")

	transformers.CopyAttribute{From: "mail", To: "email"}.Transform(r)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, r.Values("email"))
}

func TestInjectPlaceholderPassword(t *testing.T) {
	first, second := newUser(), newUser()
	transformers.InjectPlaceholderPassword().Transform(first)
	transformers.InjectPlaceholderPassword().Transform(second)

	assert.Equal(t, "{SSHA}BwZ58YY9qeQu5Ln9dPhcCQrCIYcNCEa/", first.Get("userPassword"))
	assert.Equal(t, first.Get("userPassword"), second.Get("userPassword"))
}

func TestChain(t *testing.T) {
	r := newUser()
	var order []string

	chain := transformers.Chain{
		transformers.UIDFromDomainID(),
		transformers.InjectPlaceholderPassword(),
		transformers.TransformerFunc(func(record *activedirectory.Record) {
			order = append(order, record.Get("uid"))
		}),
	}
	chain.Transform(r)

	assert.Equal(t, []string{"bob"}, order)
	assert.Equal(t, []string{"dn", "objectClass", "ntUserDomainId", "pwdLastSet", "uid", "userPassword"}, r.Names())
}
