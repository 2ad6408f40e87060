package activedirectory_test

import (
	"testing"

	"f0oster/adconvert/activedirectory"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Fold(t *testing.T) {
	t.Run("first value is scalar", func(t *testing.T) {
		r := activedirectory.NewRecord()
		r.Fold("cn", "Bob")

		assert.False(t, r.IsMultiValued("cn"))
		assert.Equal(t, []string{"Bob"}, r.Values("cn"))
	})

	t.Run("identical value leaves scalar", func(t *testing.T) {
		r := activedirectory.NewRecord()
		r.Fold("cn", "Bob")
		r.Fold("cn", "Bob")

		assert.False(t, r.IsMultiValued("cn"))
		assert.Equal(t, []string{"Bob"}, r.Values("cn"))
	})

	t.Run("distinct values keep first-seen order", func(t *testing.T) {
		r := activedirectory.NewRecord()
		r.Fold("objectClass", "top")
		r.Fold("objectClass", "person")
		assert.Equal(t, []string{"top", "person"}, r.Values("objectClass"))

		r.Fold("objectClass", "user")
		assert.True(t, r.IsMultiValued("objectClass"))
		assert.Equal(t, []string{"top", "person", "user"}, r.Values("objectClass"))
	})

	t.Run("sequence appends repeated values", func(t *testing.T) {
		r := activedirectory.NewRecord()
		r.Fold("memberOf", "a")
		r.Fold("memberOf", "b")
		r.Fold("memberOf", "a")

		assert.Equal(t, []string{"a", "b", "a"}, r.Values("memberOf"))
	})

	t.Run("keys keep insertion order", func(t *testing.T) {
		r := activedirectory.NewRecord()
		r.Fold("dn", "cn=Bob")
		r.Fold("objectClass", "top")
		r.Fold("cn", "Bob")
		r.Fold("objectClass", "person")

		assert.Equal(t, []string{"dn", "objectClass", "cn"}, r.Names())
		assert.Equal(t, "cn=Bob", r.DN())
	})

	t.Run("byte values follow string values", func(t *testing.T) {
		r := activedirectory.NewRecord()
		r.Fold("objectClass", "top")
		r.Fold("objectClass", "person")

		attr := r.Attributes()[0]
		assert.Equal(t, [][]byte{[]byte("top"), []byte("person")}, attr.ByteValues)
	})
}

func TestRecord_Set(t *testing.T) {
	r := activedirectory.NewRecord()
	r.Fold("dn", "cn=Bob")
	r.Fold("pwdLastSet", "133000000000000000")
	r.Fold("cn", "Bob")

	r.Set("pwdLastSet", "0")
	assert.Equal(t, []string{"dn", "pwdLastSet", "cn"}, r.Names())
	assert.Equal(t, "0", r.Get("pwdLastSet"))

	r.Set("uid", "bob", "robert")
	assert.Equal(t, []string{"dn", "pwdLastSet", "cn", "uid"}, r.Names())
	assert.Equal(t, []string{"bob", "robert"}, r.Values("uid"))

	r.Set("dn", "cn=Robert")
	assert.Equal(t, "cn=Robert", r.DN())
}

func TestRecord_Accessors(t *testing.T) {
	r := activedirectory.NewRecord()
	r.Fold("cn", "Bob")

	assert.True(t, r.Has("cn"))
	assert.False(t, r.Has("CN"))
	assert.Equal(t, "", r.Get("missing"))
	assert.Nil(t, r.Values("missing"))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, "Bob", r.Entry().GetAttributeValue("cn"))

	values := r.Values("cn")
	values[0] = "mutated"
	assert.Equal(t, "Bob", r.Get("cn"))
}
