package schema

// Translator maps attribute names from the AD naming scheme to the LDAP one.
// The table is fixed at construction time; unknown names pass through unchanged.
type Translator struct {
	attributeNames map[string]string // AD name → LDAP name
}

// NewTranslator returns a translator loaded with the AD to LDAP sync table.
func NewTranslator() *Translator {
	t := &Translator{attributeNames: make(map[string]string, len(adToLDAPAttributes))}
	t.init()
	return t
}

// NewTranslatorFromMap builds a translator from a caller supplied table.
func NewTranslatorFromMap(names map[string]string) *Translator {
	t := &Translator{attributeNames: make(map[string]string, len(names))}
	for adName, ldapName := range names {
		t.register(adName, ldapName)
	}
	return t
}

// Identity returns a translator that never renames.
func Identity() *Translator {
	return &Translator{attributeNames: map[string]string{}}
}

// Translate is an exact, case-sensitive lookup.
func (t *Translator) Translate(name string) string {
	if ldapName, ok := t.attributeNames[name]; ok {
		return ldapName
	}
	return name
}

// Lookup reports whether name has an explicit entry in the table.
func (t *Translator) Lookup(name string) (string, bool) {
	ldapName, ok := t.attributeNames[name]
	return ldapName, ok
}

func (t *Translator) Len() int {
	return len(t.attributeNames)
}

func (t *Translator) register(adName, ldapName string) {
	t.attributeNames[adName] = ldapName
}

func (t *Translator) init() {
	for _, pair := range adToLDAPAttributes {
		t.register(pair.ad, pair.ldap)
	}
}
