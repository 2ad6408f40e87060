package converter

import (
	"f0oster/adconvert/activedirectory"
	"f0oster/adconvert/activedirectory/formatters"
	"f0oster/adconvert/activedirectory/schema"
	"f0oster/adconvert/activedirectory/transformers"
)

// Section is one category written to the output file with its own attribute filter.
type Section struct {
	Category activedirectory.Category
	Filter   formatters.AttributeFilter
}

// Variant parameterizes the pipeline: how input is decoded, which keys are
// renamed, which categories are recognised, what is injected and what is written.
type Variant struct {
	Name         string
	Encoding     Encoding
	Translator   activedirectory.KeyTranslator
	Categories   []activedirectory.Category
	Transformers map[activedirectory.Category]transformers.Transformer
	// Sections are written in order; the first overwrites the output file.
	Sections []Section
}

var adDumpDeniedAttributes = []string{
	"sAMAccountType",
	"objectSid",
	"primaryGroupID",
	"pwdLastSet",
	"objectGUID",
}

var ldifUserAttributes = []string{
	"dn",
	"displayName",
	"name",
	"cn",
	"ou",
	"uid",
	"objectClass",
	"dNSHostName",
	"ntUserDomainId",
	"whenCreated",
	"whenChanged",
}

var ldifOUAttributes = []string{
	"dn",
	"objectClass",
	"dc",
}

// ADConvert keeps AD naming, forces a password reset for users and strips
// identity attributes from OUs, users and computers.
func ADConvert() Variant {
	deny := formatters.Deny(adDumpDeniedAttributes...)
	return Variant{
		Name:       "ad-convert",
		Encoding:   EncodingLatin1,
		Translator: schema.Identity(),
		Categories: []activedirectory.Category{
			activedirectory.CategoryUser,
			activedirectory.CategoryOrganizationalUnit,
			activedirectory.CategoryComputer,
		},
		Transformers: map[activedirectory.Category]transformers.Transformer{
			activedirectory.CategoryUser: transformers.ExpirePassword(),
		},
		Sections: []Section{
			{Category: activedirectory.CategoryOrganizationalUnit, Filter: deny},
			{Category: activedirectory.CategoryUser, Filter: deny},
			{Category: activedirectory.CategoryComputer, Filter: deny},
		},
	}
}

// ADToLDIF renames AD attributes to their LDAP names and writes users only.
func ADToLDIF() Variant {
	return Variant{
		Name:       "ad-to-ldif",
		Encoding:   EncodingUTF8,
		Translator: schema.NewTranslator(),
		Categories: []activedirectory.Category{activedirectory.CategoryUser},
		Transformers: map[activedirectory.Category]transformers.Transformer{
			activedirectory.CategoryUser: transformers.UIDFromDomainID(),
		},
		Sections: []Section{
			{Category: activedirectory.CategoryUser, Filter: formatters.Allow(ldifUserAttributes...)},
		},
	}
}

// LDIFConvert renames AD attributes, gives every user the placeholder password
// and writes OUs followed by users.
func LDIFConvert() Variant {
	userAttributes := append(append([]string{}, ldifUserAttributes...), "userPassword")
	return Variant{
		Name:       "ldif-convert",
		Encoding:   EncodingLatin1,
		Translator: schema.NewTranslator(),
		Categories: []activedirectory.Category{
			activedirectory.CategoryUser,
			activedirectory.CategoryOrganizationalUnit,
		},
		Transformers: map[activedirectory.Category]transformers.Transformer{
			activedirectory.CategoryUser: transformers.Chain{
				transformers.UIDFromDomainID(),
				transformers.InjectPlaceholderPassword(),
			},
		},
		Sections: []Section{
			{Category: activedirectory.CategoryOrganizationalUnit, Filter: formatters.Allow(ldifOUAttributes...)},
			{Category: activedirectory.CategoryUser, Filter: formatters.Allow(userAttributes...)},
		},
	}
}
