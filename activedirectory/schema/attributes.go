package schema

type attributePair struct {
	ad   string
	ldap string
}

// See the Windows/Directory Server sync schema:
// https://docs.redhat.com/en/documentation/red_hat_enterprise_linux/7/html/windows_integration_guide/about-sync-schema
var adToLDAPAttributes = []attributePair{
	{"name", "cn"},
	{"userCertificate", "userCertificate"},
	{"pager", "pager"},
	{"x121Address", "x121Address"},
	{"userAccountControl", "nsAccountLock"},
	{"sAMAccountName", "ntUserDomainId"},
	{"homeDirectory", "ntUserHomeDir"},
	{"scriptPath", "ntUserScriptPath"},
	{"lastLogon", "ntUserLastLogon"},
	{"lastLogoff", "ntUserLastLogoff"},
	{"accountExpires", "ntUserAcctExpires"},
	{"codePage", "ntUserCodePage"},
	{"logonHours", "ntUserLogonHours"},
	{"maxStorage", "ntUserMaxStorage"},
	{"profilePath", "ntUserProfile"},
	{"userParameters", "ntUserParms"},
	{"userWorkstations", "ntUserWorkstations"},
}
