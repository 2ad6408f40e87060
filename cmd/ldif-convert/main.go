// Command ldif-convert writes OUs and users with LDAP attribute names and a placeholder password.
package main

import (
	"f0oster/adconvert/cmd/internal/cli"
	"f0oster/adconvert/converter"
)

func main() {
	cli.Main(converter.LDIFConvert())
}
