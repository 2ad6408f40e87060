// Command ad-to-ldif writes the users of an AD dump as LDIF with LDAP attribute names.
package main

import (
	"f0oster/adconvert/cmd/internal/cli"
	"f0oster/adconvert/converter"
)

func main() {
	cli.Main(converter.ADToLDIF())
}
