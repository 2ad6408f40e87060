// Command ad-convert strips identity attributes from an ldifde dump and forces a password reset for every user.
package main

import (
	"f0oster/adconvert/cmd/internal/cli"
	"f0oster/adconvert/converter"
)

func main() {
	cli.Main(converter.ADConvert())
}
