//	@title			Person/Address/Organization/House API
//	@version		0.1.0
//	@description	Demo directory API with in-memory storage for Person, Address, Organization, and House records

//	@tag.name			addresses
//	@tag.description	Address management operations

//	@tag.name			persons
//	@tag.description	Person management operations

//	@tag.name			organizations
//	@tag.description	Organization management operations

//	@tag.name			houses
//	@tag.description	House management operations

//	@tag.name			health
//	@tag.description	Operational endpoints for monitoring

package main

import (
	"os"

	"github.com/campusdir/campusdir/cli"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
