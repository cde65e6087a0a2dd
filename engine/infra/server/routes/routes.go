// Package routes centralizes the public paths. They are unversioned and must
// stay byte-for-byte stable for existing clients, including the singular
// create paths for organizations and houses.
package routes

func Root() string { return "/" }

func Health() string { return "/health" }

func Addresses() string { return "/addresses" }

func Persons() string { return "/persons" }

// OrganizationCreate is singular while the read paths are plural.
func OrganizationCreate() string { return "/organization" }

func Organizations() string { return "/organizations" }

// HouseCreate is singular while the read paths are plural.
func HouseCreate() string { return "/house" }

func Houses() string { return "/houses" }
