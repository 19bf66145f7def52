package models

type Company struct {
	Base
	Domain   string   `json:"domain" validate:"required" desc:"Company domain" example:"example.com"`
	Contacts []string `json:"contacts" desc:"Contact IDs"`
}

var defaultDomain = "example.com"

func DefaultDomain() string {
	return defaultDomain
}

func SetDefaultDomain(domain string) {
	defaultDomain = domain
}
