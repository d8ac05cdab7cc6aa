package model

// Scope carries the authenticated caller identity through a request.
// Every store operation takes a Scope and filters by UserID.
type Scope struct {
	UserID string
	Email  string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
