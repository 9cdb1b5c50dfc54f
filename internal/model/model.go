package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the caller of a request. SessionID keys the conversation
// transcript; an empty SessionID means a one-shot query with no history.
type Scope struct {
	SessionID string
}
