package config

//go:generate go run github.com/dmarkham/enumer -type Environment -trimprefix Environment -transform lower -yaml -output environment.gen.go

// Environment is the deployment environment the application runs in.
type Environment int

const (
	EnvironmentProduction Environment = iota
	EnvironmentDevelopment
	EnvironmentTest
)
