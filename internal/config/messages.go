package config

import "fmt"

// Operator-facing startup messages. Config failures panic before the server
// binds, so these surface on the console rather than in a response.
const errRequiredEnvNotSetFmt = "podcast service: required environment variable %s is not set"

func requiredEnvNotSet(key string) string {
	return fmt.Sprintf(errRequiredEnvNotSetFmt, key)
}
