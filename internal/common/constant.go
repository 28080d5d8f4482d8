package common

// AppName names the per-user data directory.
const AppName = "zenkeeper"

// TokenEnvVar is the environment variable holding the API access token.
const TokenEnvVar = "ZENMONEY_TOKEN"
