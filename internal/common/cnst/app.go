package cnst

const (
	// AppName is the application name
	AppName = "campaignhub"
	// CommandName is the name of the apiserver binary
	CommandName = "apiserver"
)

const (
	// ApiServerYaml is the default apiserver configuration file name
	ApiServerYaml = "apiserver.yaml"
)

// Context and header keys
const (
	// XLang is the header and context key carrying the client language
	XLang = "X-Lang"
	// ContextKeyClaims is the gin context key holding the verified identity claims
	ContextKeyClaims = "claims"
)

// Supported languages
const (
	LangEN = "en"
	LangZH = "zh"
)
