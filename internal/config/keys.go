package config

const (
	KeyAPIKey         = "statsig_api_key"
	KeyBaseURL        = "statsig_base_url"
	KeyRequestTimeout = "statsig_request_timeout"
	KeyLogLevel       = "log_level"
	KeyTransport      = "transport"
	KeyHTTPHost       = "host"
	KeyHTTPPort       = "port"
)

// DefaultBaseURL is the Statsig console API endpoint.
const DefaultBaseURL = "https://statsigapi.net/console/v1"
