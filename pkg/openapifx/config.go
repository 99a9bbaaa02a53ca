package openapifx

type Config struct {
	Enabled bool
	// PublicHost and PublicPath override the host and base path advertised
	// by the spec, for deployments behind a proxy.
	PublicHost string
	PublicPath string
}
