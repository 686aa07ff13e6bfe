package templates

import _ "embed"

// ProxyTemplate renders a proxy struct whose methods run through an
// interceptor.Wrapped each.
//
//go:embed proxy.go.tmpl
var ProxyTemplate string
