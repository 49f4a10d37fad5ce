// Package api carries the OpenAPI contract of the HTTP surface. The
// document is embedded so the running service can serve its own contract.
package api

import _ "embed"

//go:embed openapi.yaml
var contract []byte

// Contract returns the raw OpenAPI document.
func Contract() []byte {
	return contract
}
