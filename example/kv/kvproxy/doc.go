// Package kvproxy holds the generated interceptable proxy for kv.Store.
package kvproxy

//go:generate go run github.com/panagiotisptr/inject/cmd/proxygen generate --interface github.com/panagiotisptr/inject/example/kv.Store --package kvproxy --name StoreProxy --output store_proxy.go
