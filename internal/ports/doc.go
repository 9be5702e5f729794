// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters. The catalog port is implemented by the landing registry and called
// by the application layer.
package ports
