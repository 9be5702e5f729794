// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/landing). This root
// package holds sentinel errors and validation types shared by all entities.
package domain
