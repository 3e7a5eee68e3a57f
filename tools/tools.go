//go:build tools
// +build tools

// Package tools pins the code generators and the live reloader so go.mod tracks their versions.
package tools

import (
	_ "github.com/air-verse/air"
	_ "github.com/google/wire/cmd/wire"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "go.uber.org/mock/mockgen"
)
