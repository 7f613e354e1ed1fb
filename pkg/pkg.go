// Package pkg holds the identity of the program and the locations of its
// per-user files.
//
//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the module, embedded at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It also names the default config and cache
	// directories.
	Name = "ninjagen"
	// Description is the one-line summary printed in help output.
	Description = "Generate ninja build files from declarative manifests"
)

// AuthorInfo identifies one author.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary authors of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
