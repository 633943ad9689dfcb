package app

import (
	"github.com/vk/locationmanager/internal/manager"
	"github.com/vk/locationmanager/modules/crypts"
	"github.com/vk/locationmanager/modules/ruins"
)

// examplePackages is the list of packages compiled into the binary, installed
// with --with-examples.
var examplePackages = []manager.Package{
	&ruins.Module{},
	&crypts.Module{},
}
