// Package config defines the format-agnostic model of an imgconv
// configuration file, along with the Loader interface that concrete file
// formats implement.
//
// Every field is optional. A nil pointer means "not set in the file", which
// lets the app layer tell a file value apart from a built-in default when it
// merges the file with command-line flags. Concrete loaders, such as the HCL
// one, live in separate packages.
package config
