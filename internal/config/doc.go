// Package config loads devtoolbox configuration from project-local and global
// YAML files. CLI code resolves the final values with the precedence
// flag > local file > global file.
package config
