// Package config loads and watches the box select configuration.
//
// Configuration is layered: built-in defaults, then a TOML or YAML file,
// then BOXSELECT_* environment variables. Later layers win key by key.
//
//	[tool]
//	preset = "xbox_select"
//	origin = "center"
//	select_every_mousemove = true
//	mode = "append"
//
//	[history]
//	max_entries = 200
//
// A Watcher reloads the file when it changes on disk.
package config
