// Package config loads keepfocus.json.
//
// Example:
//
//	{
//	  "log": {"level": "debug", "format": "json"},
//	  "server": {"host": "0.0.0.0", "port": 8080, "readTimeout": "10s"},
//	  "metrics": {"enabled": true, "path": "/metrics"},
//	  "tracing": {"enabled": true},
//	  "journal": {"enabled": true}
//	}
//
// Missing fields take the values returned by New. Durations use Go
// syntax.
package config
