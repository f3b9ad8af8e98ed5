// Package config builds a pipeline from a declarative YAML document.
//
// The document declares appenders and the root logger that fans out to them.
// Filter entries inside an appender are dispatched on their kind tag through
// a Deserializers registry, so applications can add filter kinds of their
// own next to the built-in threshold and dynamic_level kinds.
//
//	root:
//	  level: trace
//	  appenders: [stdout]
//	appenders:
//	  stdout:
//	    kind: console
//	    filters:
//	      - kind: dynamic_level
//	        name: my_dynamic_filter
//	        default: info
//
// A filter declared this way is reachable at runtime through
// filter.SetLevel("my_dynamic_filter", ...) even though the application
// never constructed it.
package config
