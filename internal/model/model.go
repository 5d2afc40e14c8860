// Package model holds the domain records read from the store, the
// response views built from them, and the request payloads.
package model

import "github.com/go-playground/validator/v10"

// validate is shared by every payload; validator caches struct metadata
// and is safe for concurrent use.
var validate = validator.New()
