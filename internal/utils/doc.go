// Package utils contains small internal helpers shared across the module.
package utils
