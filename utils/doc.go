// SPDX-License-Identifier: EPL-2.0

// Package utils holds sample conversion and test tone helpers.
package utils
