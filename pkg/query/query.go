// Copyright (c) 2026 Violeta. All rights reserved.
// Author: hola@violetaproject.org

// Package query parses repeated and comma-separated URL query parameters.
//
// Filter criteria arrive as query strings (?tipos=historia,concepto&hashtags=h1,h2);
// malformed entries are skipped rather than rejected, because an unparseable
// filter dimension means "no filter", never an error.
package query

import (
	"strconv"
	"strings"
)

// IntSlice parses a slice of string values from URL query parameters
// into a slice of integers. Invalid entries are ignored safely.
func IntSlice(vals []string) []int {
	var res []int
	for _, v := range vals {
		if i, err := strconv.Atoi(v); err == nil {
			res = append(res, i)
		}
	}
	return res
}

// StringSlice parses a single comma-separated query string
// into a trimmed slice of strings.
func StringSlice(val string) []string {
	if val == "" {
		return nil
	}
	var res []string
	for _, v := range strings.Split(val, ",") {
		clean := strings.TrimSpace(v)
		if clean != "" {
			res = append(res, clean)
		}
	}
	return res
}

// IntPointer parses an optional integer query value.
// It returns nil for empty or malformed input.
func IntPointer(val string) *int {
	if val == "" {
		return nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return nil
	}
	return &i
}
