// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Volkov

package http

import (
	"net/http"
	"strings"
)

// openAPIDocument serves the machine-readable API description. The
// document is generated from the same route table the router is built
// from, so paths and methods cannot drift from the actual routing.
func (h *Handler) openAPIDocument(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.buildOpenAPIDocument(), http.StatusOK)
}

func (h *Handler) buildOpenAPIDocument() map[string]any {
	paths := make(map[string]map[string]any)

	for _, rt := range h.routes() {
		operation := map[string]any{
			"summary": rt.summary,
			"responses": map[string]any{
				"200": map[string]any{"description": "OK"},
			},
		}

		if params := pathParameters(rt.pattern); len(params) > 0 {
			operation["parameters"] = params
		}
		if rt.auth == authRequired {
			operation["security"] = []map[string][]string{{"bearerAuth": {}}}
		}

		if paths[rt.pattern] == nil {
			paths[rt.pattern] = make(map[string]any)
		}
		paths[rt.pattern][strings.ToLower(rt.method)] = operation
	}

	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "reverso API",
			"version": "1.0.0",
		},
		"paths": paths,
		"components": map[string]any{
			"securitySchemes": map[string]any{
				"bearerAuth": map[string]any{
					"type":   "http",
					"scheme": "bearer",
				},
			},
		},
	}
}

// pathParameters extracts chi-style {name} segments from a route pattern.
// Chi and OpenAPI share the placeholder syntax, so the pattern itself needs
// no rewriting.
func pathParameters(pattern string) []map[string]any {
	var params []map[string]any

	for _, segment := range strings.Split(pattern, "/") {
		if !strings.HasPrefix(segment, "{") || !strings.HasSuffix(segment, "}") {
			continue
		}
		params = append(params, map[string]any{
			"name":     strings.Trim(segment, "{}"),
			"in":       "path",
			"required": true,
			"schema":   map[string]any{"type": "string"},
		})
	}

	return params
}
