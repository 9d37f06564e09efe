// Package docs holds the Swagger description served at /swagger. Regenerate with swag init -g cmd/api/main.go.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/chat": {
            "post": {
                "description": "Runs one turn of the first-aid triage dialogue. Nearby hospitals are attached at the final stage when a location is supplied.",
                "consumes": ["application/json", "multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Triage"],
                "summary": "Send a triage message",
                "parameters": [
                    {"type": "string", "description": "User message", "name": "text", "in": "formData"},
                    {"type": "string", "description": "JSON array of {role, content}", "name": "history", "in": "formData"},
                    {"type": "number", "description": "Latitude (-90..90)", "name": "latitude", "in": "formData"},
                    {"type": "number", "description": "Longitude (-180..180)", "name": "longitude", "in": "formData"},
                    {"type": "file", "description": "JPEG, PNG or WebP image", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid text, history, location or image"},
                    "413": {"description": "Image too large"},
                    "415": {"description": "Unsupported image format"},
                    "429": {"description": "Rate limited"},
                    "502": {"description": "AI service error"},
                    "504": {"description": "AI service timeout"}
                }
            }
        },
        "/api/v1/facilities": {
            "get": {
                "description": "Returns up to 10 hospitals and pharmacies around a point, nearest first.",
                "produces": ["application/json"],
                "tags": ["Facilities"],
                "summary": "Search nearby facilities",
                "parameters": [
                    {"type": "number", "description": "Latitude (-90..90)", "name": "latitude", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude (-180..180)", "name": "longitude", "in": "query", "required": true},
                    {"type": "number", "description": "Search radius in km (0..50], default 10", "name": "radius_km", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid location or radius"},
                    "429": {"description": "Rate limited"},
                    "502": {"description": "Places service error"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy"}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready"}, "503": {"description": "No generation provider"}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "FirstAidVox API",
	Description:      "Conversational first-aid triage with nearby hospital lookup.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
