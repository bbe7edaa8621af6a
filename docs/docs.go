// Package docs registers the OpenAPI document served under /swagger.
// Regenerate with `swag init -g cmd/server/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/login": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Log in with email and password",
                "parameters": [
                    {"type": "string", "description": "Account email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Account password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "client or freelancer", "name": "role", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "Redirect to /{role}/home or back to the role's login page"}}
            }
        },
        "/signup": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Sign up with email and password",
                "parameters": [
                    {"type": "string", "description": "Account email", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "description": "Password, at least 6 characters", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "client or freelancer", "name": "role", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "Redirect to /{role}/profile/new or back to the role's login page"}}
            }
        },
        "/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Log out",
                "responses": {"303": {"description": "Redirect to /"}}
            }
        },
        "/auth/google": {
            "get": {
                "tags": ["auth"],
                "summary": "Start federated sign-in",
                "parameters": [
                    {"type": "string", "description": "client or freelancer", "name": "role", "in": "query", "required": true}
                ],
                "responses": {
                    "302": {"description": "Redirect to the identity provider"},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/google/callback": {
            "get": {
                "tags": ["auth"],
                "summary": "Federated sign-in callback",
                "parameters": [
                    {"type": "string", "description": "Signed state issued by /auth/google", "name": "state", "in": "query", "required": true},
                    {"type": "string", "description": "Authorization code", "name": "code", "in": "query"},
                    {"type": "string", "description": "Provider error", "name": "error", "in": "query"}
                ],
                "responses": {"303": {"description": "Redirect to /{role}/profile/new, /{role}/home or the role's login page"}}
            }
        },
        "/{role}/profile/new": {
            "get": {
                "produces": ["text/html"],
                "tags": ["profile"],
                "summary": "Profile completion form",
                "parameters": [
                    {"type": "string", "description": "client or freelancer", "name": "role", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "HTML form"},
                    "303": {"description": "Redirect to /{role}/home when the profile exists"},
                    "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/{role}/profile": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["profile"],
                "summary": "Complete profile",
                "parameters": [
                    {"type": "string", "description": "client or freelancer", "name": "role", "in": "path", "required": true},
                    {"type": "string", "description": "Display name", "name": "name", "in": "formData", "required": true},
                    {"type": "integer", "description": "Age", "name": "age", "in": "formData"},
                    {"type": "string", "description": "Gender", "name": "gender", "in": "formData"},
                    {"type": "string", "description": "Photo URL", "name": "photo_url", "in": "formData"},
                    {"type": "string", "description": "Company (client)", "name": "company", "in": "formData"},
                    {"type": "string", "description": "Headline (freelancer)", "name": "headline", "in": "formData"},
                    {"type": "string", "description": "Comma separated skills (freelancer)", "name": "skills", "in": "formData"},
                    {"type": "number", "description": "Hourly rate (freelancer)", "name": "hourly_rate", "in": "formData"}
                ],
                "responses": {
                    "303": {"description": "Redirect to /{role}/home"},
                    "400": {"description": "Form re-rendered with the validation error"},
                    "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/{role}/home": {
            "get": {
                "produces": ["text/html"],
                "tags": ["profile"],
                "summary": "Role home page",
                "parameters": [
                    {"type": "string", "description": "client or freelancer", "name": "role", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "HTML page"},
                    "303": {"description": "Redirect to /{role}/profile/new"},
                    "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {
                    "type": "object",
                    "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}
                },
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Freelance Portal API",
	Description:      "Authentication, sessions and onboarding for clients and freelancers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
