// Package swagger holds the OpenAPI document served at /swagger/*any.
// It mirrors the swag annotations on the handlers and uses the layout
// `swag init -g cmd/linkshare-server/main.go -o api/swagger` writes, so
// running swag regenerates it in place.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "LinkShare",
            "url": "https://github.com/syedhamzaalinaqvi/linkshare"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/categories": {
            "get": {
                "description": "Recommended category values for the submit form",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/countries": {
            "get": {
                "description": "Recommended country values for the submit form",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "List countries",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}}
                }
            }
        },
        "/groups": {
            "get": {
                "description": "Get all listed groups ordered by submission time, newest first",
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "List groups",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive match on name, description or category", "name": "search", "in": "query"},
                    {"type": "string", "description": "Exact country filter", "name": "country", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/groups.GroupResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            },
            "post": {
                "description": "Validate and list a new WhatsApp group invite",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Submit a group",
                "parameters": [
                    {"description": "Group details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/validation.GroupInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/groups.GroupResponse"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/groups/category/{category}": {
            "get": {
                "description": "Get groups whose category matches exactly (case-sensitive), newest first",
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "List groups in a category",
                "parameters": [
                    {"type": "string", "description": "Category", "name": "category", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/groups.GroupResponse"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/groups/{id}": {
            "get": {
                "description": "Get a group by its id",
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Get a group",
                "parameters": [
                    {"type": "integer", "description": "Group ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/groups.GroupResponse"}},
                    "400": {"description": "Invalid ID format", "schema": {"$ref": "#/definitions/apierror.Response"}},
                    "404": {"description": "Group not found", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        },
        "/link-preview": {
            "get": {
                "description": "Fetch title, description and image for a WhatsApp invite link. Defaults are returned when the page cannot be read.",
                "produces": ["application/json"],
                "tags": ["link-preview"],
                "summary": "Preview an invite link",
                "parameters": [
                    {"type": "string", "description": "WhatsApp invite URL", "name": "url", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/linkpreview.Preview"}},
                    "400": {"description": "Missing or invalid URL", "schema": {"$ref": "#/definitions/apierror.Response"}}
                }
            }
        }
    },
    "definitions": {
        "apierror.Response": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"$ref": "#/definitions/validation.FieldError"}},
                "message": {"type": "string"}
            }
        },
        "groups.GroupResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "country": {"type": "string"},
                "createdAt": {"type": "integer"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "link": {"type": "string"},
                "members": {"type": "integer"},
                "name": {"type": "string"},
                "owner": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "linkpreview.Preview": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "image": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "validation.GroupInput": {
            "type": "object",
            "required": ["category", "description", "link", "name", "owner"],
            "properties": {
                "category": {"type": "string", "maxLength": 50},
                "country": {"type": "string", "maxLength": 50},
                "description": {"type": "string"},
                "link": {"type": "string"},
                "members": {"type": "integer", "minimum": 0},
                "name": {"type": "string", "maxLength": 100},
                "owner": {"type": "string", "maxLength": 100}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "LinkShare API",
	Description:      "Directory of WhatsApp group invite links, organised by category and country.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
