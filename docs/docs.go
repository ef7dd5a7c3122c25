// Package docs registra el documento OpenAPI servido en /swagger/doc.json.
// Mantener alineado con las anotaciones godoc de los handlers.
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
        "/login": {
            "post": {
                "tags": ["admin"],
                "summary": "Start an admin session",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["admin"],
                "summary": "End the admin session",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}}
                }
            }
        },
        "/pets": {
            "get": {
                "tags": ["pets"],
                "summary": "List pets",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "exact pet type", "name": "type", "in": "query"},
                    {"type": "string", "description": "true selects adopted pets, any other value non-adopted", "name": "adopted", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/petResponse"}}}
                }
            },
            "post": {
                "tags": ["pets"],
                "summary": "Create a pet (admin)",
                "consumes": ["multipart/form-data", "application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "name": "type", "in": "formData", "required": true},
                    {"type": "string", "name": "breed", "in": "formData"},
                    {"type": "string", "name": "gender", "in": "formData"},
                    {"type": "string", "name": "age", "in": "formData"},
                    {"type": "string", "name": "description", "in": "formData"},
                    {"type": "file", "description": "png, jpg, jpeg or gif", "name": "image", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "tags": ["pets"],
                "summary": "Get a pet",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/petResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "delete": {
                "tags": ["pets"],
                "summary": "Delete a pet and its adoption requests (admin)",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/pets/{petID}/adopted": {
            "patch": {
                "tags": ["pets"],
                "summary": "Mark a pet as adopted (admin)",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/uploads/{filename}": {
            "get": {
                "tags": ["uploads"],
                "summary": "Serve an uploaded pet image",
                "produces": ["image/png", "image/jpeg", "image/gif"],
                "parameters": [
                    {"type": "string", "name": "filename", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/adoption-requests": {
            "get": {
                "tags": ["adoption-requests"],
                "summary": "List adoption requests (admin)",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "enum": ["pending", "approved", "rejected"], "name": "status", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/requestResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "post": {
                "tags": ["adoption-requests"],
                "summary": "Submit an adoption request",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/submitRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/adoption-requests/{requestID}": {
            "delete": {
                "tags": ["adoption-requests"],
                "summary": "Delete an adoption request (admin)",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "requestID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/adoption-requests/{requestID}/approve": {
            "patch": {
                "tags": ["adoption-requests"],
                "summary": "Approve an adoption request and mark the pet adopted (admin)",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "requestID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/adoption-requests/{requestID}/reject": {
            "patch": {
                "tags": ["adoption-requests"],
                "summary": "Reject an adoption request (admin)",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "requestID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "loginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "id": {"type": "integer"}
            }
        },
        "errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "petResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "breed": {"type": "string"},
                "gender": {"type": "string"},
                "age": {"type": "string"},
                "description": {"type": "string"},
                "image_url": {"type": "string", "x-nullable": true},
                "adopted": {"type": "boolean"},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
            }
        },
        "submitRequest": {
            "type": "object",
            "properties": {
                "user_name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "message": {"type": "string"},
                "pet_id": {"type": "integer"}
            }
        },
        "requestResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "user_name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "message": {"type": "string"},
                "pet_id": {"type": "integer"},
                "pet_name": {"type": "string"},
                "approved": {"type": "boolean"},
                "rejected": {"type": "boolean"},
                "status": {"type": "string", "enum": ["pending", "approved", "rejected"]},
                "created_at": {"type": "string", "format": "date-time"},
                "updated_at": {"type": "string", "format": "date-time"}
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
	Title:            "Pet Adoption API",
	Description:      "Pet catalog, adoption requests and admin session.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
