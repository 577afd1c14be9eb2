// Package docs provides Swagger documentation for the Books API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Books API",
        "description": "REST API for managing book records and user accounts.\n\nEvery response is wrapped in a uniform envelope:\n\n    { \"state\": \"success\" | \"error\", \"result\": <payload> }\n\nOn failure result carries errorMessage, type, statusCode and, for validation failures, an innerErrors list of per-field problems.",
        "version": "1.0.0"
    },
    "host": "localhost:8080",
    "basePath": "/",
    "schemes": ["http", "https"],
    "produces": ["application/json"],
    "paths": {
        "/api/books": {
            "get": {
                "tags": ["Books"],
                "summary": "List all books",
                "operationId": "listBooks",
                "responses": {
                    "200": {"description": "Success envelope with an array of books", "schema": {"$ref": "#/definitions/Envelope"}},
                    "500": {"description": "Internal error envelope", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Books"],
                "summary": "Create a book",
                "operationId": "createBook",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "X-API-Key", "in": "header", "type": "string", "required": false, "description": "Creator API key"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BookCreate"}}
                ],
                "responses": {
                    "200": {"description": "Success envelope with the created book", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation or content type error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "401": {"description": "Unknown API key", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/books/{bookId}": {
            "get": {
                "tags": ["Books"],
                "summary": "Fetch a book by id",
                "operationId": "getBook",
                "parameters": [{"name": "bookId", "in": "path", "type": "string", "required": true, "description": "24 hex characters"}],
                "responses": {
                    "200": {"description": "Success envelope with the book", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "No such book", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Books"],
                "summary": "Partially update a book",
                "operationId": "patchBook",
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "bookId", "in": "path", "type": "string", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BookPatch"}}
                ],
                "responses": {
                    "200": {"description": "Success envelope with the updated book", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "No such book", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Books"],
                "summary": "Delete a book",
                "operationId": "deleteBook",
                "parameters": [{"name": "bookId", "in": "path", "type": "string", "required": true}],
                "responses": {
                    "200": {"description": "Success envelope with the deleted book", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "No such book", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/users/credentials": {
            "post": {
                "tags": ["Users"],
                "summary": "Verify credentials and fetch account data",
                "operationId": "checkCredentials",
                "consumes": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}],
                "responses": {
                    "200": {"description": "Success envelope with the account data", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "401": {"description": "Incorrect username or password", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/users": {
            "post": {
                "tags": ["Users"],
                "summary": "Register a new user",
                "operationId": "registerUser",
                "consumes": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Registration"}}],
                "responses": {
                    "200": {"description": "Success envelope with a confirmation message", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "409": {"description": "Username already taken", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Users"],
                "summary": "Update own account",
                "operationId": "updateUser",
                "consumes": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UserPatch"}}],
                "responses": {
                    "200": {"description": "Success envelope with the updated account", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "401": {"description": "Incorrect username or password", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete own account",
                "operationId": "deleteUser",
                "consumes": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Credentials"}}],
                "responses": {
                    "200": {"description": "Success envelope with a confirmation message", "schema": {"$ref": "#/definitions/Envelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "401": {"description": "Incorrect username or password", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Envelope": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "example": "success"},
                "result": {"type": "object"}
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "example": "error"},
                "result": {"$ref": "#/definitions/ErrorResult"}
            }
        },
        "ErrorResult": {
            "type": "object",
            "properties": {
                "errorMessage": {"type": "string", "example": "Given JSON is incorrectly formatted or missing some information."},
                "type": {"type": "string", "example": "Validation"},
                "statusCode": {"type": "integer", "example": 400},
                "innerErrors": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "field": {"type": "string", "example": "author"},
                            "message": {"type": "string", "example": "field is required"}
                        }
                    }
                }
            }
        },
        "BookCreate": {
            "type": "object",
            "required": ["name", "author", "genre", "publishYear"],
            "properties": {
                "name": {"type": "string", "example": "Dune"},
                "author": {"type": "string", "example": "Frank Herbert"},
                "genre": {"type": "string", "example": "Sci-Fi"},
                "publishYear": {"type": "integer", "example": 1965},
                "description": {"type": "string"}
            }
        },
        "BookPatch": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "author": {"type": "string"},
                "genre": {"type": "string"},
                "publishYear": {"type": "integer"},
                "description": {"type": "string"}
            }
        },
        "Credentials": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string", "example": "fherbert"},
                "password": {"type": "string"}
            }
        },
        "Registration": {
            "type": "object",
            "required": ["username", "password", "firstName", "lastName"],
            "properties": {
                "username": {"type": "string", "example": "fherbert"},
                "password": {"type": "string"},
                "firstName": {"type": "string", "example": "Frank"},
                "lastName": {"type": "string", "example": "Herbert"}
            }
        },
        "UserPatch": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "newPassword": {"type": "string"}
            }
        }
    },
    "tags": [
        {"name": "Books", "description": "Book record management"},
        {"name": "Users", "description": "Account registration and authentication"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Books API",
	Description:      "REST API for managing book records and user accounts",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
