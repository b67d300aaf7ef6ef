// Package docs registers the OpenAPI document served by gin-swagger.
// Regenerate with `swag init` after changing handler annotations.
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
        "/categories/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.CategoryListBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Create category",
                "parameters": [
                    {"description": "Category", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CategoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Category created", "schema": {"$ref": "#/definitions/controllers.CategoryBody"}},
                    "409": {"description": "Category name already exists", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}},
                    "422": {"description": "Invalid category", "schema": {"$ref": "#/definitions/controllers.ValidationErrorResponse"}}
                }
            }
        },
        "/categories/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Get category",
                "parameters": [{"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.CategoryBody"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Update category",
                "parameters": [
                    {"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true},
                    {"description": "New name", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CategoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageBody"}},
                    "400": {"description": "Missing or empty name", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}},
                    "409": {"description": "Category name already exists", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Delete category",
                "parameters": [{"type": "integer", "description": "Category ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageBody"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}},
                    "409": {"description": "Category has related questions", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}}
                }
            }
        },
        "/questions/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "List questions",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.QuestionListBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Create question",
                "parameters": [
                    {"description": "Question", "name": "question", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.QuestionCreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Question created", "schema": {"$ref": "#/definitions/controllers.QuestionBody"}},
                    "400": {"description": "Invalid question", "schema": {"$ref": "#/definitions/controllers.ValidationErrorResponse"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}}
                }
            }
        },
        "/questions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Get question",
                "parameters": [{"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.QuestionBody"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Update question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true},
                    {"description": "New text", "name": "question", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.QuestionUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageBody"}},
                    "400": {"description": "Missing or empty text", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Questions"],
                "summary": "Delete question",
                "parameters": [{"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.MessageBody"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}}
                }
            }
        },
        "/responses/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Responses"],
                "summary": "List statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StatisticListBody"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Responses"],
                "summary": "Submit response",
                "parameters": [
                    {"description": "Vote", "name": "response", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.ResponseCreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.StatisticBody"}},
                    "400": {"description": "Invalid vote", "schema": {"$ref": "#/definitions/controllers.ValidationErrorResponse"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}}
                }
            }
        },
        "/responses/{question_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Responses"],
                "summary": "Get statistic",
                "parameters": [{"type": "integer", "description": "Question ID", "name": "question_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.StatisticBody"}},
                    "404": {"description": "Question not found", "schema": {"$ref": "#/definitions/controllers.StandardErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "controllers.CategoryRequest": {
            "type": "object",
            "properties": {"name": {"type": "string", "example": "Drinks"}}
        },
        "controllers.CategoryBody": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Drinks"}
            }
        },
        "controllers.CategoryListBody": {
            "type": "object",
            "properties": {"categories": {"type": "array", "items": {"$ref": "#/definitions/controllers.CategoryBody"}}}
        },
        "controllers.QuestionCreateRequest": {
            "type": "object",
            "properties": {
                "question": {"type": "string", "example": "Do you like tea?"},
                "category_id": {"type": "integer", "example": 1},
                "category": {"$ref": "#/definitions/controllers.CategoryRequest"}
            }
        },
        "controllers.QuestionUpdateRequest": {
            "type": "object",
            "properties": {"question": {"type": "string", "example": "Do you like green tea?"}}
        },
        "controllers.QuestionBody": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "question": {"type": "string", "example": "Do you like tea?"},
                "category": {"$ref": "#/definitions/controllers.CategoryBody"}
            }
        },
        "controllers.QuestionListBody": {
            "type": "object",
            "properties": {"questions": {"type": "array", "items": {"$ref": "#/definitions/controllers.QuestionBody"}}}
        },
        "controllers.ResponseCreateRequest": {
            "type": "object",
            "properties": {
                "question_id": {"type": "integer", "example": 1},
                "is_agree": {"type": "boolean", "example": true}
            }
        },
        "controllers.StatisticBody": {
            "type": "object",
            "properties": {
                "question_id": {"type": "integer", "example": 1},
                "agree_count": {"type": "integer", "example": 12},
                "disagree_count": {"type": "integer", "example": 3}
            }
        },
        "controllers.StatisticListBody": {
            "type": "object",
            "properties": {"statistics": {"type": "array", "items": {"$ref": "#/definitions/controllers.StatisticBody"}}}
        },
        "controllers.MessageBody": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Category 1 (Drinks) updated"}}
        },
        "controllers.StandardErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "category with id 7: not found"}}
        },
        "controllers.FieldErrorExample": {
            "type": "object",
            "properties": {
                "field": {"type": "string", "example": "name"},
                "rule": {"type": "string", "example": "required"},
                "message": {"type": "string", "example": "name is required"}
            }
        },
        "controllers.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "validation failed: name is required"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/controllers.FieldErrorExample"}}
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
	Title:            "surveyapi",
	Description:      "Survey questions, categories and agree/disagree statistics",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
