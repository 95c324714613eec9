// Package docs holds the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/truth-table": {
            "post": {
                "description": "Parses a propositional formula and returns one row per assignment of its variables",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["formulas"],
                "summary": "Build a truth table",
                "parameters": [
                    {
                        "description": "Formula",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/router.FormulaRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.Response-render_View"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.errorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperr.errorBody"}}
                }
            }
        },
        "/api/classify": {
            "post": {
                "description": "Decides tautology, contradiction or contingency with a SAT solver, without enumerating rows",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["formulas"],
                "summary": "Classify a formula",
                "parameters": [
                    {
                        "description": "Formula",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/router.FormulaRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.Response-sat_Report"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.errorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperr.errorBody"}}
                }
            }
        },
        "/api/bot": {
            "post": {
                "description": "Answers \"<trigger> <formula>\" messages with a monospace truth table",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bot"],
                "summary": "Chat command webhook",
                "parameters": [
                    {
                        "description": "Message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/router.BotRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.Response-bot_Reply"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.errorBody"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        }
    },
    "definitions": {
        "apperr.errorBody": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string"}
            }
        },
        "router.FormulaRequest": {
            "type": "object",
            "properties": {
                "formula": {"type": "string", "example": "(p && q) => r"}
            }
        },
        "router.BotRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string", "example": "/truthtable p || !p"}
            }
        },
        "render.View": {
            "type": "object",
            "properties": {
                "variables": {"type": "array", "items": {"type": "string"}},
                "columns": {"type": "array", "items": {"type": "string"}},
                "table": {
                    "type": "array",
                    "items": {"type": "object", "additionalProperties": {"type": "boolean"}}
                },
                "normalized": {"type": "string"},
                "classification": {"type": "string", "enum": ["Tautology", "Contradiction", "Contingent"]}
            }
        },
        "sat.Report": {
            "type": "object",
            "properties": {
                "normalized": {"type": "string"},
                "variables": {"type": "array", "items": {"type": "string"}},
                "classification": {"type": "string", "enum": ["Tautology", "Contradiction", "Contingent"]},
                "satisfying": {"type": "object", "additionalProperties": {"type": "boolean"}},
                "falsifying": {"type": "object", "additionalProperties": {"type": "boolean"}}
            }
        },
        "bot.Reply": {
            "type": "object",
            "properties": {
                "reply": {"type": "string"},
                "handled": {"type": "boolean"}
            }
        },
        "router.Response-render_View": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/render.View"}
            }
        },
        "router.Response-sat_Report": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/sat.Report"}
            }
        },
        "router.Response-bot_Reply": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"$ref": "#/definitions/bot.Reply"}
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
	Title:            "Truth Table API",
	Description:      "Builds truth tables for propositional formulas and classifies them as tautology, contradiction or contingent",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
