// Package docs registers the swagger document served under /swagger.
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
        "/food": {
            "get": {
                "produces": ["application/json"],
                "tags": ["food"],
                "summary": "Lists the food catalog",
                "parameters": [
                    {"type": "string", "description": "LIKED, DISLIKED or NEUTRAL", "name": "category", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "description": "Inserts the default catalog. Repeated calls insert duplicates.",
                "produces": ["application/json"],
                "tags": ["food"],
                "summary": "Seeds the food catalog",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/poll": {
            "post": {
                "description": "Unknown food ids are ignored. Closed rooms reject submissions.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["poll"],
                "summary": "Submits a poll response",
                "parameters": [
                    {"type": "integer", "description": "Room id", "name": "roomId", "in": "query", "required": true},
                    {"description": "Food ids per category", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.submitPollRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/rooms/close": {
            "post": {
                "description": "Aggregates every poll response of the room and returns the result document.",
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Closes a room",
                "parameters": [
                    {"type": "string", "description": "Room access token", "name": "token", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/rooms/create": {
            "post": {
                "description": "Opens a new polling room and returns its access token.",
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Creates a room",
                "parameters": [
                    {"type": "string", "description": "Room name", "name": "name", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.roomResponse"}}, "400": {"description": "Bad Request"}}
            }
        },
        "/rooms/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Gets a room",
                "parameters": [
                    {"type": "integer", "description": "Room id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/http.roomResponse"}}, "404": {"description": "Not Found"}}
            }
        },
        "/rooms/{id}/responses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["poll"],
                "summary": "Lists the poll responses of a room",
                "parameters": [
                    {"type": "integer", "description": "Room id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/rooms/{id}/results": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Gets the stored result of a closed room",
                "parameters": [
                    {"type": "integer", "description": "Room id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        }
    },
    "definitions": {
        "http.roomResponse": {
            "type": "object",
            "properties": {
                "closed": {"type": "boolean"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "token": {"type": "string"}
            }
        },
        "http.submitPollRequest": {
            "type": "object",
            "properties": {
                "happyFoodIds": {"type": "array", "items": {"type": "integer"}},
                "neutralFoodIds": {"type": "array", "items": {"type": "integer"}},
                "sadFoodIds": {"type": "array", "items": {"type": "integer"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "SnackElf API",
	Description:      "Rooms where participants sort foods into liked, disliked and neutral.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
