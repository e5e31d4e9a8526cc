// Package docs holds the generated OpenAPI description of the back-office API.
// Regenerate with: swag init -g cmd/backoffice/main.go -o cmd/docs
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
        "/flights": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Flights"], "summary": "List flights", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Flights"], "summary": "Create a flight", "responses": {"201": {"description": "Created"}}}
        },
        "/flights/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Flights"], "summary": "Get a flight", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Flights"], "summary": "Update a flight", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Flights"], "summary": "Delete a flight", "responses": {"204": {"description": "No Content"}}}
        },
        "/flights/{id}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["Flights"], "summary": "Change flight status", "responses": {"200": {"description": "OK"}}}
        },
        "/flights/{id}/payments/{index}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["Flights"], "summary": "Edit a flight payment", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Flights"], "summary": "Delete a flight payment", "responses": {"200": {"description": "OK"}}}
        },
        "/transfers": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Transfers"], "summary": "List money transfers", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Transfers"], "summary": "Create a money transfer", "responses": {"201": {"description": "Created"}}}
        },
        "/transfers/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Transfers"], "summary": "Get a money transfer", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Transfers"], "summary": "Update a money transfer", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Transfers"], "summary": "Delete a money transfer", "responses": {"204": {"description": "No Content"}}}
        },
        "/transfers/{id}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["Transfers"], "summary": "Change transfer status", "responses": {"200": {"description": "OK"}}}
        },
        "/translations": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Translations"], "summary": "List translations and other services", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Translations"], "summary": "Create a translation or other service", "responses": {"201": {"description": "Created"}}}
        },
        "/translations/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Translations"], "summary": "Get a translation", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["Translations"], "summary": "Update a translation", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Translations"], "summary": "Delete a translation", "responses": {"204": {"description": "No Content"}}}
        },
        "/translations/{id}/status": {
            "patch": {"security": [{"BearerAuth": []}], "tags": ["Translations"], "summary": "Change translation status", "responses": {"200": {"description": "OK"}}}
        },
        "/catalog/clients": {"get": {"security": [{"BearerAuth": []}], "tags": ["Catalog"], "summary": "Clients for dropdowns", "responses": {"200": {"description": "OK"}}}},
        "/catalog/payment-methods": {"get": {"security": [{"BearerAuth": []}], "tags": ["Catalog"], "summary": "Payment methods by country", "responses": {"200": {"description": "OK"}}}},
        "/catalog/itineraries": {"get": {"security": [{"BearerAuth": []}], "tags": ["Catalog"], "summary": "Itineraries", "responses": {"200": {"description": "OK"}}}},
        "/catalog/permissions": {"get": {"security": [{"BearerAuth": []}], "tags": ["Catalog"], "summary": "Active permissions", "responses": {"200": {"description": "OK"}}}},
        "/catalog/permissions/details": {"get": {"security": [{"BearerAuth": []}], "tags": ["Catalog"], "summary": "Active permission details", "responses": {"200": {"description": "OK"}}}},
        "/ledger/convert": {"post": {"security": [{"BearerAuth": []}], "tags": ["Ledger"], "summary": "Convert one payment to EUR", "responses": {"200": {"description": "OK"}}}},
        "/ledger/preview": {"post": {"security": [{"BearerAuth": []}], "tags": ["Ledger"], "summary": "Preview ledger totals", "responses": {"200": {"description": "OK"}}}},
        "/documents/url": {"get": {"security": [{"BearerAuth": []}], "tags": ["Documents"], "summary": "Signed document URL", "responses": {"200": {"description": "OK"}}}},
        "/portal/overview": {"get": {"security": [{"BearerAuth": []}], "tags": ["Portal"], "summary": "Client portal overview", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Agency Back-Office API",
	Description:      "Flights, money transfers and translations with their EUR ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
