// Package swagger holds the OpenAPI document served at /swagger.
//
// It mirrors the handler annotations; `go generate` rebuilds it with swag.
package swagger

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
        "/inventory/products": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "List Products",
                "produces": [
                    "application/json"
                ],
                "description": "Lists catalog products ordered by code, optionally filtered by reconciliation state or a text query.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "NOT_COUNTED, PARTIAL or COMPLETE",
                        "name": "state",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Substring of code, alias or name",
                        "name": "q",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/catalog.Product"
                            }
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Create Product",
                "produces": [
                    "application/json"
                ],
                "description": "Creates a product. The code is generated when empty or when regenerate is set.",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Product",
                        "name": "product",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inventory.Draft"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Product"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/inventory/products/lookup/{code}": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Lookup Scanned Code",
                "produces": [
                    "application/json"
                ],
                "description": "Resolves a code by exact code, exact alias, then alias containing the code.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Scanned code",
                        "name": "code",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Product"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/inventory/products/{id}": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Get Product",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Product ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Product"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "description": "Edits the descriptive fields and total. The code is kept unless the body carries another one or sets regenerate.",
                "summary": "Update Product",
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Product ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Product",
                        "name": "product",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inventory.Draft"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Product"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Delete Product",
                "produces": [
                    "application/json"
                ],
                "description": "Removes a product. Removing an unknown id succeeds.",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Product ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/inventory/products/{id}/count": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Count Product",
                "produces": [
                    "application/json"
                ],
                "description": "DECREMENT counts units (takes them off the pending stock); INCREMENT undoes a count.",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Product ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Operation",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inventory.CountRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inventory.CountResponse"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/inventory/products/{id}/reset": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Reset Count",
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Product ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Product"
                        }
                    }
                }
            }
        },
        "/inventory/codes/preview": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Preview Code",
                "produces": [
                    "application/json"
                ],
                "description": "Returns the next free code for a category, branch and name. Nothing is reserved.",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Code input",
                        "name": "input",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/codegen.Input"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/inventory/match": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Match Reference",
                "produces": [
                    "application/json"
                ],
                "description": "Resolves a name and optional code to a product using exact and partial code and name matching.",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Reference",
                        "name": "reference",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/matcher.Reference"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/matcher.Candidate"
                        }
                    },
                    "404": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/inventory/import": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Import Products",
                "produces": [
                    "application/json"
                ],
                "description": "Imports products from a JSON grid ({\"rows\": [[header...], [cells...]]}) or a text/csv body.",
                "consumes": [
                    "application/json",
                    "text/csv"
                ],
                "parameters": [
                    {
                        "description": "Grid",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inventory.ImportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inventory.ImportResult"
                        }
                    },
                    "400": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/inventory/restock": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Restock From Line Items",
                "produces": [
                    "application/json"
                ],
                "description": "Plans line items (posted or read from a bucket object) against the catalog. The plan is applied only with confirm=true and dry_run=false.",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Restock request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inventory.RestockRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inventory.RestockResponse"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/inventory/export": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Export Catalog",
                "produces": [
                    "application/json"
                ],
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/inventory.ExportInfo"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/inventory/summary": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "inventory"
                ],
                "summary": "Counting Progress",
                "produces": [
                    "application/json"
                ],
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Summary"
                        }
                    }
                }
            }
        },
        "/audit": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "audit"
                ],
                "summary": "Run Catalog Audit",
                "produces": [
                    "application/json"
                ],
                "description": "Checks codes, quantity invariants and the products table schema. With export=true the catalog snapshot is also written to the bucket.",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Write a catalog snapshot",
                        "name": "export",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/audit.Report"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/audit/codes": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "audit"
                ],
                "summary": "Check Codes",
                "produces": [
                    "application/json"
                ],
                "description": "Lists duplicate, malformed and empty product codes.",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/checks.CodeReport"
                        }
                    }
                }
            }
        },
        "/audit/quantities": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "audit"
                ],
                "summary": "Check Quantities",
                "produces": [
                    "application/json"
                ],
                "description": "Lists products whose counted quantity is negative or above the total.",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/checks.Finding"
                            }
                        }
                    }
                }
            }
        },
        "/audit/schema": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "audit"
                ],
                "summary": "Check Schema",
                "produces": [
                    "application/json"
                ],
                "description": "Checks that the products table matches the persisted model.",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/checks.SchemaReport"
                        }
                    },
                    "500": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/station/ws": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "tags": [
                    "station"
                ],
                "summary": "Scanner Station",
                "produces": [
                    "application/json"
                ],
                "description": "Websocket stream of scanner keys. Each connection is an independent counting session.",
                "parameters": [],
                "responses": {
                    "101": {
                        "description": "Switching Protocols"
                    },
                    "426": {
                        "description": "Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "catalog.Product": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "alias": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "branch": {
                    "type": "string"
                },
                "total_quantity": {
                    "type": "string",
                    "example": "3"
                },
                "counted_quantity": {
                    "type": "string",
                    "example": "3"
                },
                "last_counted_at": {
                    "type": "string"
                }
            }
        },
        "catalog.Summary": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "not_counted": {
                    "type": "integer"
                },
                "partial": {
                    "type": "integer"
                },
                "complete": {
                    "type": "integer"
                }
            }
        },
        "codegen.Input": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "branch": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "exclude_id": {
                    "type": "string"
                }
            }
        },
        "matcher.Reference": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                }
            }
        },
        "matcher.Candidate": {
            "type": "object",
            "properties": {
                "product": {
                    "$ref": "#/definitions/catalog.Product"
                },
                "match_kind": {
                    "type": "string"
                },
                "confidence": {
                    "type": "integer"
                }
            }
        },
        "inventory.Draft": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "alias": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "branch": {
                    "type": "string"
                },
                "total_quantity": {
                    "type": "string",
                    "example": "3"
                },
                "regenerate": {
                    "type": "boolean"
                }
            }
        },
        "inventory.CountRequest": {
            "type": "object",
            "properties": {
                "direction": {
                    "type": "string",
                    "example": "DECREMENT"
                },
                "amount": {
                    "type": "string",
                    "example": "3"
                }
            }
        },
        "inventory.CountResponse": {
            "type": "object",
            "properties": {
                "change": {
                    "$ref": "#/definitions/reconcile.Change"
                },
                "product": {
                    "$ref": "#/definitions/catalog.Product"
                },
                "state": {
                    "type": "string"
                }
            }
        },
        "reconcile.Change": {
            "type": "object",
            "properties": {
                "product_id": {
                    "type": "string"
                },
                "direction": {
                    "type": "string"
                },
                "amount": {
                    "type": "string",
                    "example": "3"
                },
                "before": {
                    "type": "string",
                    "example": "3"
                },
                "after": {
                    "type": "string",
                    "example": "3"
                },
                "at": {
                    "type": "string"
                }
            }
        },
        "inventory.ImportRequest": {
            "type": "object",
            "properties": {
                "rows": {
                    "type": "array",
                    "items": {
                        "type": "array",
                        "items": {}
                    }
                }
            }
        },
        "importer.Issue": {
            "type": "object",
            "properties": {
                "line": {
                    "type": "integer"
                },
                "code": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "inventory.ImportResult": {
            "type": "object",
            "properties": {
                "created": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/catalog.Product"
                    }
                },
                "skipped": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/importer.Issue"
                    }
                },
                "failed": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/importer.Issue"
                    }
                }
            }
        },
        "restock.LineItem": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "quantity": {
                    "type": "string",
                    "example": "3"
                }
            }
        },
        "restock.Action": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string"
                },
                "item": {
                    "$ref": "#/definitions/restock.LineItem"
                },
                "product_id": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "match": {
                    "type": "string"
                },
                "before": {
                    "type": "string",
                    "example": "3"
                },
                "after": {
                    "type": "string",
                    "example": "3"
                }
            }
        },
        "restock.Unresolved": {
            "type": "object",
            "properties": {
                "item": {
                    "$ref": "#/definitions/restock.LineItem"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "restock.Summary": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "integer"
                },
                "matched": {
                    "type": "integer"
                },
                "unresolved": {
                    "type": "integer"
                },
                "products": {
                    "type": "integer"
                },
                "quantity": {
                    "type": "string",
                    "example": "3"
                },
                "by_kind": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                }
            }
        },
        "restock.Plan": {
            "type": "object",
            "properties": {
                "actions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/restock.Action"
                    }
                },
                "unresolved": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/restock.Unresolved"
                    }
                },
                "summary": {
                    "$ref": "#/definitions/restock.Summary"
                }
            }
        },
        "restock.Failure": {
            "type": "object",
            "properties": {
                "action": {
                    "$ref": "#/definitions/restock.Action"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "restock.Result": {
            "type": "object",
            "properties": {
                "executed": {
                    "type": "boolean"
                },
                "applied": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/restock.Action"
                    }
                },
                "failed": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/restock.Failure"
                    }
                }
            }
        },
        "inventory.RestockRequest": {
            "type": "object",
            "properties": {
                "object": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/restock.LineItem"
                    }
                },
                "dry_run": {
                    "type": "boolean"
                },
                "confirm": {
                    "type": "boolean"
                }
            }
        },
        "inventory.RestockResponse": {
            "type": "object",
            "properties": {
                "plan": {
                    "$ref": "#/definitions/restock.Plan"
                },
                "result": {
                    "$ref": "#/definitions/restock.Result"
                }
            }
        },
        "inventory.ExportInfo": {
            "type": "object",
            "properties": {
                "object": {
                    "type": "string"
                },
                "products": {
                    "type": "integer"
                },
                "size": {
                    "type": "integer"
                },
                "summary": {
                    "$ref": "#/definitions/catalog.Summary"
                },
                "at": {
                    "type": "string"
                }
            }
        },
        "checks.Finding": {
            "type": "object",
            "properties": {
                "product_id": {
                    "type": "string"
                },
                "code": {
                    "type": "string"
                },
                "detail": {
                    "type": "string"
                }
            }
        },
        "checks.CodeReport": {
            "type": "object",
            "properties": {
                "duplicates": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                },
                "malformed": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/checks.Finding"
                    }
                },
                "empty": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/checks.Finding"
                    }
                },
                "manual": {
                    "type": "integer"
                }
            }
        },
        "checks.SchemaReport": {
            "type": "object",
            "properties": {
                "table": {
                    "type": "string"
                },
                "matched": {
                    "type": "boolean"
                },
                "missing_columns": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "type_mismatches": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "audit.Report": {
            "type": "object",
            "properties": {
                "products": {
                    "type": "integer"
                },
                "summary": {
                    "$ref": "#/definitions/catalog.Summary"
                },
                "codes": {
                    "$ref": "#/definitions/checks.CodeReport"
                },
                "quantities": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/checks.Finding"
                    }
                },
                "schema": {
                    "$ref": "#/definitions/checks.SchemaReport"
                },
                "healthy": {
                    "type": "boolean"
                },
                "export": {
                    "$ref": "#/definitions/inventory.ExportInfo"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Warehouse Counter API",
	Description:      "API for counting warehouse inventory with barcode scanners.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
