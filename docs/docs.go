// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/healthz": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/readyz": {
            "get": {
                "tags": [
                    "health"
                ],
                "summary": "Readiness probe",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "503": {
                        "description": "Database not reachable"
                    }
                }
            }
        },
        "/previews/{kind}": {
            "post": {
                "tags": [
                    "previews"
                ],
                "summary": "Preview a document",
                "parameters": [
                    {
                        "type": "string",
                        "enum": [
                            "invoice",
                            "proforma",
                            "estimate",
                            "delivery_challan",
                            "payment_in"
                        ],
                        "description": "Document kind",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Document",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Document preview"
                    },
                    "400": {
                        "description": "Unknown kind or invalid body"
                    },
                    "422": {
                        "description": "Invalid payment allocation"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/previews/{kind}/pdf": {
            "post": {
                "tags": [
                    "previews"
                ],
                "summary": "Render a document as PDF",
                "parameters": [
                    {
                        "type": "string",
                        "enum": [
                            "invoice",
                            "proforma",
                            "estimate",
                            "delivery_challan",
                            "payment_in"
                        ],
                        "description": "Document kind",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Document",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    },
                    {
                        "type": "boolean",
                        "default": false,
                        "description": "Store the PDF and return the export record",
                        "name": "store",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Recipient of the download link (requires store=true)",
                        "name": "email",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Recipient name",
                        "name": "name",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PDF file"
                    },
                    "201": {
                        "description": "Stored export"
                    },
                    "400": {
                        "description": "Unknown kind or invalid body"
                    },
                    "500": {
                        "description": "Rendering or upload failed"
                    },
                    "502": {
                        "description": "Email delivery failed"
                    }
                },
                "produces": [
                    "application/pdf",
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/documents/{kind}/{id}/preview": {
            "get": {
                "tags": [
                    "documents"
                ],
                "summary": "Preview a saved document",
                "parameters": [
                    {
                        "type": "string",
                        "enum": [
                            "invoice",
                            "proforma",
                            "estimate",
                            "delivery_challan",
                            "payment_in"
                        ],
                        "description": "Document kind",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Document ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Document preview"
                    },
                    "404": {
                        "description": "Document not found"
                    },
                    "502": {
                        "description": "Billing api unavailable"
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/documents/{kind}/{id}/pdf": {
            "get": {
                "tags": [
                    "documents"
                ],
                "summary": "Render a saved document as PDF",
                "parameters": [
                    {
                        "type": "string",
                        "enum": [
                            "invoice",
                            "proforma",
                            "estimate",
                            "delivery_challan",
                            "payment_in"
                        ],
                        "description": "Document kind",
                        "name": "kind",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Document ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "default": false,
                        "description": "Store the PDF and return the export record",
                        "name": "store",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Recipient of the download link (requires store=true)",
                        "name": "email",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Recipient name",
                        "name": "name",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PDF file"
                    },
                    "201": {
                        "description": "Stored export"
                    },
                    "404": {
                        "description": "Document not found"
                    },
                    "502": {
                        "description": "Billing api unavailable"
                    }
                },
                "produces": [
                    "application/pdf",
                    "application/json"
                ]
            }
        },
        "/exports": {
            "get": {
                "tags": [
                    "exports"
                ],
                "summary": "List exports",
                "parameters": [
                    {
                        "type": "integer",
                        "default": 0,
                        "description": "Offset for pagination",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Limit for pagination (max 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "List of exports"
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/exports/{id}": {
            "get": {
                "tags": [
                    "exports"
                ],
                "summary": "Get an export",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Export ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Export record"
                    },
                    "400": {
                        "description": "Invalid ID"
                    },
                    "404": {
                        "description": "Export not found"
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/exports/{id}/download": {
            "get": {
                "tags": [
                    "exports"
                ],
                "summary": "Get export download URL",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Export ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Export with download URL"
                    },
                    "404": {
                        "description": "Export not found"
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/exports/{id}/email": {
            "post": {
                "tags": [
                    "exports"
                ],
                "summary": "Email an export",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Export ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Recipient",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.EmailExportRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Email sent"
                    },
                    "400": {
                        "description": "Invalid request"
                    },
                    "404": {
                        "description": "Export not found"
                    },
                    "502": {
                        "description": "Email delivery failed"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ]
            }
        },
        "/products": {
            "get": {
                "tags": [
                    "products"
                ],
                "summary": "List products",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Search text",
                        "name": "search",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 0,
                        "description": "Offset for pagination",
                        "name": "offset",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Limit for pagination (max 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "List of products"
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/products/{id}": {
            "get": {
                "tags": [
                    "products"
                ],
                "summary": "Get a product",
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
                        "description": "Product"
                    },
                    "400": {
                        "description": "Invalid ID"
                    },
                    "404": {
                        "description": "Product not found"
                    }
                },
                "produces": [
                    "application/json"
                ]
            }
        },
        "/products/import": {
            "post": {
                "tags": [
                    "products"
                ],
                "summary": "Import the catalog workbook",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Catalog workbook (.xlsx)",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Import summary"
                    },
                    "400": {
                        "description": "Missing or invalid workbook"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "multipart/form-data"
                ]
            }
        },
        "/products/template": {
            "get": {
                "tags": [
                    "products"
                ],
                "summary": "Download the catalog template",
                "parameters": [],
                "responses": {
                    "200": {
                        "description": "Empty catalog workbook"
                    }
                },
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ]
            }
        },
        "/payments/link": {
            "post": {
                "tags": [
                    "payments"
                ],
                "summary": "Allocate a payment to open invoices",
                "parameters": [
                    {
                        "description": "Payment and open invoices",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Allocation result"
                    },
                    "400": {
                        "description": "Invalid allocation"
                    },
                    "422": {
                        "description": "Allocation exceeds balance or payment"
                    }
                },
                "produces": [
                    "application/json"
                ],
                "consumes": [
                    "application/json"
                ]
            }
        }
    },
    "definitions": {
        "handler.EmailExportRequest": {
            "type": "object",
            "required": [
                "email"
            ],
            "properties": {
                "email": {
                    "type": "string",
                    "example": "accounts@ashatraders.in"
                },
                "name": {
                    "type": "string",
                    "example": "Asha Traders"
                }
            }
        },
        "handler.APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean",
                    "example": false
                },
                "error": {
                    "$ref": "#/definitions/handler.APIError"
                }
            }
        },
        "handler.PagMeta": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Billdesk Document API",
	Description:      "Previews, PDF exports and payment allocation for GST sales documents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
