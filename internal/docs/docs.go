// Package docs holds the OpenAPI document served at /swagger. It follows the
// swag output layout and is kept in step with the handler annotations by hand;
// router tests check every /api route is documented.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/picks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["picks"],
                "summary": "List weekly picks",
                "parameters": [
                    {"type": "integer", "description": "Page number (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default 25, max 100)", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Paginated picks", "schema": {"$ref": "#/definitions/pagination.PageResponse-models_Pick"}},
                    "400": {"description": "Invalid pagination", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/picks/daily": {
            "get": {
                "description": "Stored weekly picks merged with live price and change. Never regenerates.",
                "produces": ["application/json"],
                "tags": ["picks"],
                "summary": "Daily picks",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.DailyPicksResponse"}},
                    "404": {"description": "Picks missing or outdated", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/picks/generate": {
            "post": {
                "description": "Ask the model for this week's most popular stocks and replace the stored list",
                "produces": ["application/json"],
                "tags": ["picks"],
                "summary": "Generate weekly picks",
                "parameters": [
                    {"type": "string", "enum": ["openai", "gemini"], "description": "Model provider: openai or gemini (default from PICKS_PROVIDER)", "name": "provider", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.GeneratePicksResponse"}},
                    "400": {"description": "Unknown provider", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Model failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "No model credentials configured", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/rationale": {
            "post": {
                "description": "Company description plus buy and sell cases whose probabilities sum to exactly 100",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["insight"],
                "summary": "AI rationale",
                "parameters": [
                    {"description": "Instrument and its latest quote", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RationaleRequest"}}
                ],
                "responses": {
                    "200": {"description": "Normalized insight", "schema": {"$ref": "#/definitions/models.AIInsight"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "502": {"description": "Model failed; retry", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "503": {"description": "No model credentials configured", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/yahoo": {
            "get": {
                "description": "Price, percent change, intraday series and description merged from the quote, chart and profile sources. Total upstream failure still answers 200 with null fields and an error diagnostic.",
                "produces": ["application/json"],
                "tags": ["market"],
                "summary": "Market snapshot",
                "parameters": [
                    {"type": "string", "description": "Ticker symbol, e.g. AAPL or ^GSPC", "name": "symbol", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Merged snapshot", "schema": {"$ref": "#/definitions/models.MarketSnapshot"}},
                    "400": {"description": "Missing or invalid symbol", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.DailyPicksResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "picks": {"type": "array", "items": {"$ref": "#/definitions/models.DailyPick"}}
            }
        },
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"}
            }
        },
        "handlers.GeneratePicksResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "hasGeminiKey": {"type": "boolean"},
                "hasOpenAIKey": {"type": "boolean"},
                "ok": {"type": "boolean"}
            }
        },
        "handlers.RationaleRequest": {
            "type": "object",
            "required": ["symbol"],
            "properties": {
                "changePct": {"type": "number"},
                "name": {"type": "string", "maxLength": 200},
                "price": {"type": "number"},
                "symbol": {"type": "string"}
            }
        },
        "models.AIInsight": {
            "type": "object",
            "properties": {
                "buy": {"type": "string"},
                "buyProbability": {"type": "number", "maximum": 100, "minimum": 0},
                "companyDescription": {"type": "string"},
                "sell": {"type": "string"},
                "sellProbability": {"type": "number", "maximum": 100, "minimum": 0}
            }
        },
        "models.DailyPick": {
            "type": "object",
            "properties": {
                "buySellScore": {"type": "integer"},
                "changePct": {"type": "number"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "reason": {"type": "string"},
                "ticker": {"type": "string"}
            }
        },
        "models.MarketSnapshot": {
            "type": "object",
            "properties": {
                "changePct": {"type": "number"},
                "error": {"type": "string"},
                "price": {"type": "number"},
                "spark": {"type": "array", "items": {"type": "number"}},
                "yahooDesc": {"type": "string"}
            }
        },
        "models.Pick": {
            "type": "object",
            "properties": {
                "buySellScore": {"type": "integer"},
                "createdAt": {"type": "string"},
                "generatedAt": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "reason": {"type": "string"},
                "ticker": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "pagination.PageResponse-models_Pick": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.Pick"}},
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalItems": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8787",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Stock Swipe API",
	Description:      "Market snapshots, AI buy/sell insights and weekly popular-stock picks for the swipe-to-browse client.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
