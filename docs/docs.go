// Package docs is the OpenAPI document served at /swagger. It is kept by
// hand in the layout swag emits; update it together with the handler
// annotations in cmd/analytics-service.
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
        "/analytics/filtered": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Filtered order listing",
                "parameters": [
                    {"type": "string", "example": "2025-06-01", "name": "start_date", "in": "query"},
                    {"type": "string", "example": "2025-06-30", "name": "end_date", "in": "query"},
                    {"minimum": 1, "type": "integer", "name": "restaurant_id", "in": "query"},
                    {"type": "number", "name": "min_amount", "in": "query"},
                    {"type": "number", "name": "max_amount", "in": "query"},
                    {"maximum": 23, "minimum": 0, "type": "integer", "name": "start_hour", "in": "query"},
                    {"maximum": 23, "minimum": 0, "type": "integer", "name": "end_hour", "in": "query"},
                    {"minimum": 1, "type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"maximum": 100, "minimum": 1, "type": "integer", "default": 20, "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analytics.FilteredPage"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/analytics/restaurant/{id}/trends": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Daily order trends of one restaurant",
                "description": "Lists every day with an order in the range. Day metrics cover the whole day; the summary covers only the range.",
                "parameters": [
                    {"type": "integer", "description": "Restaurant ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "example": "2025-06-01", "name": "start_date", "in": "query", "required": true},
                    {"type": "string", "example": "2025-06-30", "name": "end_date", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/analytics.TrendsReport"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/analytics/top-restaurants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Top 3 restaurants by revenue",
                "parameters": [
                    {"type": "string", "example": "2025-06-01", "name": "start_date", "in": "query", "required": true},
                    {"type": "string", "example": "2025-06-30", "name": "end_date", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/analytics.RestaurantRevenue"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/restaurants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "List restaurants",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "cuisine", "in": "query"},
                    {"type": "string", "name": "location", "in": "query"},
                    {"enum": ["name", "location", "cuisine"], "type": "string", "default": "name", "name": "sort_by", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "default": "asc", "name": "sort_order", "in": "query"},
                    {"minimum": 1, "type": "integer", "default": 1, "name": "page", "in": "query"},
                    {"maximum": 100, "minimum": 1, "type": "integer", "default": 10, "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/restaurant.ListResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        },
        "/restaurants/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Restaurant with its orders",
                "parameters": [
                    {"type": "integer", "description": "Restaurant ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/restaurant.DetailResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httpx.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "analytics.FilteredPage": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "data": {"type": "array", "items": {"$ref": "#/definitions/analytics.OrderRow"}},
                "last_page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "analytics.OrderRow": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "order_amount": {"type": "number"},
                "order_time": {"type": "string"},
                "restaurant": {"$ref": "#/definitions/restaurant.Ref"},
                "restaurant_id": {"type": "integer"}
            }
        },
        "analytics.RestaurantRevenue": {
            "type": "object",
            "properties": {
                "avg_order_value": {"type": "number"},
                "restaurant": {"$ref": "#/definitions/restaurant.Ref"},
                "total_orders": {"type": "integer"},
                "total_revenue": {"type": "number"}
            }
        },
        "analytics.Summary": {
            "type": "object",
            "properties": {
                "avgOrderValue": {"type": "number"},
                "totalOrders": {"type": "integer"},
                "totalRevenue": {"type": "number"}
            }
        },
        "analytics.TrendDay": {
            "type": "object",
            "properties": {
                "avgOrderValue": {"type": "number", "example": 175.25},
                "date": {"type": "string", "example": "2025-06-22"},
                "ordersCount": {"type": "integer", "example": 2},
                "peakHour": {"description": "hour of day (0-23) with the most orders; the lowest hour wins a tie", "type": "integer", "example": 13},
                "revenue": {"type": "number", "example": 350.5}
            }
        },
        "analytics.TrendsReport": {
            "type": "object",
            "properties": {
                "restaurant": {"$ref": "#/definitions/restaurant.Restaurant"},
                "summary": {"$ref": "#/definitions/analytics.Summary"},
                "trends": {"type": "array", "items": {"$ref": "#/definitions/analytics.TrendDay"}}
            }
        },
        "httpx.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "VALIDATION_ERROR"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}},
                "message": {"type": "string", "example": "invalid parameters"}
            }
        },
        "httpx.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/httpx.ErrorDetail"}
            }
        },
        "order.Order": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "order_amount": {"type": "number"},
                "order_time": {"type": "string"},
                "restaurant_id": {"type": "integer"}
            }
        },
        "paging.Meta": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "from": {"description": "1-based index of the first returned row; omitted for an empty page", "type": "integer"},
                "last_page": {"type": "integer"},
                "per_page": {"type": "integer"},
                "to": {"description": "1-based index of the last returned row; omitted for an empty page", "type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "restaurant.Detail": {
            "type": "object",
            "properties": {
                "orders": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}},
                "orders_count": {"type": "integer"},
                "restaurant": {"$ref": "#/definitions/restaurant.Restaurant"},
                "total_revenue": {"type": "number"}
            }
        },
        "restaurant.DetailResponse": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/restaurant.Detail"}
            }
        },
        "restaurant.ListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/restaurant.Restaurant"}},
                "pagination": {"$ref": "#/definitions/paging.Meta"}
            }
        },
        "restaurant.Ref": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "location": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "restaurant.Restaurant": {
            "type": "object",
            "properties": {
                "cuisine": {"type": "string"},
                "id": {"type": "integer"},
                "location": {"type": "string"},
                "name": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BasicAuth": {"type": "basic"}
    }
}`

// SwaggerInfo is registered with swag; main overrides BasePath.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Restaurant Analytics API",
	Description:      "Read-only restaurant listings and order analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
