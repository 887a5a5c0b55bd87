// Package docs holds the Swagger document for the storefront API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "consumes": [
        "application/json"
    ],
    "produces": [
        "application/json"
    ],
    "paths": {
        "/products": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "List products",
                "operationId": "listProducts",
                "responses": {
                    "200": {
                        "description": "Catalog",
                        "schema": {
                            "$ref": "#/definitions/ProductList"
                        }
                    },
                    "500": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "category",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "PRINT",
                            "BINDING"
                        ]
                    }
                ]
            }
        },
        "/products/{name}": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "Get a product by name",
                "operationId": "getProduct",
                "responses": {
                    "200": {
                        "description": "Product",
                        "schema": {
                            "$ref": "#/definitions/Product"
                        }
                    },
                    "404": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "name",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Product name, percent-encoded"
                    }
                ]
            }
        },
        "/shipping/eligibility": {
            "get": {
                "tags": [
                    "Shipping"
                ],
                "summary": "Check free shipping for a postal code",
                "operationId": "shippingEligibility",
                "responses": {
                    "200": {
                        "description": "Outcome",
                        "schema": {
                            "$ref": "#/definitions/ShippingResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "postal_code",
                        "in": "query",
                        "type": "string"
                    }
                ]
            }
        },
        "/print-jobs:quote": {
            "post": {
                "tags": [
                    "Pricing"
                ],
                "summary": "Price a print job",
                "operationId": "quotePrintJob",
                "responses": {
                    "200": {
                        "description": "Quote",
                        "schema": {
                            "$ref": "#/definitions/PrintQuote"
                        }
                    },
                    "400": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "description": "Multipart requests may attach a PDF in the document part; its page count overrides page_count.",
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/PrintJobInput"
                        }
                    }
                ],
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ]
            }
        },
        "/auth/signup": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Create an account",
                "operationId": "signup",
                "responses": {
                    "201": {
                        "description": "Profile",
                        "schema": {
                            "$ref": "#/definitions/UserProfile"
                        }
                    },
                    "400": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    },
                    "409": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SignupInput"
                        }
                    }
                ]
            }
        },
        "/auth/login": {
            "post": {
                "tags": [
                    "Auth"
                ],
                "summary": "Log in",
                "operationId": "login",
                "responses": {
                    "200": {
                        "description": "Session",
                        "schema": {
                            "$ref": "#/definitions/Session"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/LoginInput"
                        }
                    }
                ]
            }
        },
        "/me": {
            "get": {
                "tags": [
                    "Profile"
                ],
                "summary": "Current user profile",
                "operationId": "getProfile",
                "responses": {
                    "200": {
                        "description": "Profile",
                        "schema": {
                            "$ref": "#/definitions/UserProfile"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "patch": {
                "tags": [
                    "Profile"
                ],
                "summary": "Update profile fields",
                "operationId": "patchProfile",
                "responses": {
                    "200": {
                        "description": "Profile",
                        "schema": {
                            "$ref": "#/definitions/UserProfile"
                        }
                    },
                    "400": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UserPatch"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/me/password": {
            "post": {
                "tags": [
                    "Profile"
                ],
                "summary": "Change password",
                "operationId": "changePassword",
                "responses": {
                    "204": {
                        "description": "Changed"
                    },
                    "400": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/PasswordChange"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/cart": {
            "get": {
                "tags": [
                    "Cart"
                ],
                "summary": "Get the cart",
                "operationId": "getCart",
                "responses": {
                    "200": {
                        "description": "Cart snapshot",
                        "schema": {
                            "$ref": "#/definitions/Cart"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Cart"
                ],
                "summary": "Empty the cart",
                "operationId": "clearCart",
                "responses": {
                    "200": {
                        "description": "Cart snapshot",
                        "schema": {
                            "$ref": "#/definitions/Cart"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/cart/items": {
            "post": {
                "tags": [
                    "Cart"
                ],
                "summary": "Add one unit of a product",
                "operationId": "addCartItem",
                "responses": {
                    "200": {
                        "description": "Cart snapshot",
                        "schema": {
                            "$ref": "#/definitions/Cart"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    },
                    "400": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    },
                    "404": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AddToCartRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/cart/items/{name}:increment": {
            "post": {
                "tags": [
                    "Cart"
                ],
                "summary": "Increment a line",
                "operationId": "incrementCartItem",
                "responses": {
                    "200": {
                        "description": "Cart snapshot",
                        "schema": {
                            "$ref": "#/definitions/Cart"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "name",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Product name, percent-encoded"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/cart/items/{name}:decrement": {
            "post": {
                "tags": [
                    "Cart"
                ],
                "summary": "Decrement a line; removes it at zero",
                "operationId": "decrementCartItem",
                "responses": {
                    "200": {
                        "description": "Cart snapshot",
                        "schema": {
                            "$ref": "#/definitions/Cart"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "name",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Product name, percent-encoded"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/cart/items/{name}": {
            "put": {
                "tags": [
                    "Cart"
                ],
                "summary": "Set a line quantity",
                "operationId": "setCartItem",
                "responses": {
                    "200": {
                        "description": "Cart snapshot",
                        "schema": {
                            "$ref": "#/definitions/Cart"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    },
                    "400": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "name",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Product name, percent-encoded"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SetQuantityRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "tags": [
                    "Cart"
                ],
                "summary": "Remove a line",
                "operationId": "removeCartItem",
                "responses": {
                    "200": {
                        "description": "Cart snapshot",
                        "schema": {
                            "$ref": "#/definitions/Cart"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "name",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Product name, percent-encoded"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orders": {
            "post": {
                "tags": [
                    "Orders"
                ],
                "summary": "Check out the cart",
                "operationId": "placeOrder",
                "responses": {
                    "201": {
                        "description": "Order",
                        "schema": {
                            "$ref": "#/definitions/Order"
                        }
                    },
                    "400": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CheckoutInput"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "tags": [
                    "Orders"
                ],
                "summary": "List my orders",
                "operationId": "listOrders",
                "responses": {
                    "200": {
                        "description": "Orders",
                        "schema": {
                            "$ref": "#/definitions/OrderList"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "name": "offset",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orders/by-number/{number}": {
            "get": {
                "tags": [
                    "Orders"
                ],
                "summary": "Get one of my orders by its order number",
                "operationId": "getOrderByNumber",
                "responses": {
                    "200": {
                        "description": "Order",
                        "schema": {
                            "$ref": "#/definitions/Order"
                        }
                    },
                    "404": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "number",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/orders/{order_id}": {
            "get": {
                "tags": [
                    "Orders"
                ],
                "summary": "Get one of my orders",
                "operationId": "getOrder",
                "responses": {
                    "200": {
                        "description": "Order",
                        "schema": {
                            "$ref": "#/definitions/Order"
                        }
                    },
                    "404": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "order_id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/admin/catalog:reload": {
            "post": {
                "tags": [
                    "Admin"
                ],
                "summary": "Reload the catalog from the store",
                "operationId": "reloadCatalog",
                "responses": {
                    "204": {
                        "description": "Reloaded"
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        },
        "/admin/products/{name}": {
            "put": {
                "tags": [
                    "Admin"
                ],
                "summary": "Create or replace a product",
                "operationId": "upsertProduct",
                "responses": {
                    "200": {
                        "description": "Product",
                        "schema": {
                            "$ref": "#/definitions/Product"
                        }
                    },
                    "400": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    },
                    "401": {
                        "description": "Problem",
                        "schema": {
                            "$ref": "#/definitions/Problem"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "name",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Product name, percent-encoded"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/Product"
                        }
                    }
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ]
            }
        }
    },
    "definitions": {
        "Product": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "price": {
                    "type": "integer"
                },
                "category": {
                    "type": "string",
                    "enum": [
                        "PRINT",
                        "BINDING"
                    ]
                },
                "image_res": {
                    "type": "string"
                },
                "image_url": {
                    "type": "string"
                },
                "copy_based": {
                    "type": "boolean"
                }
            }
        },
        "ProductList": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/Product"
                    }
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "CartLine": {
            "type": "object",
            "properties": {
                "product": {
                    "$ref": "#/definitions/Product"
                },
                "quantity": {
                    "type": "integer"
                }
            }
        },
        "Cart": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/CartLine"
                    }
                },
                "total_amount": {
                    "type": "integer"
                },
                "total_quantity": {
                    "type": "integer"
                }
            }
        },
        "AddToCartRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                }
            }
        },
        "SetQuantityRequest": {
            "type": "object",
            "properties": {
                "quantity": {
                    "type": "integer"
                }
            }
        },
        "PrintJobInput": {
            "type": "object",
            "properties": {
                "page_count": {
                    "type": "string"
                },
                "color_mode": {
                    "type": "string",
                    "enum": [
                        "NONE",
                        "BLACK_AND_WHITE",
                        "COLOR"
                    ]
                },
                "duplex": {
                    "type": "boolean"
                },
                "ring_binding": {
                    "type": "boolean"
                },
                "softcover_binding": {
                    "type": "boolean"
                }
            }
        },
        "PrintJob": {
            "type": "object",
            "properties": {
                "page_count": {
                    "type": "integer"
                },
                "color_mode": {
                    "type": "string"
                },
                "duplex": {
                    "type": "boolean"
                },
                "ring_binding": {
                    "type": "boolean"
                },
                "softcover_binding": {
                    "type": "boolean"
                }
            }
        },
        "PrintQuote": {
            "type": "object",
            "properties": {
                "job": {
                    "$ref": "#/definitions/PrintJob"
                },
                "total": {
                    "type": "integer"
                },
                "pages_from_document": {
                    "type": "boolean"
                },
                "document_unreadable": {
                    "type": "boolean"
                }
            }
        },
        "ShippingResponse": {
            "type": "object",
            "properties": {
                "postal_code": {
                    "type": "string"
                },
                "outcome": {
                    "type": "string",
                    "enum": [
                        "missing",
                        "invalid_format",
                        "eligible",
                        "ineligible"
                    ]
                },
                "free_shipping": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "SignupInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "LoginInput": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "UserProfile": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                },
                "updated_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "UserPatch": {
            "type": "object",
            "properties": {
                "first_name": {
                    "type": "string"
                },
                "last_name": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "address": {
                    "type": "string"
                }
            }
        },
        "PasswordChange": {
            "type": "object",
            "properties": {
                "current_password": {
                    "type": "string"
                },
                "new_password": {
                    "type": "string"
                }
            }
        },
        "Session": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "user": {
                    "$ref": "#/definitions/UserProfile"
                }
            }
        },
        "CheckoutInput": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "postal_code": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "use_saved_address": {
                    "type": "boolean"
                },
                "print_job": {
                    "$ref": "#/definitions/PrintJobInput"
                }
            }
        },
        "ShippingDetails": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "postal_code": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "outcome": {
                    "type": "string"
                }
            }
        },
        "Order": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "number": {
                    "type": "string",
                    "example": "ORD-2026-000001"
                },
                "user_id": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/CartLine"
                    }
                },
                "cart_total": {
                    "type": "integer"
                },
                "print_job": {
                    "$ref": "#/definitions/PrintQuote"
                },
                "job_total": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "shipping": {
                    "$ref": "#/definitions/ShippingDetails"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "placed",
                        "cancelled"
                    ]
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "OrderList": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/Order"
                    }
                },
                "total": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                },
                "offset": {
                    "type": "integer"
                }
            }
        },
        "Problem": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "example": "about:blank"
                },
                "title": {
                    "type": "string",
                    "example": "Not Found"
                },
                "status": {
                    "type": "integer",
                    "example": 404
                },
                "detail": {
                    "type": "string"
                },
                "instance": {
                    "type": "string"
                },
                "request_id": {
                    "type": "string"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "in": "header",
            "name": "Authorization"
        },
        "ApiKeyAuth": {
            "type": "apiKey",
            "in": "header",
            "name": "X-API-Key"
        }
    },
    "tags": [
        {
            "name": "Catalog"
        },
        {
            "name": "Cart"
        },
        {
            "name": "Pricing"
        },
        {
            "name": "Shipping"
        },
        {
            "name": "Auth"
        },
        {
            "name": "Profile"
        },
        {
            "name": "Orders"
        },
        {
            "name": "Admin"
        }
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "La Montaña Storefront API",
	Description:      "Print-shop catalog, cart, print pricing, free-shipping check and checkout.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
