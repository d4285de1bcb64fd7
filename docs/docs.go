// Package docs holds the OpenAPI description served at /api/swagger.
// Regenerate with `swag init -g cmd/server/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support",
            "email": "support@crave.app"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["auth"],
                "summary": "User signup",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"type": "object", "properties": {"username": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "display_name": {"type": "string"}}}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/server.Session"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "User login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"type": "object", "properties": {"email": {"type": "string"}, "password": {"type": "string"}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.Session"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/session": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current session",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}}
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Sign out",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/feed/ranked": {
            "get": {
                "tags": ["feed"],
                "summary": "Ranked feed page",
                "parameters": [
                    {"type": "number", "name": "seed", "in": "query", "required": true},
                    {"type": "integer", "name": "offset", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "string", "name": "exclude", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PostPage"}}}
            }
        },
        "/posts/search": {
            "get": {
                "tags": ["feed"],
                "summary": "Search posts",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query", "required": true},
                    {"type": "integer", "name": "offset", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "string", "name": "exclude", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PostPage"}}}
            }
        },
        "/posts/{id}": {
            "get": {
                "tags": ["posts"],
                "summary": "Get a post",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Post"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/posts/{id}/status": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["posts"],
                "summary": "Liked/saved probe",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PostStatusProbe"}}}
            }
        },
        "/posts/{id}/comments": {
            "get": {
                "tags": ["comments"],
                "summary": "Comment threads of a post",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["comments"],
                "summary": "Post a comment or reply",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"type": "object", "properties": {"content": {"type": "string"}, "parent_id": {"type": "string"}}}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Comment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/comments/{id}/report": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["comments"],
                "summary": "Report a comment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/profiles/{id}": {
            "get": {
                "tags": ["profiles"],
                "summary": "Get a profile",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Profile"}}}
            }
        },
        "/profiles/{id}/posts": {
            "get": {
                "tags": ["profiles"],
                "summary": "Approved posts of a profile, newest first",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Post"}}}}
            }
        },
        "/profiles/{id}/follow": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["profiles"],
                "summary": "Follow a profile",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/restaurants/{id}": {
            "get": {
                "tags": ["restaurants"],
                "summary": "Get a restaurant",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Restaurant"}}}
            }
        },
        "/uploads": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["uploads"],
                "summary": "Upload a video post",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "file", "name": "video", "in": "formData", "required": true},
                    {"type": "file", "name": "thumbnail", "in": "formData"},
                    {"type": "string", "name": "caption", "in": "formData"},
                    {"type": "string", "name": "recipe", "in": "formData"},
                    {"type": "string", "name": "restaurant_id", "in": "formData"}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Post"}}}
            }
        },
        "/media/sign": {
            "get": {
                "tags": ["uploads"],
                "summary": "Sign a private media key",
                "parameters": [{"type": "string", "name": "key", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.SignedURL"}}}
            }
        },
        "/admin/posts/{id}/approve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Approve a post",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Post"}}}
            }
        },
        "/admin/posts/{id}/remove": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admin"],
                "summary": "Remove a post",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Post"}}}
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "code": {"type": "string"}, "details": {"type": "string"}}
        },
        "models.Post": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "video_locator": {"type": "string"},
                "thumbnail_locator": {"type": "string"},
                "caption": {"type": "string"},
                "recipe": {"type": "string"},
                "user_id": {"type": "string"},
                "restaurant_id": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "approved", "removed"]},
                "likes_count": {"type": "integer"},
                "comments_count": {"type": "integer"},
                "liked": {"type": "boolean"},
                "saved": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "models.PostPage": {
            "type": "object",
            "properties": {
                "posts": {"type": "array", "items": {"$ref": "#/definitions/models.Post"}},
                "offset": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        },
        "models.PostStatusProbe": {
            "type": "object",
            "properties": {"post_id": {"type": "string"}, "liked": {"type": "boolean"}, "saved": {"type": "boolean"}, "likes_count": {"type": "integer"}}
        },
        "models.Comment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "post_id": {"type": "string"},
                "user_id": {"type": "string"},
                "parent_id": {"type": "string"},
                "content": {"type": "string"},
                "likes_count": {"type": "integer"},
                "liked": {"type": "boolean"},
                "created_at": {"type": "string"},
                "replies": {"type": "array", "items": {"$ref": "#/definitions/models.Comment"}}
            }
        },
        "models.Profile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "display_name": {"type": "string"},
                "avatar_url": {"type": "string"},
                "bio": {"type": "string"},
                "followers_count": {"type": "integer"},
                "following_count": {"type": "integer"},
                "likes_count": {"type": "integer"}
            }
        },
        "models.Restaurant": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "cuisine": {"type": "string"}, "address": {"type": "string"}, "phone": {"type": "string"}, "website": {"type": "string"}}
        },
        "models.SignedURL": {
            "type": "object",
            "properties": {"url": {"type": "string"}, "expires_in": {"type": "integer"}}
        },
        "server.Session": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "expires_at": {"type": "string"}, "user": {"$ref": "#/definitions/models.Profile"}}
        }
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
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Crave API",
	Description:      "Short food video feed: ranked and scoped feeds, reactions, comments, uploads and moderation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
