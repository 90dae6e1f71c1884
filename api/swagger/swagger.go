package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "EE Department Management API",
        "description": "Backend for the Electrical Engineering department: accounts, levels, sections, timetables, announcements, materials, room bookings and attendance.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Health", "description": "Liveness and connectivity diagnostics"},
        {"name": "Users", "description": "Account registration and moderation"},
        {"name": "Academic", "description": "Levels and sections"},
        {"name": "Timetable", "description": "Weekly timetable entries"},
        {"name": "Announcements", "description": "Department announcements"},
        {"name": "Materials", "description": "Course material links"},
        {"name": "Bookings", "description": "Room booking requests"},
        {"name": "Attendance", "description": "Attendance records"},
        {"name": "Schema", "description": "Data model description"}
    ],
    "paths": {
        "/": {
            "get": {
                "tags": ["Health"],
                "summary": "Liveness message",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/test": {
            "get": {
                "tags": ["Health"],
                "summary": "Store connectivity diagnostic",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["Users"],
                "summary": "Register an account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "parameters": [
                    {"name": "role", "in": "query", "type": "string", "enum": ["admin", "teacher", "student"]},
                    {"name": "approved", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}}
                }
            }
        },
        "/users/{id}/approve": {
            "patch": {
                "tags": ["Users"],
                "summary": "Set the approved flag",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": false, "schema": {"$ref": "#/definitions/ApproveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/users/{id}/section": {
            "patch": {
                "tags": ["Users"],
                "summary": "Assign a section to a user",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignSectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/levels": {
            "get": {
                "tags": ["Academic"],
                "summary": "List levels",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Level"}}}
                }
            },
            "post": {
                "tags": ["Academic"],
                "summary": "Create a level",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateLevelRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/sections": {
            "get": {
                "tags": ["Academic"],
                "summary": "List sections",
                "parameters": [
                    {"name": "level_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Section"}}}
                }
            },
            "post": {
                "tags": ["Academic"],
                "summary": "Create a section",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSectionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/timetable": {
            "get": {
                "tags": ["Timetable"],
                "summary": "List timetable entries for a section",
                "parameters": [
                    {"name": "section_id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/TimetableEntry"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "post": {
                "tags": ["Timetable"],
                "summary": "Create a timetable entry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTimetableRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/announcements": {
            "get": {
                "tags": ["Announcements"],
                "summary": "List announcements",
                "parameters": [
                    {"name": "audience", "in": "query", "type": "string", "enum": ["all", "admins", "teachers", "students", "level", "section"]},
                    {"name": "level_id", "in": "query", "type": "string"},
                    {"name": "section_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Announcement"}}}
                }
            },
            "post": {
                "tags": ["Announcements"],
                "summary": "Create an announcement",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAnnouncementRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/materials": {
            "get": {
                "tags": ["Materials"],
                "summary": "List materials",
                "parameters": [
                    {"name": "section_id", "in": "query", "type": "string"},
                    {"name": "teacher_id", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Material"}}}
                }
            },
            "post": {
                "tags": ["Materials"],
                "summary": "Create a material link",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateMaterialRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/bookings": {
            "get": {
                "tags": ["Bookings"],
                "summary": "List room bookings",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["pending", "approved", "declined"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/RoomBooking"}}}
                }
            },
            "post": {
                "tags": ["Bookings"],
                "summary": "Request a room booking",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBookingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/bookings/{id}/status": {
            "patch": {
                "tags": ["Bookings"],
                "summary": "Set a booking status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetBookingStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/attendance": {
            "get": {
                "tags": ["Attendance"],
                "summary": "List attendance records",
                "parameters": [
                    {"name": "section_id", "in": "query", "type": "string"},
                    {"name": "student_id", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Attendance"}}}
                }
            },
            "post": {
                "tags": ["Attendance"],
                "summary": "Mark attendance",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAttendanceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/IDResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/schema": {
            "get": {
                "tags": ["Schema"],
                "summary": "Describe the data model",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    },
    "definitions": {
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "teacher", "student"]},
                "approved": {"type": "boolean"},
                "section_id": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "Level": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "Section": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "level_id": {"type": "string"},
                "name": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "TimetableEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "section_id": {"type": "string"},
                "day": {"type": "string", "enum": ["Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"]},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"},
                "room": {"type": "string"},
                "subject": {"type": "string"},
                "teacher_id": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "Announcement": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "body": {"type": "string"},
                "author_id": {"type": "string"},
                "audience": {"type": "string"},
                "level_id": {"type": "string"},
                "section_id": {"type": "string"},
                "pinned": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "Material": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "teacher_id": {"type": "string"},
                "section_id": {"type": "string"},
                "title": {"type": "string"},
                "url": {"type": "string"},
                "description": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "RoomBooking": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "room": {"type": "string"},
                "date": {"type": "string"},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"},
                "purpose": {"type": "string"},
                "requested_by": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "approved", "declined"]},
                "created_at": {"type": "string"}
            }
        },
        "Attendance": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "section_id": {"type": "string"},
                "timetable_id": {"type": "string"},
                "date": {"type": "string"},
                "student_id": {"type": "string"},
                "present": {"type": "boolean"},
                "created_at": {"type": "string"}
            }
        },
        "RegisterUserRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "teacher", "student"]},
                "approved": {"type": "boolean"},
                "section_id": {"type": "string"}
            },
            "required": ["full_name", "email", "password", "role"]
        },
        "ApproveRequest": {
            "type": "object",
            "properties": {
                "approved": {"type": "boolean", "default": true}
            }
        },
        "AssignSectionRequest": {
            "type": "object",
            "properties": {
                "section_id": {"type": "string"}
            },
            "required": ["section_id"]
        },
        "CreateLevelRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "description": {"type": "string"}
            },
            "required": ["name"]
        },
        "CreateSectionRequest": {
            "type": "object",
            "properties": {
                "level_id": {"type": "string"},
                "name": {"type": "string"}
            },
            "required": ["level_id", "name"]
        },
        "CreateTimetableRequest": {
            "type": "object",
            "properties": {
                "section_id": {"type": "string"},
                "day": {"type": "string", "enum": ["Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"]},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"},
                "room": {"type": "string"},
                "subject": {"type": "string"},
                "teacher_id": {"type": "string"}
            },
            "required": ["section_id", "day", "start_time", "end_time", "room", "subject"]
        },
        "CreateAnnouncementRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "body": {"type": "string"},
                "author_id": {"type": "string"},
                "audience": {"type": "string", "enum": ["all", "admins", "teachers", "students", "level", "section"], "default": "all"},
                "level_id": {"type": "string"},
                "section_id": {"type": "string"},
                "pinned": {"type": "boolean"}
            },
            "required": ["title", "body"]
        },
        "CreateMaterialRequest": {
            "type": "object",
            "properties": {
                "teacher_id": {"type": "string"},
                "section_id": {"type": "string"},
                "title": {"type": "string"},
                "url": {"type": "string"},
                "description": {"type": "string"}
            },
            "required": ["teacher_id", "title", "url"]
        },
        "CreateBookingRequest": {
            "type": "object",
            "properties": {
                "room": {"type": "string"},
                "date": {"type": "string"},
                "start_time": {"type": "string"},
                "end_time": {"type": "string"},
                "purpose": {"type": "string"},
                "requested_by": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "approved", "declined"], "default": "pending"}
            },
            "required": ["room", "date", "start_time", "end_time", "requested_by"]
        },
        "SetBookingStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["pending", "approved", "declined"]}
            },
            "required": ["status"]
        },
        "CreateAttendanceRequest": {
            "type": "object",
            "properties": {
                "section_id": {"type": "string"},
                "timetable_id": {"type": "string"},
                "date": {"type": "string"},
                "student_id": {"type": "string"},
                "present": {"type": "boolean", "default": true}
            },
            "required": ["section_id", "date", "student_id"]
        },
        "IDResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "StatusResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
