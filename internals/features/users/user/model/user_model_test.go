package model

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

// Every table keeps its columns prefixed with the table's singular name
// (course_id, course_module_order, quiz_result_score). The users table
// follows the same convention.
func TestUserColumnsCarryTablePrefix(t *testing.T) {
	s, err := schema.Parse(&UserModel{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("failed to parse user model schema: %v", err)
	}
	if s.Table != "users" {
		t.Fatalf("expected table users, got %s", s.Table)
	}

	want := map[string]string{
		"UserID":        "user_id",
		"UserName":      "user_name",
		"UserEmail":     "user_email",
		"UserPassword":  "user_password",
		"UserGoogleID":  "user_google_id",
		"UserIsAdmin":   "user_is_admin",
		"UserIsPaid":    "user_is_paid",
		"UserIsActive":  "user_is_active",
		"UserCreatedAt": "user_created_at",
		"UserUpdatedAt": "user_updated_at",
	}
	for field, column := range want {
		f := s.LookUpField(field)
		if f == nil {
			t.Fatalf("expected field %s on user model", field)
		}
		if f.DBName != column {
			t.Fatalf("expected %s to map to column %s, got %s", field, column, f.DBName)
		}
	}
}
