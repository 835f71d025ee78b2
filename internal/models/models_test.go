package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

// ============================================================================
// Skills Parsing Tests
// ============================================================================

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"comma separated", "React, Go, SQL", []string{"React", "Go", "SQL"}},
		{"empty string", "", []string{}},
		{"only separators", " , ,, ", []string{}},
		{"single skill", "Go", []string{"Go"}},
		{"keeps order and inner spaces", " Machine Learning ,Go", []string{"Machine Learning", "Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSkills(tt.in)
			if got == nil {
				t.Fatal("ParseSkills returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseSkills(%q) = %#v, want %#v", tt.in, got, tt.want)
			}
		})
	}
}

// ============================================================================
// JSON Decoding Tests
// ============================================================================

func TestPrice_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want Price
	}{
		{`{"pricePerHour":"25.50"}`, "25.50"},
		{`{"pricePerHour":40}`, "40"},
		{`{"pricePerHour":12.75}`, "12.75"},
		{`{"pricePerHour":null}`, ""},
		{`{}`, ""},
	}

	for _, tt := range tests {
		var p Project
		if err := json.Unmarshal([]byte(tt.in), &p); err != nil {
			t.Fatalf("Unmarshal(%s) error: %v", tt.in, err)
		}
		if p.PricePerHour != tt.want {
			t.Errorf("Unmarshal(%s) price = %q, want %q", tt.in, p.PricePerHour, tt.want)
		}
	}
}

func TestUser_DecodesNestedRequestsWithAnyIDType(t *testing.T) {
	raw := `{"id":1,"firstName":"Amal","role":"freelancer","request":[` +
		`{"projectId":10,"userId":1,"status":"pending"},` +
		`{"projectId":"11","userId":"1","status":"accepted"},` +
		`{"projectId":null,"status":"pending"}]}`

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	want := []Request{
		{ProjectID: "10", UserID: "1", Status: RequestPending},
		{ProjectID: "11", UserID: "1", Status: RequestAccepted},
		{ProjectID: "", Status: RequestPending},
	}
	if !reflect.DeepEqual(u.Requests, want) {
		t.Errorf("Requests = %+v, want %+v", u.Requests, want)
	}

	var bad Request
	if err := json.Unmarshal([]byte(`{"projectId":{"x":1}}`), &bad); err == nil {
		t.Error("expected an error for an object id")
	}
}

func TestUser_DecodesNestedRating(t *testing.T) {
	raw := `{"id":7,"email":"a@b.c","firstName":"Amal","lastName":"Ben","role":"freelancer","rating":{"id":1,"rating":4},"password":"secret"}`

	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if u.Rating == nil || u.Rating.Rating != 4 {
		t.Fatalf("Rating = %+v, want rating 4", u.Rating)
	}
	if u.Password != "" {
		t.Error("Password should never be decoded")
	}
	if u.FullName() != "Amal Ben" {
		t.Errorf("FullName() = %q, want %q", u.FullName(), "Amal Ben")
	}
}

// ============================================================================
// Role / Status Tests
// ============================================================================

func TestUser_ShowsRating(t *testing.T) {
	rating := &Rating{ID: 1, Rating: 5}

	tests := []struct {
		name string
		user User
		want bool
	}{
		{"freelancer with rating", User{Role: RoleFreelancer, Rating: rating}, true},
		{"freelancer without rating", User{Role: RoleFreelancer}, false},
		{"recruiter with rating", User{Role: RoleRecruiter, Rating: rating}, false},
		{"admin with rating", User{Role: RoleAdmin, Rating: rating}, false},
	}

	for _, tt := range tests {
		if got := tt.user.ShowsRating(); got != tt.want {
			t.Errorf("%s: ShowsRating() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestUser_Stars(t *testing.T) {
	u := User{Role: RoleFreelancer, Rating: &Rating{Rating: 3}}
	if got := u.Stars(); got != "★★★☆☆" {
		t.Errorf("Stars() = %q, want ★★★☆☆", got)
	}

	u.Rating.Rating = 9
	if got := u.Stars(); got != "★★★★★" {
		t.Errorf("Stars() with out of range rating = %q, want 5 stars", got)
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range Roles {
		if !r.Valid() {
			t.Errorf("%s should be valid", r)
		}
	}
	if Role("superuser").Valid() {
		t.Error("superuser should not be a valid role")
	}
}

func TestProjectStatus_Vocabularies(t *testing.T) {
	// listing statuses other than pending are not accepted by the edit endpoint
	if StatusOpen.Editable() || StatusClosed.Editable() {
		t.Error("open/closed should not be editable statuses")
	}
	for _, s := range EditableStatuses {
		if !s.Editable() {
			t.Errorf("%s should be editable", s)
		}
	}
}

func TestProject_OwnerName(t *testing.T) {
	p := Project{}
	if p.OwnerName() != "N/A" {
		t.Errorf("OwnerName() without user = %q, want N/A", p.OwnerName())
	}
	p.User = &User{FirstName: "Sami", LastName: "K"}
	if p.OwnerName() != "Sami K" {
		t.Errorf("OwnerName() = %q, want Sami K", p.OwnerName())
	}
}
