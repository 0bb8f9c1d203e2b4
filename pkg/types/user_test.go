package types

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash equals the cleartext password")
	}

	u := &User{Username: "alice", Password: hash}
	if !u.CheckPassword("hunter2") {
		t.Fatal("correct password rejected")
	}
	if u.CheckPassword("wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestUserSessionFlags(t *testing.T) {
	u := &User{Username: "alice", Active: true}
	if u.IsAuthenticated() {
		t.Fatal("fresh user should not be authenticated")
	}
	u.Authenticated = true
	if !u.IsAuthenticated() {
		t.Fatal("authenticated flag not reported")
	}
	if !u.IsActive() {
		t.Fatal("active flag not reported")
	}
	if u.GetID() != "alice" {
		t.Fatalf("expected login id alice, got %q", u.GetID())
	}
}
