package auth

import (
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := CheckPassword(hash, "s3cret-pass"); err != nil {
		t.Fatalf("correct password rejected: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	claims := Claims{
		UserID:         "u-1",
		EmployeeNumber: "EMP001",
		Name:           "Asha Fernando",
		RoleName:       RoleHR,
		Root:           false,
	}

	token, err := GenerateToken("test-secret", claims, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	actor := parsed.Actor()
	if actor.UserID != "u-1" || actor.EmployeeNumber != "EMP001" || actor.Role != RoleHR {
		t.Fatalf("claims lost in round trip: %+v", actor)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Fatal("token accepted under wrong secret")
	}
}

func TestTokenExpiry(t *testing.T) {
	token, err := GenerateToken("test-secret", Claims{UserID: "u-1"}, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken("test-secret", token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range AllRoles {
		if !ValidRole(role) {
			t.Fatalf("role %q rejected", role)
		}
	}
	if ValidRole("root") || ValidRole("") {
		t.Fatal("unknown roles must be rejected")
	}
}
