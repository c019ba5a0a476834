package service

import (
	"context"
	"testing"

	"mindconnect/internal/auth"
	"mindconnect/internal/domain"
	"mindconnect/internal/models"
	"mindconnect/internal/repository"
)

type countingVerifier struct {
	auth.BcryptVerifier
	calls int
}

func (v *countingVerifier) Verify(hash, plain string) bool {
	v.calls++
	return v.BcryptVerifier.Verify(hash, plain)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	hash, err := auth.HashPassword("Student@123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	db.Create(&models.User{Email: "sarah@uni.edu", PasswordHash: hash, Role: domain.RoleStudent, FullName: "Sarah"})
	verifier := &countingVerifier{}
	svc := NewAuthService(repository.NewUserRepository(db), verifier)
	ctx := context.Background()

	u, err := svc.Login(ctx, decode[LoginInput](t, `{"email": " Sarah@UNI.edu ", "password": "Student@123"}`))
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Role != domain.RoleStudent {
		t.Errorf("user = %+v", u)
	}

	for body, code := range map[string]string{
		`{"email": "sarah@uni.edu"}`:                domain.CodeMissingFields,
		`{"email": 5, "password": "x"}`:             domain.CodeMissingFields,
		`{"email": "sarah@uni.edu", "password": 1}`: domain.CodeMissingFields,
		`{"email": "sarah", "password": "x"}`:       domain.CodeInvalidEmail,
	} {
		_, err = svc.Login(ctx, decode[LoginInput](t, body))
		wantCode(t, err, domain.KindValidation, code)
	}

	verifier.calls = 0
	_, wrongPassword := svc.Login(ctx, decode[LoginInput](t, `{"email": "sarah@uni.edu", "password": "nope"}`))
	_, unknownEmail := svc.Login(ctx, decode[LoginInput](t, `{"email": "ghost@uni.edu", "password": "nope"}`))
	wantCode(t, wrongPassword, domain.KindUnauthorized, domain.CodeInvalidCredentials)
	wantCode(t, unknownEmail, domain.KindUnauthorized, domain.CodeInvalidCredentials)
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Errorf("errors differ: %q vs %q", wrongPassword, unknownEmail)
	}
	if verifier.calls != 2 {
		t.Errorf("verifier calls = %d, want one per attempt", verifier.calls)
	}
}
