package auth

import "testing"

func TestBcryptVerifier(t *testing.T) {
	hash, err := HashPassword("Student@123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	v := BcryptVerifier{}
	if !v.Verify(hash, "Student@123") {
		t.Error("correct password rejected")
	}
	if v.Verify(hash, "student@123") {
		t.Error("wrong password accepted")
	}
	if v.Verify("not-a-hash", "Student@123") {
		t.Error("malformed hash accepted")
	}
}

func TestDummyHashMatchesNothing(t *testing.T) {
	h := DummyHash()
	if h == "" {
		t.Fatal("dummy hash not generated")
	}
	if h != DummyHash() {
		t.Error("dummy hash should be stable")
	}
	if (BcryptVerifier{}).Verify(h, "") {
		t.Error("dummy hash matched empty password")
	}
}
