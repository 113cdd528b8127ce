package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("s3cret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret1" {
		t.Fatalf("expected password to be hashed")
	}

	if !Verify("s3cret1", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if Verify("wrong", hash) {
		t.Fatalf("expected mismatching password to fail")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("expected malformed hash to fail verification")
	}
	if Verify("anything", "") {
		t.Fatalf("expected empty hash to fail verification")
	}
}

func TestHash_Salted(t *testing.T) {
	a, err := Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}
