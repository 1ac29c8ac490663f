package utils

import (
    "testing"

    "github.com/golang-jwt/jwt/v5"
)

func TestAccessTokenRoundTrip(t *testing.T) {
    const secret = "test-secret"
    at, err := NewAccessToken(secret, 42, "CUSTOMER", 15)
    if err != nil {
        t.Fatal(err)
    }

    tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        t.Fatalf("issued token does not verify: %v", err)
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        t.Fatal("claims are not MapClaims")
    }
    if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
        t.Fatalf("sub claim = %v, want 42", claims["sub"])
    }
    if role, _ := claims["role"].(string); role != "CUSTOMER" {
        t.Fatalf("role claim = %v, want CUSTOMER", claims["role"])
    }
}

func TestAccessTokenWrongSecretRejected(t *testing.T) {
    at, err := NewAccessToken("secret-a", 1, "ADMIN", 5)
    if err != nil {
        t.Fatal(err)
    }
    tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
        return []byte("secret-b"), nil
    })
    if err == nil && tok.Valid {
        t.Fatal("token signed with secret-a verified with secret-b")
    }
}

func TestPasswordHashing(t *testing.T) {
    hash, err := HashPassword("s3cret", 4)
    if err != nil {
        t.Fatal(err)
    }
    if !VerifyPassword(hash, "s3cret") {
        t.Fatal("correct password rejected")
    }
    if VerifyPassword(hash, "wrong") {
        t.Fatal("wrong password accepted")
    }
}
