package validate

import "testing"

func TestEmail(t *testing.T) {
	if _, ok := Email("ama@luxeshop.test"); !ok {
		t.Fatal("valid email rejected")
	}
	for _, bad := range []string{"", "nope", "a@b", "a b@c.com"} {
		if _, ok := Email(bad); ok {
			t.Fatalf("accepted %q", bad)
		}
	}
}

func TestQty(t *testing.T) {
	cases := map[string]int{
		"3":    3,
		"0":    0,
		"-5":   -5,
		"":     1,
		"abc":  1,
		"9999": 99,
	}
	for in, want := range cases {
		if got := Qty(in); got != want {
			t.Fatalf("Qty(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestPrice(t *testing.T) {
	if v, ok := Price("12.50"); !ok || v != 12.50 {
		t.Fatalf("Price(12.50) = %v %v", v, ok)
	}
	for _, bad := range []string{"0", "-3", "free"} {
		if _, ok := Price(bad); ok {
			t.Fatalf("accepted %q", bad)
		}
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Smart Watches":  "smart-watches",
		"  Fashion  ":    "fashion",
		"Kids' Clothing": "kids-clothing",
		"A--B":           "a-b",
	}
	for in, want := range cases {
		if got := Slug(in); got != want {
			t.Fatalf("Slug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestID(t *testing.T) {
	if _, ok := ID("fashion-1"); !ok {
		t.Fatal("valid id rejected")
	}
	for _, bad := range []string{"", "a b", "x;y", "../../etc"} {
		if _, ok := ID(bad); ok {
			t.Fatalf("accepted %q", bad)
		}
	}
}

func TestPassword(t *testing.T) {
	if !Password("Passw0rd!") {
		t.Fatal("valid password rejected")
	}
	for _, bad := range []string{"short1!", "alllowercase1!", "NOUPPER no digit", "Password!"} {
		if Password(bad) {
			t.Fatalf("accepted %q", bad)
		}
	}
}
