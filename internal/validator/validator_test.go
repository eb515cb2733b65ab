package validator

import (
	"strings"
	"testing"
)

func TestPasswordRuleViolations(t *testing.T) {
	t.Run("strong_password_passes", func(t *testing.T) {
		if v := PasswordRuleViolations("Str0ng!pass"); len(v) != 0 {
			t.Errorf("expected no violations, got %v", v)
		}
	})

	t.Run("all_rules_reported", func(t *testing.T) {
		v := PasswordRuleViolations("")
		if len(v) != 5 {
			t.Fatalf("expected all 5 rules to be reported, got %d: %v", len(v), v)
		}
	})

	t.Run("each_missing_rule_is_named", func(t *testing.T) {
		cases := []struct {
			password string
			want     string
		}{
			{"short1!A", ""}, // 8 chars exactly, all classes: valid
			{"alllower1!", "uppercase"},
			{"ALLUPPER1!", "lowercase"},
			{"NoDigits!!", "number"},
			{"NoSpecial11", "special"},
		}
		for _, tc := range cases {
			v := PasswordRuleViolations(tc.password)
			if tc.want == "" {
				if len(v) != 0 {
					t.Errorf("%q: expected valid, got %v", tc.password, v)
				}
				continue
			}
			found := false
			for _, msg := range v {
				if strings.Contains(msg, tc.want) {
					found = true
				}
			}
			if !found {
				t.Errorf("%q: expected a violation naming %q, got %v", tc.password, tc.want, v)
			}
		}
	})
}

func TestIsDisposableEmail(t *testing.T) {
	if !IsDisposableEmail("user@10minutemail.com") {
		t.Error("expected denylisted domain to be flagged")
	}
	if !IsDisposableEmail("user@TempMail.org") {
		t.Error("expected denylist check to ignore case")
	}
	if IsDisposableEmail("user@example.com") {
		t.Error("expected ordinary domain to pass")
	}
	if IsDisposableEmail("not-an-email") {
		t.Error("expected address without a domain to pass through")
	}
}
