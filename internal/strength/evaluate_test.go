package strength

import "testing"

func TestEvaluate_Range(t *testing.T) {
	passwords := []string{
		"",
		"a",
		"password",
		"PASSWORD",
		"12345678",
		"aaaaaaaaaaaaaaaaaaaaaaaa",
		"abcdefghijklmnopqrstuvwxyz",
		"zyxwvutsrqponmlkjihgfedcba",
		"Tr0ub4dor&3",
		"correct horse battery staple",
		"P@ssw0rd!P@ssw0rd!P@ssw0rd!",
		"пароль",
		"密码12345",
		"!!!###$$$",
		"\t \n",
	}

	for _, p := range passwords {
		score := Evaluate(p)
		if score < MinScore || score > MaxScore {
			t.Errorf("Evaluate(%q) = %v, expected value in [0, 100]", p, score)
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	passwords := []string{"", "a", "Tr0ub4dor&3", "пароль123", "aaabbbccc"}

	for _, p := range passwords {
		first := Evaluate(p)
		second := Evaluate(p)
		if first != second {
			t.Errorf("Evaluate(%q) not deterministic: %v != %v", p, first, second)
		}
	}
}

func TestEvaluate_EmptyPassword(t *testing.T) {
	if score := Evaluate(""); score != 0 {
		t.Errorf("Evaluate(\"\") = %v, expected 0", score)
	}
}

func TestEvaluate_RelativeOrdering(t *testing.T) {
	tests := []struct {
		weaker   string
		stronger string
	}{
		{"abc", "abcdefgh"},                  // longer beats shorter
		{"password", "Password1!"},           // class diversity helps
		{"aaaaaaaaaa", "aXb3qZ9!mP"},         // repetition hurts
		{"abcdefghij", "aXb3qZ9!mP"},         // sequences hurt
		{"12345678", "19283746"},             // sequential digits hurt
		{"x", "correct horse battery stap"},  // trivial vs long passphrase
	}

	for _, tt := range tests {
		weak := Evaluate(tt.weaker)
		strong := Evaluate(tt.stronger)
		if weak >= strong {
			t.Errorf("Evaluate(%q) = %v should be below Evaluate(%q) = %v",
				tt.weaker, weak, tt.stronger, strong)
		}
	}
}

func TestEvaluate_DiversePasswordScoresHigh(t *testing.T) {
	score := Evaluate("kV7!mQ2@xR9#pL4$")
	if score < 80 {
		t.Errorf("Expected long diverse password to score at least 80, got %v", score)
	}
}

func TestEvaluate_RepeatedRunesScoreLow(t *testing.T) {
	score := Evaluate("aaaaaaaaaaaaaaaa")
	if score > 40 {
		t.Errorf("Expected single-class repeated password to score at most 40, got %v", score)
	}
}
