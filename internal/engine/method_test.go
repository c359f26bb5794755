package engine

import "testing"

func TestTelexMethod_IsToneKey(t *testing.T) {
	tests := []struct {
		char     rune
		expected bool
	}{
		{'s', true}, {'f', true}, {'r', true}, {'x', true}, {'j', true},
		{'z', true}, {'S', true},
		{'a', false}, {'b', false}, {'1', false},
	}
	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			if got := telexMethod.IsToneKey(tt.char); got != tt.expected {
				t.Errorf("IsToneKey(%c) = %v, want %v", tt.char, got, tt.expected)
			}
		})
	}
}

func TestVniMethod_IsToneKey(t *testing.T) {
	tests := []struct {
		char     rune
		expected bool
	}{
		{'1', true}, {'2', true}, {'3', true}, {'4', true}, {'5', true},
		{'0', true},
		{'6', false}, {'7', false}, {'8', false}, {'a', false},
	}
	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			if got := vniMethod.IsToneKey(tt.char); got != tt.expected {
				t.Errorf("IsToneKey(%c) = %v, want %v", tt.char, got, tt.expected)
			}
		})
	}
}

func TestIsWordBoundary(t *testing.T) {
	tests := []struct {
		method   *Method
		char     rune
		expected bool
	}{
		{telexMethod, ' ', true},
		{telexMethod, '.', true},
		{telexMethod, '1', true}, // digits are boundaries in Telex
		{telexMethod, 'a', false},
		{vniMethod, '1', false}, // digits are tone triggers in VNI, not boundaries
		{vniMethod, ' ', true},
		{vniMethod, 'a', false},
	}
	for _, tt := range tests {
		if got := tt.method.IsWordBoundary(tt.char); got != tt.expected {
			t.Errorf("IsWordBoundary(%c) = %v, want %v", tt.char, got, tt.expected)
		}
	}
}

func TestMethodFor(t *testing.T) {
	if methodFor(Telex) != telexMethod {
		t.Error("methodFor(Telex) should return telexMethod")
	}
	if methodFor(VNI) != vniMethod {
		t.Error("methodFor(VNI) should return vniMethod")
	}
}
