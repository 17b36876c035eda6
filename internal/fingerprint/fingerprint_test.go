package fingerprint

import "testing"

func TestSum(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    string
	}{
		{
			name:    "known vector",
			content: []byte("hello"),
			want:    "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824",
		},
		{
			name:    "empty content",
			content: nil,
			want:    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum(tt.content); got != tt.want {
				t.Errorf("Sum() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSum_Deterministic(t *testing.T) {
	content := []byte("<html><body>Community Day</body></html>")
	if Sum(content) != Sum(content) {
		t.Error("Sum should be deterministic for identical content")
	}
	if Sum(content) == Sum(append(content, ' ')) {
		t.Error("Sum should differ for different content")
	}
}
