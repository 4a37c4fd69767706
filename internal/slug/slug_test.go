package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"My Post", "my-post"},
		{"  Hello,   World!  ", "hello-world"},
		{"Café Crème", "cafe-creme"},
		{"Lyle's Swift Tips", "lyles-swift-tips"},
		{"SwiftUI & Dart 3.0", "swiftui-dart-3-0"},
		{"Straße", "straße"},
		{"Привет мир", "привет-мир"},
		{"日本語の記事", "日本語の記事"},
		{"ガイド", "ガイド"},
		{"C++", "c"},
		{"---", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.in))
		})
	}
}
