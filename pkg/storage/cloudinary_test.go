package storage

import "testing"

func TestExtractPublicID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{
			url:  "https://res.cloudinary.com/demo/image/upload/v1712345678/students/ahmad-1a2b3c4d.webp",
			want: "students/ahmad-1a2b3c4d",
		},
		{
			url:  "https://res.cloudinary.com/demo/image/upload/teachers/siti.jpg",
			want: "teachers/siti",
		},
		{
			url:  "https://example.com/no/upload/segment.png",
			want: "segment",
		},
		{
			url:  "https://res.cloudinary.com/demo/image/fetch/v1/foto.png",
			want: "",
		},
		{
			url:  "::notaurl::",
			want: "",
		},
	}

	for _, tc := range cases {
		if got := extractPublicID(tc.url); got != tc.want {
			t.Errorf("extractPublicID(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}
