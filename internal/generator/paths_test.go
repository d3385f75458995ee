package generator

import "testing"

func TestBuildOutputPath(t *testing.T) {
	cases := []struct {
		route string
		want  string
	}{
		{route: "/", want: "index.html"},
		{route: "", want: "index.html"},
		{route: "/silent-majority/", want: "silent-majority/index.html"},
		{route: "/category/politics/", want: "category/politics/index.html"},
	}
	for _, tc := range cases {
		if got := buildOutputPath(tc.route); got != tc.want {
			t.Fatalf("buildOutputPath(%q) = %q, want %q", tc.route, got, tc.want)
		}
	}
}

func TestRoutes(t *testing.T) {
	if got := postRoute("hello"); got != "/hello/" {
		t.Fatalf("postRoute = %q", got)
	}
	if got := categoryRoute("politics"); got != "/category/politics/" {
		t.Fatalf("categoryRoute = %q", got)
	}
	if got := tagRoute("history"); got != "/tag/history/" {
		t.Fatalf("tagRoute = %q", got)
	}
}

func TestJoinOutputPath(t *testing.T) {
	if got := joinOutputPath("dist", "index.html"); got != "dist/index.html" {
		t.Fatalf("joinOutputPath = %q", got)
	}
	if got := joinOutputPath("", "/index.html"); got != "index.html" {
		t.Fatalf("joinOutputPath empty base = %q", got)
	}
}
