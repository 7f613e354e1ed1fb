package ninja

import "testing"

func TestBuild_Header(t *testing.T) {
	rule := NewRule("cc", "gcc")

	tests := []struct {
		name  string
		build *Build
		want  string
	}{
		{
			name:  "outputs only",
			build: NewBuild(rule, "a", "b"),
			want:  "build a b: cc\n",
		},
		{
			name:  "explicit only",
			build: NewBuild(rule, "o1", "o2").With("d1", "d2"),
			want:  "build o1 o2: cc d1 d2\n",
		},
		{
			name: "every group",
			build: NewBuild(rule, "out").
				OutputImplicit("out.d").
				With("in").
				WithImplicit("hdr.h").
				WithOrderOnly("gen").
				Validations("lint"),
			want: "build out | out.d: cc in | hdr.h || gen |@ lint\n",
		},
		{
			name:  "order-only without inputs",
			build: NewBuild(rule, "out").WithOrderOnly("dir"),
			want:  "build out: cc || dir\n",
		},
		{
			name:  "validation only",
			build: NewBuild(rule, "out").Validations("v1", "v2"),
			want:  "build out: cc |@ v1 v2\n",
		},
		{
			name: "variables",
			build: NewBuild(rule, "out").
				With("in").
				Dyndep("out.dd").
				Variable("cflags", "-O2"),
			want: "build out: cc in\n  dyndep = out.dd\n  cflags = -O2\n",
		},
		{
			name:  "appends accumulate",
			build: NewBuild(rule, "out").With("a").With("b").WithImplicit("c").WithImplicit("d"),
			want:  "build out: cc a b | c d\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build.String(); got != tt.want {
				t.Errorf("render mismatch:\nwant: %q\ngot:  %q", tt.want, got)
			}
		})
	}
}

func TestBuild_Accessors(t *testing.T) {
	outputs := []string{"a.o"}
	b := NewBuild(NewRule("cc", "gcc"), outputs...).
		With("a.c").
		WithImplicit("a.h").
		WithOrderOnly("gen").
		Validations("check").
		OutputImplicit("a.d")

	outputs[0] = "changed"

	if b.Rule() != "cc" {
		t.Errorf("expected rule cc, got %q", b.Rule())
	}

	checks := []struct {
		name string
		got  []string
		want string
	}{
		{"outputs", b.Outputs(), "a.o"},
		{"implicit outputs", b.ImplicitOutputs(), "a.d"},
		{"dependencies", b.Dependencies(), "a.c"},
		{"implicit dependencies", b.ImplicitDependencies(), "a.h"},
		{"order-only", b.OrderOnlyDependencies(), "gen"},
		{"validations", b.ValidationList(), "check"},
	}

	for _, c := range checks {
		if len(c.got) != 1 || c.got[0] != c.want {
			t.Errorf("%s: expected [%s], got %v", c.name, c.want, c.got)
		}
	}
}

func TestBuildRef_SharesStatement(t *testing.T) {
	f := New()
	ref := f.Rule("cc", "gcc").Build("out")
	alias := ref

	ref.With("a")
	alias.With("b")
	ref.Build().WithImplicit("c")

	want := "build out: cc a b | c\n"
	if got := alias.Build().String(); got != want {
		t.Errorf("render mismatch:\nwant: %q\ngot:  %q", want, got)
	}

	if ref.Index() != 1 {
		t.Errorf("expected build at index 1, got %d", ref.Index())
	}
}

func TestBuildRef_Pool(t *testing.T) {
	f := New()
	link := f.Pool("link", 1)
	f.Rule("ld", "ld").Build("app").Pool(link).OutputImplicit("app.map")

	want := "\npool link\n  depth = 1\n\nrule ld\n  command = ld\n\nbuild app | app.map: ld\n  pool = link\n"
	if got := f.String(); got != want {
		t.Errorf("render mismatch:\nwant: %q\ngot:  %q", want, got)
	}
}
