package factory_test

import (
	"testing"

	"github.com/katalvlaran/fixture/factory"
)

// widget is the benchmark fixture target: a handful of typical field shapes.
type widget struct {
	ID    int64
	Token string
	Name  string
	Size  int
}

// newWidgetFactory assembles a representative factory: one sequence, one UUID,
// one option-dependent attribute and one constant.
func newWidgetFactory() *factory.Factory[*widget] {
	return factory.New(func(a factory.Attrs) (*widget, error) {
		return &widget{
			ID:    a["id"].(int64),
			Token: a["token"].(string),
			Name:  a["name"].(string),
			Size:  a["size"].(int),
		}, nil
	}).
		Seq("id").
		UUID("token").
		Set("size", 3).
		Opt("prefix", func() (any, error) { return "w", nil }).
		Attr("name", func(o factory.Opts) (any, error) {
			return o["prefix"].(string) + "-widget", nil
		})
}

// BenchmarkBuild measures one full pipeline run with all generator kinds.
func BenchmarkBuild(b *testing.B) {
	f := newWidgetFactory()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Build(nil, nil); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}

// BenchmarkBuild_AllOverridden measures the suppression fast path: every
// registered generator is overridden, so none fires.
func BenchmarkBuild_AllOverridden(b *testing.B) {
	f := newWidgetFactory()
	attrs := factory.Attrs{"id": int64(1), "token": "t", "name": "n", "size": 1}
	opts := factory.Opts{"prefix": "p"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := f.Build(attrs, opts); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}
