package generate_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panagiotisptr/inject/generate"
)

const storeInterface = "github.com/panagiotisptr/inject/example/kv.Store"

func Test_Render_StdlibInterface(t *testing.T) {
	src, err := generate.NewGenerator().Render("io.ReadWriter", "proxies", "ReadWriterProxy", "")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "// Code generated by proxygen. DO NOT EDIT.")
	assert.Contains(t, out, "package proxies")
	assert.Contains(t, out, `importio0 "io"`)
	assert.Contains(t, out, "func NewReadWriterProxy(impl importio0.ReadWriter) *ReadWriterProxy {")
	// embedded interfaces contribute their methods
	assert.Contains(t, out, "func (p *ReadWriterProxy) Read(arg0 []byte) (int, error) {")
	assert.Contains(t, out, "func (p *ReadWriterProxy) Write(arg0 []byte) (int, error) {")
	assert.Contains(t, out, "return caster.Cast[int](nil), err")
}

func Test_Render_MatchesCheckedInProxy(t *testing.T) {
	dir := filepath.Join("..", "example", "kv", "kvproxy")
	src, err := generate.NewGenerator().Render(storeInterface, "kvproxy", "StoreProxy", dir)
	require.NoError(t, err)

	expected, err := os.ReadFile(filepath.Join("..", "example", "kv", "kvproxy", "store_proxy.go"))
	require.NoError(t, err)

	assert.Equal(t, string(expected), string(src))
}

func Test_Render_VariadicAndVoidMethods(t *testing.T) {
	src, err := generate.NewGenerator().Render(storeInterface, "kvproxy", "StoreProxy", "")
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "func (p *StoreProxy) Keys(arg0 ...string) []string {")
	assert.Contains(t, out, "Keys(caster.CastAt[[]string](args, 0)...)")
	assert.Contains(t, out, "func (p *StoreProxy) Set(arg0 string, arg1 string) {")
	assert.Contains(t, out, "panic(err)")
}

func Test_Render_SamePackageLeavesLocalTypesUnqualified(t *testing.T) {
	src, err := generate.NewGenerator().Render(storeInterface, "kv", "StoreProxy", filepath.Join("..", "example", "kv"))
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "func NewStoreProxy(impl Store) *StoreProxy {")
	assert.NotContains(t, out, "importkv0")
}

func Test_Render_SamePackageNameElsewhereIsQualified(t *testing.T) {
	tests := []struct {
		name      string
		outputDir string
	}{
		{name: "unknown_dir", outputDir: ""},
		{name: "other_dir", outputDir: t.TempDir()},
		{name: "subpackage_dir", outputDir: filepath.Join("..", "example", "kv", "kvproxy")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, err := generate.NewGenerator().Render(storeInterface, "kv", "StoreProxy", tc.outputDir)
			require.NoError(t, err)

			out := string(src)
			assert.Contains(t, out, `importkv0 "github.com/panagiotisptr/inject/example/kv"`)
			assert.Contains(t, out, "func NewStoreProxy(impl importkv0.Store) *StoreProxy {")
		})
	}
}

func Test_GenerateProxy_IntoInterfacePackage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/shapes\n\ngo 1.21\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shape.go"), []byte(`package shapes

type Point struct{ X, Y int }

type Shape interface {
	Origin() Point
}
`), 0o644))

	output := filepath.Join(dir, "shape_proxy.go")
	err := generate.NewGenerator(generate.WithDir(dir)).GenerateProxy("example.com/shapes.Shape", "shapes", "ShapeProxy", output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "func (p *ShapeProxy) Origin() Point {")
	assert.NotContains(t, string(content), "importshapes0")
}

func Test_Render_Errors(t *testing.T) {
	tests := []struct {
		name          string
		interfacePath string
		expect        string
	}{
		{name: "no_package", interfacePath: "Store", expect: "invalid interface path"},
		{name: "trailing_dot", interfacePath: "io.", expect: "invalid interface path"},
		{name: "unknown_package", interfacePath: "github.com/panagiotisptr/inject/nope.Store", expect: "nope"},
		{name: "missing_type", interfacePath: "io.Nope", expect: "interface Nope not found"},
		{name: "not_a_type", interfacePath: "io.EOF", expect: "interface EOF not found"},
		{name: "not_an_interface", interfacePath: "bytes.Buffer", expect: "Buffer is not an interface"},
		{name: "map_type", interfacePath: "github.com/panagiotisptr/inject/interceptor.Object", expect: "Object is not an interface"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := generate.NewGenerator().Render(tc.interfacePath, "proxies", "Proxy", "")
			assert.ErrorContains(t, err, tc.expect)
		})
	}
}

func Test_GenerateProxy_WritesFile(t *testing.T) {
	output := filepath.Join(t.TempDir(), "nested", "read_writer_proxy.go")

	err := generate.NewGenerator().GenerateProxy("io.ReadWriter", "proxies", "ReadWriterProxy", output)
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "type ReadWriterProxy struct")
}

func Test_GenerateAll(t *testing.T) {
	dir := t.TempDir()
	cfg := &generate.Config{
		Package:   "proxies",
		OutputDir: dir,
		Proxies: []generate.ProxyConfig{
			{Interface: "io.ReadWriter", Name: "ReadWriterProxy", Output: "rw.go"},
			{Interface: "fmt.Stringer", Name: "StringerProxy", Output: "stringer.go", Package: "other"},
		},
	}

	require.NoError(t, generate.NewGenerator().GenerateAll(cfg))

	rw, err := os.ReadFile(filepath.Join(dir, "rw.go"))
	require.NoError(t, err)
	assert.Contains(t, string(rw), "package proxies")

	stringer, err := os.ReadFile(filepath.Join(dir, "stringer.go"))
	require.NoError(t, err)
	assert.Contains(t, string(stringer), "package other")
	assert.Contains(t, string(stringer), "func (p *StringerProxy) String() string {")
}

func Test_GenerateAll_WrapsErrors(t *testing.T) {
	cfg := &generate.Config{
		Package:   "proxies",
		OutputDir: t.TempDir(),
		Proxies:   []generate.ProxyConfig{{Interface: "io.Nope", Name: "P", Output: "p.go"}},
	}

	err := generate.NewGenerator().GenerateAll(cfg)

	assert.ErrorContains(t, err, "generating io.Nope")
}
