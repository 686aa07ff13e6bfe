package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/tools/go/packages"

	"github.com/panagiotisptr/inject/templates"
)

// reserved names are the helper methods every generated proxy carries.
var reserved = map[string]bool{"Intercept": true, "Use": true}

type MethodParam string

func (m MethodParam) IsVariadic() bool {
	return strings.HasPrefix(string(m), "...")
}

func (m MethodParam) Type() string {
	if m.IsVariadic() {
		return "[]" + strings.TrimPrefix(string(m), "...")
	}

	return string(m)
}

type MethodData struct {
	Name   string
	Params []MethodParam
	Rets   []string
}

// ReturnsError reports whether the last result is an error, in which case
// pipeline failures are returned through it instead of panicking.
func (m MethodData) ReturnsError() bool {
	return len(m.Rets) > 0 && m.Rets[len(m.Rets)-1] == "error"
}

func (m MethodData) Signature() string {
	parts := make([]string, len(m.Params))
	for i, p := range m.Params {
		parts[i] = fmt.Sprintf("arg%d %s", i, p)
	}

	return strings.Join(parts, ", ")
}

func (m MethodData) Results() string {
	switch len(m.Rets) {
	case 0:
		return ""
	case 1:
		return " " + m.Rets[0]
	}

	return " (" + strings.Join(m.Rets, ", ") + ")"
}

// ForwardArgs lists the arguments handed to the chain. Variadic arguments
// travel as a single slice.
func (m MethodData) ForwardArgs() string {
	var sb strings.Builder
	for i := range m.Params {
		fmt.Fprintf(&sb, ", arg%d", i)
	}

	return sb.String()
}

// CallArgs unpacks the pipeline's arguments for the call on the
// implementation.
func (m MethodData) CallArgs() string {
	parts := make([]string, len(m.Params))
	for i, p := range m.Params {
		parts[i] = fmt.Sprintf("caster.CastAt[%s](args, %d)", p.Type(), i)
		if p.IsVariadic() {
			parts[i] += "..."
		}
	}

	return strings.Join(parts, ", ")
}

func (m MethodData) ResultVars() string {
	parts := make([]string, len(m.Rets))
	for i := range m.Rets {
		parts[i] = fmt.Sprintf("r%d", i)
	}

	return strings.Join(parts, ", ")
}

func (m MethodData) CastReturns() string {
	parts := make([]string, len(m.Rets))
	for i, r := range m.Rets {
		parts[i] = fmt.Sprintf("caster.CastAt[%s](rets, %d)", r, i)
	}

	return strings.Join(parts, ", ")
}

// ZeroReturns is the result list used when the pipeline fails, ending with
// the error itself.
func (m MethodData) ZeroReturns() string {
	parts := make([]string, len(m.Rets))
	for i, r := range m.Rets[:len(m.Rets)-1] {
		parts[i] = fmt.Sprintf("caster.Cast[%s](nil)", r)
	}
	parts[len(parts)-1] = "err"

	return strings.Join(parts, ", ")
}

type InterfaceData struct {
	InterfacePackage   string
	InterfaceName      string
	Imports            []*ImportData
	Methods            []*MethodData
	ImplementationType string
}

const mode packages.LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

type Generator struct {
	cfg    *packages.Config
	logger *slog.Logger
}

type Option func(*Generator)

// WithDir sets the directory packages are resolved from.
func WithDir(dir string) Option {
	return func(g *Generator) {
		g.cfg.Dir = dir
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		cfg: &packages.Config{
			Fset: token.NewFileSet(),
			Mode: mode,
			Dir:  ".",
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Render produces the formatted source of a proxy for interfacePath, given
// as {package path}.{interface}. outputDir is the directory the proxy will
// be written to; "" means it lives outside the interface's package.
func (g *Generator) Render(
	interfacePath string,
	packageName string,
	name string,
	outputDir string,
) ([]byte, error) {
	idx := strings.LastIndex(interfacePath, ".")
	if idx <= 0 || idx == len(interfacePath)-1 {
		return nil, fmt.Errorf("invalid interface path %q: want {package}.{interface}", interfacePath)
	}
	packagePath := interfacePath[:idx]
	interfaceName := interfacePath[idx+1:]

	data, err := g.getInterfaceData(packagePath, interfaceName, packageName, outputDir)
	if err != nil {
		return nil, err
	}

	tmpl := template.Must(template.New("proxy").Parse(templates.ProxyTemplate))
	var generatedProxy bytes.Buffer
	err = tmpl.Execute(&generatedProxy, struct {
		PackageName string
		Name        string
		InterfaceData
	}{
		PackageName:   packageName,
		Name:          name,
		InterfaceData: data,
	})
	if err != nil {
		return nil, err
	}

	formattedContent, formatErr := format.Source(generatedProxy.Bytes())
	if formatErr != nil {
		return nil, fmt.Errorf("error formatting generated proxy: %w", formatErr)
	}

	return formattedContent, nil
}

func (g *Generator) GenerateProxy(
	interfacePath string,
	packageName string,
	name string,
	output string,
) error {
	content, err := g.Render(interfacePath, packageName, name, filepath.Dir(output))
	if err != nil {
		return err
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, content, 0o644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	g.logger.Info("proxy generated", "interface", interfacePath, "name", name, "output", output)

	return nil
}

// GenerateAll renders every proxy listed in cfg.
func (g *Generator) GenerateAll(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	for _, p := range cfg.Proxies {
		err := g.GenerateProxy(p.Interface, cfg.PackageFor(p), p.Name, cfg.OutputFor(p))
		if err != nil {
			return fmt.Errorf("generating %s: %w", p.Interface, err)
		}
	}

	return nil
}

func (g *Generator) getInterfaceData(
	interfacePackage string,
	interfaceName string,
	outputPkgName string,
	outputDir string,
) (InterfaceData, error) {
	data := InterfaceData{
		InterfacePackage: interfacePackage,
		InterfaceName:    interfaceName,
	}

	g.logger.Debug("loading package", "package", interfacePackage)
	pkg, err := g.getPackage(interfacePackage)
	if err != nil {
		return data, err
	}

	iface, named, err := g.getInterface(pkg, interfaceName)
	if err != nil {
		return data, err
	}
	if iface.NumMethods() == 0 {
		return data, fmt.Errorf("interface %s has no methods", interfaceName)
	}

	// types of the interface's own package stay unqualified only when the
	// proxy is written into that package
	localPath := ""
	if pkg.Name == outputPkgName && inPackageDir(pkg, outputDir) {
		localPath = pkg.PkgPath
	}
	tp := NewTypeProcessor(localPath)

	// methods come sorted by name and include embedded interfaces
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if !m.Exported() {
			return data, fmt.Errorf("interface %s has unexported method %s", interfaceName, m.Name())
		}
		if reserved[m.Name()] {
			return data, fmt.Errorf("interface %s: method name %s is reserved for the proxy", interfaceName, m.Name())
		}

		sig := m.Type().(*types.Signature)
		methodData := &MethodData{Name: m.Name()}

		params := sig.Params()
		for j := 0; j < params.Len(); j++ {
			t := params.At(j).Type()
			if sig.Variadic() && j == params.Len()-1 {
				elem := t.(*types.Slice).Elem()
				methodData.Params = append(methodData.Params, MethodParam("..."+tp.TypeString(elem)))
				continue
			}
			methodData.Params = append(methodData.Params, MethodParam(tp.TypeString(t)))
		}

		results := sig.Results()
		for j := 0; j < results.Len(); j++ {
			methodData.Rets = append(methodData.Rets, tp.TypeString(results.At(j).Type()))
		}

		data.Methods = append(data.Methods, methodData)
	}

	data.ImplementationType = tp.TypeString(named)
	data.Imports = tp.Imports()

	return data, nil
}

// inPackageDir reports whether dir is the directory holding pkg's files.
func inPackageDir(pkg *packages.Package, dir string) bool {
	if dir == "" || len(pkg.GoFiles) == 0 {
		return false
	}

	return sameDir(dir, filepath.Dir(pkg.GoFiles[0]))
}

func sameDir(a, b string) bool {
	resolve := func(p string) string {
		abs, err := filepath.Abs(p)
		if err != nil {
			return filepath.Clean(p)
		}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved
		}

		return abs
	}

	return resolve(a) == resolve(b)
}

func (g *Generator) getPackage(pkgPath string) (
	*packages.Package,
	error,
) {
	pkgs, err := packages.Load(g.cfg, pkgPath)
	if err != nil {
		return nil, err
	}

	var pkg *packages.Package
	for _, p := range pkgs {
		if p.PkgPath == pkgPath {
			pkg = p
			break
		}
	}

	if pkg == nil {
		return nil, fmt.Errorf("package %s not found", pkgPath)
	}
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("loading package %s: %v", pkgPath, pkg.Errors[0])
	}

	return pkg, nil
}

func (g *Generator) getInterface(pkg *packages.Package, name string) (*types.Interface, types.Type, error) {
	obj, ok := pkg.Types.Scope().Lookup(name).(*types.TypeName)
	if !ok || !obj.Exported() {
		return nil, nil, fmt.Errorf("interface %s not found", name)
	}

	if named, ok := obj.Type().(*types.Named); ok && named.TypeParams().Len() > 0 {
		return nil, nil, fmt.Errorf("interface %s is generic", name)
	}

	iface, ok := obj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, nil, fmt.Errorf("%s is not an interface", name)
	}

	return iface, obj.Type(), nil
}
