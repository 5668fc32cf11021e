package smtvar

import (
	"sort"
	"strings"

	"github.com/ajalab/smtvar/log"
	"github.com/pkg/errors"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

// LoadPackage loads a Go package from a package path or a file path and
// returns it in SSA form.
func LoadPackage(packageName string) (*ssa.Package, error) {
	conf := &packages.Config{
		Mode: packages.LoadAllSyntax,
	}
	query := packageName
	if strings.HasSuffix(packageName, ".go") {
		query = "file=" + packageName
	}
	pkgs, err := packages.Load(conf, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load the target package")
	}
	if len(pkgs) == 0 {
		return nil, errors.New("no packages could be loaded")
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, errors.Errorf("failed to load package %s: %v", pkg.PkgPath, pkg.Errors)
		}
		// It is possible that pkg.IllTyped becomes true but pkg.Errors has no error records.
		if pkg.IllTyped {
			return nil, errors.Errorf("package %s contains type error", pkg.PkgPath)
		}
	}

	ssaProg, ssaPkgs := ssautil.AllPackages(pkgs, ssa.BuilderMode(0))
	for i, ssaPkg := range ssaPkgs {
		if ssaPkg == nil {
			return nil, errors.Errorf("failed to compile package %s into SSA form", pkgs[i])
		}
	}
	ssaProg.Build()
	log.Debug.Printf("loaded package %s", ssaPkgs[0].Pkg.Path())

	return ssaPkgs[0], nil
}

// Functions returns the functions of pkg named in funcNames, or every
// function declared in pkg sorted by name if funcNames is empty.
func Functions(pkg *ssa.Package, funcNames []string) ([]*ssa.Function, error) {
	if len(funcNames) == 0 {
		for name, member := range pkg.Members {
			if fn, ok := member.(*ssa.Function); ok && fn.Synthetic == "" && name != "init" {
				funcNames = append(funcNames, name)
			}
		}
		sort.Strings(funcNames)
	}

	fns := make([]*ssa.Function, 0, len(funcNames))
	for _, name := range funcNames {
		fn := pkg.Func(name)
		if fn == nil {
			return nil, errors.Errorf("function %s is not found in package %s", name, pkg.Pkg.Path())
		}
		fns = append(fns, fn)
	}
	return fns, nil
}
