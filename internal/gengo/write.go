package gengo

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func writeCode(out, pkg, short string, code []byte) (string, error) {
	dir := filepath.Join(out, pkg)
	if err := os.MkdirAll(dir, 0o775); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}
	path := filepath.Join(dir, short+".go")
	if err := os.WriteFile(path, code, 0o664); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}

// WriteMessage generates spec into out/<pkg>/<Name>.go.
func (g *Generator) WriteMessage(out string, spec *MsgSpec) (string, error) {
	code, err := g.GenerateMessage(spec)
	if err != nil {
		return "", err
	}
	return writeCode(out, spec.Package, spec.ShortName, code)
}

// WriteService generates spec and its request and response messages.
func (g *Generator) WriteService(out string, spec *SrvSpec) ([]string, error) {
	srv, req, res, err := g.GenerateService(spec)
	if err != nil {
		return nil, err
	}
	var written []string
	for _, f := range []struct {
		short string
		code  []byte
	}{
		{spec.ShortName, srv},
		{spec.Request.ShortName, req},
		{spec.Response.ShortName, res},
	} {
		path, err := writeCode(out, spec.Package, f.short, f.code)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// WriteFiles loads the named messages and services from ctx and generates
// them below out. It returns the paths written.
func (g *Generator) WriteFiles(ctx *Context, out string, msgNames, srvNames []string) ([]string, error) {
	var written []string
	for _, name := range msgNames {
		spec, err := ctx.LoadMsg(name)
		if err != nil {
			return written, err
		}
		path, err := g.WriteMessage(out, spec)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	for _, name := range srvNames {
		spec, err := ctx.LoadSrv(name)
		if err != nil {
			return written, err
		}
		paths, err := g.WriteService(out, spec)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
