package gengo

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	msgDir = "msg"
	srvDir = "srv"
	extMsg = ".msg"
	extSrv = ".srv"
)

func isRosPackage(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "package.xml"))
	return err == nil && !info.IsDir()
}

// findDefinitions maps "pkg/Name" to the definition files with extension
// ext found in the sub directory sub of every package below paths.
func findDefinitions(paths []string, sub, ext string) map[string]string {
	found := make(map[string]string)
	for _, p := range paths {
		entries, err := os.ReadDir(p)
		if err != nil {
			continue
		}
		for _, e := range entries {
			pkgPath := filepath.Join(p, e.Name())
			if !e.IsDir() || !isRosPackage(pkgPath) {
				continue
			}
			files, err := filepath.Glob(filepath.Join(pkgPath, sub, "*"+ext))
			if err != nil {
				continue
			}
			for _, f := range files {
				name := e.Name() + "/" + strings.TrimSuffix(filepath.Base(f), ext)
				// Earlier paths win, like ROS_PACKAGE_PATH.
				if _, ok := found[name]; !ok {
					found[name] = f
				}
			}
		}
	}
	return found
}

// Context resolves message names to definitions and caches parsed specs.
type Context struct {
	msgPaths map[string]string
	srvPaths map[string]string
	registry map[string]*MsgSpec
	loading  map[string]bool
}

// NewContext indexes the ROS packages found directly below paths.
func NewContext(paths []string) *Context {
	return &Context{
		msgPaths: findDefinitions(paths, msgDir, extMsg),
		srvPaths: findDefinitions(paths, srvDir, extSrv),
		registry: make(map[string]*MsgSpec),
		loading:  make(map[string]bool),
	}
}

func packageNames(m map[string]string, pkg string) []string {
	var names []string
	for name := range m {
		if strings.HasPrefix(name, pkg+"/") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Messages lists the messages defined by pkg.
func (ctx *Context) Messages(pkg string) []string {
	return packageNames(ctx.msgPaths, pkg)
}

// Services lists the services defined by pkg.
func (ctx *Context) Services(pkg string) []string {
	return packageNames(ctx.srvPaths, pkg)
}

// LoadMsgFromString parses text as fullName and registers the result.
func (ctx *Context) LoadMsgFromString(text, fullName string) (*MsgSpec, error) {
	if ctx.loading[fullName] {
		return nil, errors.Errorf("message %s refers to itself", fullName)
	}
	ctx.loading[fullName] = true
	defer delete(ctx.loading, fullName)

	spec, err := ParseMsg(fullName, text)
	if err != nil {
		return nil, err
	}
	md5Text, err := ctx.md5Text(spec)
	if err != nil {
		return nil, err
	}
	spec.MD5Sum = md5Hex(md5Text)
	ctx.registry[fullName] = spec
	return spec, nil
}

func (ctx *Context) LoadMsgFromFile(path, fullName string) (*MsgSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", fullName)
	}
	return ctx.LoadMsgFromString(string(data), fullName)
}

// LoadMsg returns the spec of fullName, loading it from the package path
// on first use.
func (ctx *Context) LoadMsg(fullName string) (*MsgSpec, error) {
	if spec, ok := ctx.registry[fullName]; ok {
		return spec, nil
	}
	path, ok := ctx.msgPaths[fullName]
	if !ok {
		return nil, errors.Errorf("message definition of %s is not found", fullName)
	}
	return ctx.LoadMsgFromFile(path, fullName)
}

// LoadSrvFromString parses a service definition. Its request and
// response messages are registered as <fullName>Request and
// <fullName>Response.
func (ctx *Context) LoadSrvFromString(text, fullName string) (*SrvSpec, error) {
	pkg, short, err := splitName(fullName)
	if err != nil {
		return nil, err
	}
	reqText, resText, err := splitService(fullName, text)
	if err != nil {
		return nil, err
	}
	req, err := ctx.LoadMsgFromString(reqText, fullName+"Request")
	if err != nil {
		return nil, err
	}
	res, err := ctx.LoadMsgFromString(resText, fullName+"Response")
	if err != nil {
		return nil, err
	}

	spec := &SrvSpec{Package: pkg, ShortName: short, Text: text, Request: req, Response: res}
	reqMD5, err := ctx.md5Text(req)
	if err != nil {
		return nil, err
	}
	resMD5, err := ctx.md5Text(res)
	if err != nil {
		return nil, err
	}
	spec.MD5Sum = md5Hex(reqMD5 + resMD5)
	return spec, nil
}

func (ctx *Context) LoadSrvFromFile(path, fullName string) (*SrvSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", fullName)
	}
	return ctx.LoadSrvFromString(string(data), fullName)
}

func (ctx *Context) LoadSrv(fullName string) (*SrvSpec, error) {
	path, ok := ctx.srvPaths[fullName]
	if !ok {
		return nil, errors.Errorf("service definition of %s is not found", fullName)
	}
	return ctx.LoadSrvFromFile(path, fullName)
}

// md5Text is the canonical text hashed into a message MD5 sum: constants
// first, then fields, with nested message types replaced by their sums.
func (ctx *Context) md5Text(spec *MsgSpec) (string, error) {
	var buf bytes.Buffer
	for _, c := range spec.Constants {
		fmt.Fprintf(&buf, "%s %s=%s\n", c.Type, c.Name, c.ValueText)
	}
	for _, f := range spec.Fields {
		if f.IsBuiltin() {
			fmt.Fprintf(&buf, "%s\n", f)
			continue
		}
		sub, err := ctx.LoadMsg(f.FullType())
		if err != nil {
			return "", errors.Wrapf(err, "%s field %s", spec.FullName(), f.Name)
		}
		fmt.Fprintf(&buf, "%s %s\n", sub.MD5Sum, f.Name)
	}
	return strings.TrimSpace(buf.String()), nil
}

func md5Hex(text string) string {
	sum := md5.Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}
