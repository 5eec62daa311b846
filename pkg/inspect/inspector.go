package inspect

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cwmp-go/tr069/pkg/model"
)

// Inspector errors.
var (
	ErrOutsideRoot      = errors.New("path is outside the inspected tree")
	ErrObjectNotFound   = errors.New("object not found")
	ErrInstanceNotFound = errors.New("instance not found")
	ErrNotAParameter    = errors.New("path does not name a parameter")
)

// Inspector resolves paths against an object tree.
type Inspector struct {
	root     model.Object
	rootPath *Path
}

// NewInspector creates an Inspector for a root object located at rootPath,
// for example a *tr181.DynamicDNS at "Device.DynamicDNS.". An empty
// rootPath uses the descriptor path, which must not be a template.
func NewInspector(root model.Object, rootPath string) (*Inspector, error) {
	if rootPath == "" {
		rootPath = root.ObjectDef().Path
	}
	p, err := ParsePath(rootPath)
	if err != nil {
		return nil, err
	}
	if !p.IsObject || p.IsTemplate() {
		return nil, fmt.Errorf("%w: root %q must be a concrete object path", ErrInvalidPath, rootPath)
	}
	if !Match(root.ObjectDef().Path, p.String()) {
		return nil, fmt.Errorf("%w: %s is not an instance of %s", ErrInvalidPath, rootPath, root.ObjectDef().Path)
	}
	return &Inspector{root: root, rootPath: p}, nil
}

// Root returns the inspected root object.
func (i *Inspector) Root() model.Object {
	return i.root
}

// RootPath returns the concrete path of the root object.
func (i *Inspector) RootPath() string {
	return i.rootPath.String()
}

// ObjectInfo is an object instance with its parameter values.
type ObjectInfo struct {
	Path   string
	Def    *model.ObjectDef
	Params []ParamInfo
}

// ParamInfo is a parameter value with its definition.
type ParamInfo struct {
	Name  string
	Value string
	Def   *model.ParamDef
}

// Resolve returns the object an object or parameter path refers to and
// the object's canonical path, with alias references replaced by instance
// numbers.
func (i *Inspector) Resolve(p *Path) (model.Object, string, error) {
	p = p.Object()
	root := i.rootPath.Segments
	if len(p.Segments) < len(root) {
		return nil, "", fmt.Errorf("%w: %s", ErrOutsideRoot, p)
	}
	for n, s := range root {
		if p.Segments[n] != s {
			return nil, "", fmt.Errorf("%w: %s", ErrOutsideRoot, p)
		}
	}

	obj := i.root
	canonical := i.rootPath.String()
	rest := p.Segments[len(root):]

	for len(rest) > 0 {
		seg := rest[0]
		if seg.Kind != SegmentName {
			return nil, "", fmt.Errorf("%w: unexpected %s after %s", ErrInvalidPath, seg, canonical)
		}
		cd, err := obj.ObjectDef().Child(seg.Name)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s%s.", ErrObjectNotFound, canonical, seg.Name)
		}
		entries, err := model.ChildEntries(obj, seg.Name)
		if err != nil {
			return nil, "", err
		}
		canonical += seg.Name + "."
		rest = rest[1:]

		if !cd.Multi {
			if len(entries) == 0 {
				return nil, "", fmt.Errorf("%w: %s", ErrObjectNotFound, canonical)
			}
			obj = entries[0].Object
			continue
		}

		if len(rest) == 0 || rest[0].Kind == SegmentName {
			return nil, "", fmt.Errorf("%w: %s needs an instance number", ErrInvalidPath, canonical)
		}
		entry, err := findEntry(entries, rest[0])
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s%s.", err, canonical, rest[0])
		}
		obj = entry.Object
		canonical += strconv.FormatUint(uint64(entry.Instance), 10) + "."
		rest = rest[1:]
	}
	return obj, canonical, nil
}

func findEntry(entries []model.Entry, ref Segment) (model.Entry, error) {
	switch ref.Kind {
	case SegmentInstance:
		for _, e := range entries {
			if e.Instance == ref.Instance {
				return e, nil
			}
		}
	case SegmentAlias:
		for _, e := range entries {
			if !e.Object.ObjectDef().HasAlias() {
				break
			}
			if alias, err := model.ParamValue(e.Object, "Alias"); err == nil && alias == ref.Name {
				return e, nil
			}
		}
	default:
		return model.Entry{}, ErrInvalidInstance
	}
	return model.Entry{}, ErrInstanceNotFound
}

// Get returns a parameter value in CWMP string form. Hidden parameters
// read back as an empty string.
func (i *Inspector) Get(path string) (string, error) {
	obj, p, def, err := i.param(path)
	if err != nil {
		return "", err
	}
	if def.Hidden {
		return "", nil
	}
	return model.ParamValue(obj, p.Parameter())
}

// Set checks a value against the parameter definition and stores it.
// Access rules are not applied; see the validate package.
func (i *Inspector) Set(path, value string) error {
	obj, p, def, err := i.param(path)
	if err != nil {
		return err
	}
	if err := def.CheckValue(value); err != nil {
		return err
	}
	return model.SetParamValue(obj, p.Parameter(), value)
}

// Param returns the object holding a parameter and its definition.
func (i *Inspector) Param(path string) (model.Object, *model.ParamDef, error) {
	obj, _, def, err := i.param(path)
	return obj, def, err
}

func (i *Inspector) param(path string) (model.Object, *Path, *model.ParamDef, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, nil, nil, err
	}
	if p.IsObject {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrNotAParameter, path)
	}
	obj, _, err := i.Resolve(p)
	if err != nil {
		return nil, nil, nil, err
	}
	def, err := obj.ObjectDef().Param(p.Parameter())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s", err, path)
	}
	return obj, p, def, nil
}

// InspectObject returns the parameter values of the object at path.
func (i *Inspector) InspectObject(path string) (*ObjectInfo, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	if !p.IsObject {
		return nil, fmt.Errorf("%w: %s is a parameter path", ErrInvalidPath, path)
	}
	obj, canonical, err := i.Resolve(p)
	if err != nil {
		return nil, err
	}
	info := inspectObject(canonical, obj)
	return &info, nil
}

// InspectTree returns every object of the tree, depth-first.
func (i *Inspector) InspectTree() ([]ObjectInfo, error) {
	var infos []ObjectInfo
	err := model.Walk(i.root, i.RootPath(), func(path string, obj model.Object) error {
		infos = append(infos, inspectObject(path, obj))
		return nil
	})
	return infos, err
}

func inspectObject(path string, obj model.Object) ObjectInfo {
	def := obj.ObjectDef()
	info := ObjectInfo{Path: path, Def: def}
	for n := range def.Params {
		pd := &def.Params[n]
		value := ""
		if !pd.Hidden {
			value, _ = model.ParamValue(obj, pd.Name)
		}
		info.Params = append(info.Params, ParamInfo{Name: pd.Name, Value: value, Def: pd})
	}
	return info
}
