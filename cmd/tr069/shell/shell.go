// Package shell provides the interactive data model browser of tr069.
package shell

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/cwmp-go/tr069/pkg/inspect"
	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/types"
	"github.com/cwmp-go/tr069/pkg/validate"
)

// ErrNoObject is returned by commands that need a working object before
// one was created with new or loaded with load.
var ErrNoObject = errors.New("no object loaded (use new or load)")

// Config holds the dependencies of a Shell.
type Config struct {
	Registry  *model.Registry
	Validator *validate.Validator
	Formatter *inspect.Formatter
	Logger    *zap.Logger

	// Role is applied to set commands.
	Role validate.Role
}

// Shell is an interactive browser over the registry and one working
// object tree.
type Shell struct {
	cfg Config
	out io.Writer

	inspector *inspect.Inspector
}

// New creates a shell writing to out.
func New(cfg Config, out io.Writer) *Shell {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = inspect.NewFormatter()
	}
	if cfg.Validator == nil {
		cfg.Validator = validate.New(validate.WithRegistry(cfg.Registry))
	}
	return &Shell{cfg: cfg, out: out}
}

// Run reads commands until quit or end of input.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tr069> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    s.completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	s.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}

		quit, err := s.Exec(line)
		if err != nil {
			fmt.Fprintf(rl.Stderr(), "Error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (s *Shell) completer() *readline.PrefixCompleter {
	paths := make([]readline.PrefixCompleterInterface, 0, s.cfg.Registry.Len())
	for _, p := range s.cfg.Registry.Paths() {
		paths = append(paths, readline.PcItem(p))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("ls", paths...),
		readline.PcItem("show", paths...),
		readline.PcItem("new", paths...),
		readline.PcItem("load", paths...),
		readline.PcItem("get"),
		readline.PcItem("set"),
		readline.PcItem("tree"),
		readline.PcItem("xml"),
		readline.PcItem("validate"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Exec runs one command line. quit is true when the line ends the session.
func (s *Shell) Exec(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	s.cfg.Logger.Debug("shell command", zap.String("cmd", cmd), zap.Strings("args", args))

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "ls":
		err = s.cmdList(args)
	case "show":
		err = s.cmdShow(args)
	case "new":
		err = s.cmdNew(args)
	case "load":
		err = s.cmdLoad(args)
	case "get":
		err = s.cmdGet(args)
	case "set":
		err = s.cmdSet(args)
	case "tree":
		err = s.cmdTree()
	case "xml":
		err = s.cmdXML()
	case "validate":
		err = s.cmdValidate()
	case "quit", "exit", "q":
		return true, nil
	default:
		err = fmt.Errorf("unknown command: %s (type 'help' for commands)", cmd)
	}
	return false, err
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
Commands:
  Definitions:
    ls [path]          - List root objects, or the children of a path
    show <path>        - Show an object definition

  Working object:
    new <path>         - Create an object with its defaults
    load <path> <file> - Load an object from an XML file
    get <param-path>   - Read a parameter value
    set <param-path> <value>
                       - Write a parameter value
    tree               - Show every object and value
    xml                - Print the object as XML
    validate           - Validate the object tree

    help               - Show this help
    quit               - Leave the shell`)
}

// definition resolves a template or concrete object path. A missing
// trailing dot is added.
func (s *Shell) definition(arg string) (*model.ObjectDef, *inspect.Path, error) {
	if !strings.HasSuffix(arg, ".") {
		arg += "."
	}
	p, err := inspect.ParsePath(arg)
	if err != nil {
		return nil, nil, err
	}
	def, err := s.cfg.Registry.Lookup(p.Template())
	if err != nil {
		return nil, nil, err
	}
	return def, p, nil
}

func (s *Shell) cmdList(args []string) error {
	if len(args) == 0 {
		for _, def := range s.cfg.Registry.Roots() {
			fmt.Fprintf(s.out, "%s  (%s)\n", def.Path, def.Standard)
		}
		return nil
	}

	def, _, err := s.definition(args[0])
	if err != nil {
		return err
	}
	children, err := s.cfg.Registry.Children(def.Path)
	if err != nil {
		return err
	}
	for _, child := range children {
		fmt.Fprintf(s.out, "%s  (%s)\n", child.Path, child.Name)
	}
	for _, name := range def.ParamNames() {
		fmt.Fprintf(s.out, "%s%s\n", def.Path, name)
	}
	return nil
}

func (s *Shell) cmdShow(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: show <path>")
	}
	def, _, err := s.definition(args[0])
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, s.cfg.Formatter.FormatDefinition(def))
	return nil
}

// instantiate creates a fresh object for a path and returns it with its
// concrete path. Placeholders are filled with instance 1.
func (s *Shell) instantiate(arg string) (model.Object, string, error) {
	def, p, err := s.definition(arg)
	if err != nil {
		return nil, "", err
	}
	if def.New == nil {
		return nil, "", fmt.Errorf("%w: %s has no constructor", model.ErrInvalidObject, def.Path)
	}

	path := p.String()
	if p.IsTemplate() {
		ones := make([]uint32, strings.Count(path, inspect.Placeholder))
		for i := range ones {
			ones[i] = 1
		}
		if path, err = inspect.Instantiate(path, ones...); err != nil {
			return nil, "", err
		}
	}

	obj := def.New()
	if def.IsMultiInstance() {
		concrete, err := inspect.ParsePath(path)
		if err != nil {
			return nil, "", err
		}
		last := concrete.Segments[len(concrete.Segments)-1]
		if err := model.SetInstanceNumber(obj, last.Instance); err != nil {
			return nil, "", err
		}
	}
	return obj, path, nil
}

func (s *Shell) cmdNew(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: new <path>")
	}
	obj, path, err := s.instantiate(args[0])
	if err != nil {
		return err
	}
	if obj.ObjectDef().HasAlias() {
		if err := model.SetParamValue(obj, "Alias", string(types.NewCPEAlias())); err != nil {
			return err
		}
	}
	return s.use(obj, path)
}

func (s *Shell) cmdLoad(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: load <path> <file.xml>")
	}
	obj, path, err := s.instantiate(args[0])
	if err != nil {
		return err
	}
	data, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	if err := xml.Unmarshal(data, obj); err != nil {
		return fmt.Errorf("decoding %s: %w", args[1], err)
	}
	return s.use(obj, path)
}

func (s *Shell) use(obj model.Object, path string) error {
	in, err := inspect.NewInspector(obj, path)
	if err != nil {
		return err
	}
	s.inspector = in
	fmt.Fprintf(s.out, "Working object: %s\n", in.RootPath())
	return nil
}

// absolute prefixes a relative path with the working object path.
func (s *Shell) absolute(arg string) string {
	root := s.inspector.RootPath()
	first, _, _ := strings.Cut(arg, ".")
	if _, ok := inspect.ResolveRootName(first); ok {
		return arg
	}
	return root + arg
}

func (s *Shell) cmdGet(args []string) error {
	if s.inspector == nil {
		return ErrNoObject
	}
	if len(args) != 1 {
		return errors.New("usage: get <param-path>")
	}
	path := s.absolute(args[0])
	_, def, err := s.inspector.Param(path)
	if err != nil {
		return err
	}
	value, err := s.inspector.Get(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = %s\n", path, s.cfg.Formatter.FormatValue(def, value))
	return nil
}

func (s *Shell) cmdSet(args []string) error {
	if s.inspector == nil {
		return ErrNoObject
	}
	if len(args) < 1 {
		return errors.New("usage: set <param-path> <value>")
	}
	path := s.absolute(args[0])
	value := strings.Join(args[1:], " ")

	obj, def, err := s.inspector.Param(path)
	if err != nil {
		return err
	}
	if err := s.cfg.Validator.CheckWrite(obj, def.Name, value, s.cfg.Role); err != nil {
		return err
	}
	if err := s.inspector.Set(path, value); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = %s\n", path, s.cfg.Formatter.FormatValue(def, value))
	return nil
}

func (s *Shell) cmdTree() error {
	if s.inspector == nil {
		return ErrNoObject
	}
	infos, err := s.inspector.InspectTree()
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, s.cfg.Formatter.FormatTree(infos))
	return nil
}

func (s *Shell) cmdXML() error {
	if s.inspector == nil {
		return ErrNoObject
	}
	root := s.inspector.Root()
	enc := xml.NewEncoder(s.out)
	enc.Indent("", "  ")
	start := xml.StartElement{Name: xml.Name{Local: root.ObjectDef().ElementName()}}
	if err := enc.EncodeElement(root, start); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	fmt.Fprintln(s.out)
	return nil
}

func (s *Shell) cmdValidate() error {
	if s.inspector == nil {
		return ErrNoObject
	}
	err := s.cfg.Validator.Tree(s.inspector.Root(), s.inspector.RootPath())
	if err == nil {
		fmt.Fprintln(s.out, "OK")
		return nil
	}
	vs := validate.Violations(err)
	if vs == nil {
		return err
	}
	for _, v := range vs {
		fmt.Fprintf(s.out, "  %s [%s]\n", v.Error(), v.Rule)
	}
	fmt.Fprintf(s.out, "%d violations\n", len(vs))
	return nil
}
