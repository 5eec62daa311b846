package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/tools/imports"

	"github.com/cwmp-go/tr069/pkg/specparse"
)

func main() {
	configPath := flag.String("config", "defs/tr069-gen.yaml", "Path to the generator config")
	root := flag.String("root", ".", "Module root; config paths are relative to it")
	only := flag.String("package", "", "Generate only this package (e.g. tr181)")
	check := flag.Bool("check", false, "Report stale generated files instead of writing them")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	if err := run(logger, *configPath, *root, *only, *check); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(os.Stderr), level))
}

func run(logger *zap.Logger, configPath, root, only string, check bool) error {
	cfg, err := specparse.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		zap.String("path", configPath),
		zap.String("module", cfg.Module),
		zap.Int("packages", len(cfg.Packages)),
	)

	if only != "" {
		if _, ok := cfg.Package(only); !ok {
			return fmt.Errorf("package %q not in %s", only, configPath)
		}
	}

	var stale []string
	for i := range cfg.Packages {
		pkg := &cfg.Packages[i]
		if only != "" && pkg.Name != only {
			continue
		}

		defs, err := loadPackage(root, pkg)
		if err != nil {
			return fmt.Errorf("package %s: %w", pkg.Name, err)
		}
		logger.Debug("definitions checked", zap.String("package", pkg.Name), zap.Int("files", len(defs)))

		files, err := GeneratePackage(cfg.Module, pkg, defs)
		if err != nil {
			return fmt.Errorf("generating %s: %w", pkg.Name, err)
		}

		outDir := filepath.Join(root, pkg.Dir)
		if !check {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("creating output dir: %w", err)
			}
		}

		for _, name := range sortedKeys(files) {
			outPath := filepath.Join(outDir, name)
			if check {
				ok, err := upToDate(outPath, files[name])
				if err != nil {
					return err
				}
				if !ok {
					logger.Warn("stale generated file", zap.String("file", outPath))
					stale = append(stale, outPath)
				}
				continue
			}
			if err := writeFormatted(outPath, files[name]); err != nil {
				return fmt.Errorf("writing %s: %w", name, err)
			}
			fmt.Printf("  generated %s\n", outPath)
		}
	}

	if len(stale) > 0 {
		return fmt.Errorf("%d generated files are out of date", len(stale))
	}
	return nil
}

// loadPackage reads and checks the definition files of one package.
func loadPackage(root string, pkg *specparse.RawPackage) ([]DefFile, error) {
	var defs []DefFile
	var all []specparse.RawObjectDef
	for _, f := range pkg.Files {
		file, err := specparse.LoadObjectFile(filepath.Join(root, f))
		if err != nil {
			return nil, err
		}
		defs = append(defs, DefFile{Path: f, Objects: file.Objects})
		all = append(all, file.Objects...)
	}
	if err := specparse.Check(all); err != nil {
		return nil, err
	}
	return defs, nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}

// upToDate reports whether the file on disk matches the formatted code.
func upToDate(path string, code string) (bool, error) {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		return false, fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	current, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return bytes.Equal(current, formatted), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
