// Package validate checks populated data model objects against the rules
// their descriptors and struct tags carry.
//
// Struct runs the per-object checks: field constraints from the validate
// struct tags, parameter patterns, cross-parameter rules of model.Checker
// implementations, mutually exclusive children and table rules (maximum
// entries, unique keys, instance numbers and NumberOfEntries counters).
// Tree applies the same checks to every object below a root. CheckWrite
// decides whether a single SetParameterValues-style write is acceptable
// for a given writer role.
package validate

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/cwmp-go/tr069/pkg/model"
)

// ErrValidation matches every error returned by Struct and Tree.
var ErrValidation = errors.New("validation failed")

// Rule names reported in violations that do not come from a struct tag.
const (
	RulePattern    = "pattern"
	RuleCheck      = "check"
	RuleExclusive  = "exclusive"
	RuleMaxEntries = "maxentries"
	RuleUnique     = "unique"
	RuleInstance   = "instance"
	RuleNumEntries = "numentries"
)

// Recorder receives validation counts. *metrics.Metrics implements it.
type Recorder interface {
	RecordCheck(object string)
	RecordViolation(object, rule string)
	ObserveTree(root string, d time.Duration)
}

// Violation is one broken rule.
type Violation struct {
	// Path is the object path, with a trailing dot. It is empty when the
	// object was checked on its own.
	Path string

	// Param is the parameter or child name, empty for object-wide rules.
	Param string

	// Rule is the validate tag or one of the Rule constants.
	Rule string

	// Message describes the problem.
	Message string

	// Err is the underlying model or types error, if any.
	Err error
}

func (v Violation) Error() string {
	if v.Param == "" {
		return fmt.Sprintf("%s: %s", strings.TrimSuffix(v.Path, "."), v.Message)
	}
	return fmt.Sprintf("%s%s: %s", v.Path, v.Param, v.Message)
}

func (v Violation) Unwrap() error { return v.Err }

// ValidationError carries every violation found in one call.
type ValidationError struct {
	Violations []Violation
	err        error
}

func newValidationError(vs []Violation) *ValidationError {
	var err error
	for _, v := range vs {
		err = multierr.Append(err, v)
	}
	return &ValidationError{Violations: vs, err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrValidation, e.err)
}

func (e *ValidationError) Unwrap() error { return e.err }

// Is reports ErrValidation as a match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Violations returns the violations held by err, or nil.
func Violations(err error) []Violation {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Violations
	}
	return nil
}

// Validator checks objects. It is safe for concurrent use once built.
type Validator struct {
	validate *validator.Validate
	registry *model.Registry
	recorder Recorder
	logger   *zap.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithMetrics reports counts to r.
func WithMetrics(r Recorder) Option {
	return func(v *Validator) { v.recorder = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// WithRegistry lets table rules find the definition of empty tables, so
// that a non-zero NumberOfEntries counter with no rows is reported.
func WithRegistry(r *model.Registry) Option {
	return func(v *Validator) { v.registry = r }
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterTagNameFunc(xmlName)
	// Both registrations only fail on an empty tag or nil function.
	_ = v.validate.RegisterValidation("cwmp", validateTyped)
	_ = v.validate.RegisterValidation("listlen", validateListLength)
	return v
}

// Struct checks a single object. Children are not visited, but the tables
// of obj are checked as tables.
func (v *Validator) Struct(obj model.Object) error {
	vs := v.check("", obj)
	if len(vs) == 0 {
		return nil
	}
	return newValidationError(vs)
}

// Tree checks obj and every descendant. path is the concrete path of obj;
// an empty path uses the path template of its definition.
func (v *Validator) Tree(obj model.Object, path string) error {
	def := obj.ObjectDef()
	if path == "" {
		path = def.Path
	}

	start := time.Now()
	var vs []Violation
	err := model.Walk(obj, path, func(p string, o model.Object) error {
		vs = append(vs, v.check(p, o)...)
		return nil
	})
	if err != nil {
		return err
	}
	if v.recorder != nil {
		v.recorder.ObserveTree(def.Name, time.Since(start))
	}

	v.logger.Debug("validated tree",
		zap.String("path", path),
		zap.Int("violations", len(vs)),
		zap.Duration("elapsed", time.Since(start)),
	)
	if len(vs) == 0 {
		return nil
	}
	return newValidationError(vs)
}

func (v *Validator) check(path string, obj model.Object) []Violation {
	def := obj.ObjectDef()

	var vs []Violation
	vs = append(vs, v.checkFields(path, obj)...)
	vs = append(vs, checkPatterns(path, obj)...)
	vs = append(vs, checkRules(path, obj)...)
	vs = append(vs, checkExclusive(path, obj)...)
	vs = append(vs, v.checkTables(path, obj)...)

	if v.recorder != nil {
		v.recorder.RecordCheck(def.Name)
		for _, viol := range vs {
			v.recorder.RecordViolation(def.Name, viol.Rule)
		}
	}
	if len(vs) > 0 {
		v.logger.Debug("object has violations",
			zap.String("object", def.Name),
			zap.String("path", path),
			zap.Int("count", len(vs)),
		)
	}
	return vs
}

func (v *Validator) checkFields(path string, obj model.Object) []Violation {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Path: path, Rule: RuleCheck, Message: err.Error(), Err: err}}
	}

	vs := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, cause := describe(fe)
		vs = append(vs, Violation{
			Path:    path,
			Param:   fe.Field(),
			Rule:    fe.Tag(),
			Message: msg,
			Err:     cause,
		})
	}
	return vs
}

func describe(fe validator.FieldError) (string, error) {
	switch fe.Tag() {
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("longer than %s characters", fe.Param()), model.ErrParamTooLong
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("longer than %s bytes", fe.Param()), model.ErrParamTooLong
		}
		return fmt.Sprintf("%v is above the maximum %s", fe.Value(), fe.Param()), model.ErrParamOutOfRange
	case "min":
		return fmt.Sprintf("%v is below the minimum %s", fe.Value(), fe.Param()), model.ErrParamOutOfRange
	case "oneof":
		return fmt.Sprintf("%q is not one of %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", "|")), model.ErrParamEnumeration
	case "listlen":
		return fmt.Sprintf("list longer than %s characters", fe.Param()), model.ErrParamTooLong
	case "cwmp":
		if tv, ok := fe.Value().(typedValue); ok {
			if err := tv.Validate(); err != nil {
				return err.Error(), err
			}
		}
		return "invalid value", model.ErrParamValueType
	}
	return fmt.Sprintf("failed %s", fe.Tag()), nil
}

type typedValue interface {
	Validate() error
}

func validateTyped(fl validator.FieldLevel) bool {
	tv, ok := fl.Field().Interface().(typedValue)
	if !ok {
		return true
	}
	return tv.Validate() == nil
}

func validateListLength(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	m, ok := fl.Field().Interface().(encoding.TextMarshaler)
	if !ok {
		return true
	}
	text, err := m.MarshalText()
	if err != nil {
		return false
	}
	return utf8.RuneCount(text) <= limit
}

func xmlName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("xml"), ",")
	if name == "-" {
		return ""
	}
	if _, last, found := strings.Cut(name, ">"); found {
		return last
	}
	return name
}

func checkPatterns(path string, obj model.Object) []Violation {
	var vs []Violation
	for i := range obj.ObjectDef().Params {
		p := &obj.ObjectDef().Params[i]
		if p.Pattern == "" || p.List {
			continue
		}
		value, err := model.ParamValue(obj, p.Name)
		if err != nil || value == "" {
			continue
		}
		if !p.MatchPattern(value) {
			vs = append(vs, Violation{
				Path:    path,
				Param:   p.Name,
				Rule:    RulePattern,
				Message: fmt.Sprintf("%q does not match %s", value, p.Pattern),
				Err:     model.ErrParamPattern,
			})
		}
	}
	return vs
}

func checkRules(path string, obj model.Object) []Violation {
	c, ok := obj.(model.Checker)
	if !ok {
		return nil
	}
	var vs []Violation
	for _, err := range multierr.Errors(c.Check()) {
		vs = append(vs, Violation{Path: path, Rule: RuleCheck, Message: err.Error(), Err: err})
	}
	return vs
}

func checkExclusive(path string, obj model.Object) []Violation {
	def := obj.ObjectDef()

	var vs []Violation
	for _, group := range def.Exclusive {
		var present []string
		for _, name := range group {
			entries, err := model.ChildEntries(obj, name)
			if err == nil && len(entries) > 0 {
				present = append(present, name)
			}
		}
		if len(present) > 1 {
			vs = append(vs, Violation{
				Path:    path,
				Rule:    RuleExclusive,
				Message: fmt.Sprintf("%s may not be present together", strings.Join(present, " and ")),
				Err:     model.ErrExclusiveObjects,
			})
		}
	}
	return vs
}

func (v *Validator) checkTables(path string, obj model.Object) []Violation {
	var vs []Violation
	for _, cd := range obj.ObjectDef().Children {
		if !cd.Multi {
			continue
		}
		entries, err := model.ChildEntries(obj, cd.Name)
		if err != nil {
			vs = append(vs, Violation{Path: path, Param: cd.Name, Rule: RuleCheck, Message: err.Error(), Err: err})
			continue
		}

		def := v.tableDef(cd, entries)
		if def == nil {
			continue
		}
		vs = append(vs, checkTable(path, obj, cd, def, entries)...)
	}
	return vs
}

func (v *Validator) tableDef(cd model.ChildDef, entries []model.Entry) *model.ObjectDef {
	if len(entries) > 0 {
		return entries[0].Object.ObjectDef()
	}
	if v.registry == nil {
		return nil
	}
	def, err := v.registry.Lookup(cd.Object)
	if err != nil {
		return nil
	}
	return def
}

func checkTable(path string, parent model.Object, cd model.ChildDef, def *model.ObjectDef, entries []model.Entry) []Violation {
	var vs []Violation
	add := func(rule, msg string, err error) {
		vs = append(vs, Violation{Path: path, Param: cd.Name, Rule: rule, Message: msg, Err: err})
	}

	if def.MaxEntries != model.Unbounded && len(entries) > def.MaxEntries {
		add(RuleMaxEntries, fmt.Sprintf("%d entries, max %d", len(entries), def.MaxEntries), model.ErrParamOutOfRange)
	}

	if def.NumEntriesParameter != "" {
		if text, err := model.ParamValue(parent, def.NumEntriesParameter); err == nil {
			n, err := strconv.ParseUint(text, 10, 32)
			if err == nil && n != 0 && int(n) != len(entries) {
				add(RuleNumEntries,
					fmt.Sprintf("%s is %d but the table has %d entries", def.NumEntriesParameter, n, len(entries)),
					model.ErrParamOutOfRange)
			}
		}
	}

	seen := make(map[uint32]bool, len(entries))
	for _, e := range entries {
		if seen[e.Instance] {
			add(RuleInstance, fmt.Sprintf("instance %d used more than once", e.Instance), model.ErrDuplicateObject)
		}
		seen[e.Instance] = true
	}

	for _, key := range def.UniqueKeys {
		owners := make(map[string]uint32, len(entries))
		for _, e := range entries {
			tuple, ok := keyTuple(e.Object, key)
			if !ok {
				continue
			}
			if first, dup := owners[tuple]; dup {
				add(RuleUnique,
					fmt.Sprintf("entries %d and %d share %s", first, e.Instance, strings.Join(key, "+")),
					model.ErrDuplicateObject)
				continue
			}
			owners[tuple] = e.Instance
		}
	}
	return vs
}

// keyTuple joins the key values of an entry. Entries whose key values are
// all empty are not compared.
func keyTuple(obj model.Object, key []string) (string, bool) {
	values := make([]string, len(key))
	empty := true
	for i, name := range key {
		value, err := model.ParamValue(obj, name)
		if err != nil {
			return "", false
		}
		if value != "" {
			empty = false
		}
		values[i] = value
	}
	if empty {
		return "", false
	}
	return strings.Join(values, "\x00"), true
}
