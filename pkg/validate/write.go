package validate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/types"
)

// Role is the party writing a parameter.
type Role int

const (
	// RoleACS is the auto-configuration server. It is bound by parameter
	// access and write preconditions.
	RoleACS Role = iota

	// RoleCPE is the device itself, which may update any parameter.
	RoleCPE
)

func (r Role) String() string {
	switch r {
	case RoleACS:
		return "ACS"
	case RoleCPE:
		return "CPE"
	default:
		return "Unknown"
	}
}

// CheckWrite reports whether role may set the named parameter of obj to
// value, given in CWMP string form. obj is not modified.
func (v *Validator) CheckWrite(obj model.Object, name, value string, role Role) error {
	err := checkWrite(obj, name, value, role)
	if err != nil {
		v.logger.Debug("write refused",
			zap.String("object", obj.ObjectDef().Name),
			zap.String("param", name),
			zap.Stringer("role", role),
			zap.Error(err),
		)
	}
	return err
}

func checkWrite(obj model.Object, name, value string, role Role) error {
	def := obj.ObjectDef()
	p, err := def.Param(name)
	if err != nil {
		return fmt.Errorf("%w: %s.%s", err, def.Name, name)
	}

	if role == RoleACS {
		if !p.Access.CanWrite() {
			return fmt.Errorf("%w: %s.%s is %s", model.ErrParamNotWritable, def.Name, name, p.Access)
		}
		if p.WritableIf != "" {
			cond, err := model.ParamValue(obj, p.WritableIf)
			if err != nil {
				return err
			}
			if ok, _ := model.ParseBool(cond); !ok {
				return fmt.Errorf("%w: %s.%s requires %s", model.ErrParamPrecondition, def.Name, name, p.WritableIf)
			}
		}
	}

	if err := p.CheckValue(value); err != nil {
		return err
	}
	return checkReservedAlias(p, value, role)
}

// checkReservedAlias refuses ACS writes of an Alias in the CPE's namespace.
// The syntax itself is checked by CheckValue.
func checkReservedAlias(p *model.ParamDef, value string, role Role) error {
	if p.TypeRef != "Alias" || role != RoleACS {
		return nil
	}
	if types.Alias(value).IsCPEAssigned() {
		return fmt.Errorf("%w: prefix %q is reserved for the CPE", types.ErrInvalidAlias, types.CPEAliasPrefix)
	}
	return nil
}

// Write checks the write with CheckWrite and stores the value.
func (v *Validator) Write(obj model.Object, name, value string, role Role) error {
	if err := v.CheckWrite(obj, name, value, role); err != nil {
		return err
	}
	return model.SetParamValue(obj, name, value)
}
