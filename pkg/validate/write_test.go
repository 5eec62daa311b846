package validate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/tr181"
	"github.com/cwmp-go/tr069/pkg/types"
	"github.com/cwmp-go/tr069/pkg/validate"
)

var _ = Describe("CheckWrite", func() {
	var (
		v      *validate.Validator
		client *tr181.DynamicDNSClient
	)

	BeforeEach(func() {
		v = validate.New()
		client = tr181.NewDynamicDNSClient()
	})

	It("should accept a writable parameter", func() {
		Expect(v.CheckWrite(client, "Username", "alice", validate.RoleACS)).To(Succeed())
	})

	It("should refuse read-only parameters to the ACS only", func() {
		Expect(v.CheckWrite(client, "Status", "Updated", validate.RoleACS)).
			To(MatchError(model.ErrParamNotWritable))
		Expect(v.CheckWrite(client, "Status", "Updated", validate.RoleCPE)).To(Succeed())
	})

	It("should check the value", func() {
		Expect(v.CheckWrite(client, "Enable", "maybe", validate.RoleACS)).
			To(MatchError(model.ErrParamValueType))
		Expect(v.CheckWrite(client, "Status", "Sleeping", validate.RoleCPE)).
			To(MatchError(model.ErrParamEnumeration))
	})

	It("should report unknown parameters", func() {
		Expect(v.CheckWrite(client, "Nope", "1", validate.RoleCPE)).
			To(MatchError(model.ErrParamNotFound))
	})

	It("should reserve the CPE alias prefix", func() {
		alias := string(types.NewCPEAlias())

		Expect(v.CheckWrite(client, "Alias", alias, validate.RoleACS)).
			To(MatchError(types.ErrInvalidAlias))
		Expect(v.CheckWrite(client, "Alias", alias, validate.RoleCPE)).To(Succeed())
		Expect(v.CheckWrite(client, "Alias", "9lives", validate.RoleCPE)).
			To(MatchError(types.ErrInvalidAlias))
	})

	Context("when a parameter has a write precondition", func() {
		It("should follow the controlling parameter", func() {
			route := tr181.NewIPv4Forwarding()
			Expect(v.CheckWrite(route, "DestIPAddress", "10.0.0.0", validate.RoleACS)).To(Succeed())

			route.WithStaticRoute(false)
			Expect(v.CheckWrite(route, "DestIPAddress", "10.0.0.0", validate.RoleACS)).
				To(MatchError(model.ErrParamPrecondition))
			Expect(v.CheckWrite(route, "DestIPAddress", "10.0.0.0", validate.RoleCPE)).To(Succeed())
		})

		It("should check the shared type", func() {
			route := tr181.NewIPv4Forwarding()
			Expect(v.CheckWrite(route, "GatewayIPAddress", "fe80::1", validate.RoleACS)).
				To(MatchError(types.ErrInvalidIPAddress))
		})
	})

	Describe("Write", func() {
		It("should store an accepted value", func() {
			Expect(v.Write(client, "Username", "alice", validate.RoleACS)).To(Succeed())
			Expect(client.Username).To(Equal("alice"))
		})

		It("should leave the object alone on failure", func() {
			Expect(v.Write(client, "Status", "Updated", validate.RoleACS)).NotTo(Succeed())
			Expect(client.Status).To(Equal("Disabled"))
		})
	})

	Describe("Role", func() {
		It("should name the roles", func() {
			Expect(validate.RoleACS.String()).To(Equal("ACS"))
			Expect(validate.RoleCPE.String()).To(Equal("CPE"))
			Expect(validate.Role(7).String()).To(Equal("Unknown"))
		})
	})
})
