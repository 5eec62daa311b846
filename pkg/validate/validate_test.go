package validate_test

import (
	"errors"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cwmp-go/tr069/pkg/model"
	"github.com/cwmp-go/tr069/pkg/tr098"
	"github.com/cwmp-go/tr069/pkg/tr104v2"
	"github.com/cwmp-go/tr069/pkg/tr106"
	"github.com/cwmp-go/tr069/pkg/tr181"
	"github.com/cwmp-go/tr069/pkg/types"
	"github.com/cwmp-go/tr069/pkg/validate"
)

type recorder struct {
	checks     map[string]int
	violations map[string]int
	trees      int
}

func newRecorder() *recorder {
	return &recorder{checks: map[string]int{}, violations: map[string]int{}}
}

func (r *recorder) RecordCheck(object string) { r.checks[object]++ }

func (r *recorder) RecordViolation(object, rule string) { r.violations[object+"/"+rule]++ }

func (r *recorder) ObserveTree(string, time.Duration) { r.trees++ }

func rules(err error) []string {
	var out []string
	for _, v := range validate.Violations(err) {
		out = append(out, v.Rule)
	}
	return out
}

var _ = Describe("Validator", func() {
	var v *validate.Validator

	BeforeEach(func() {
		v = validate.New()
	})

	Describe("Struct", func() {
		Context("when the object holds its defaults", func() {
			It("should accept every object of the model", func() {
				for _, defs := range [][]*model.ObjectDef{tr098.Objects(), tr181.Objects(), tr104v2.Objects()} {
					for _, def := range defs {
						Expect(v.Struct(def.New())).To(Succeed(), def.Name)
					}
				}
			})
		})

		Context("when a field breaks its constraint", func() {
			It("should report a string that is too long", func() {
				c := tr181.NewDynamicDNSClient()
				c.Username = strings.Repeat("u", 300)

				err := v.Struct(c)

				Expect(err).To(MatchError(validate.ErrValidation))
				Expect(errors.Is(err, model.ErrParamTooLong)).To(BeTrue())
				vs := validate.Violations(err)
				Expect(vs).To(HaveLen(1))
				Expect(vs[0].Param).To(Equal("Username"))
				Expect(vs[0].Rule).To(Equal("max"))
			})

			It("should report a value outside the enumeration", func() {
				c := tr181.NewDynamicDNSClient()
				c.Status = "Sleeping"

				err := v.Struct(c)

				Expect(rules(err)).To(ConsistOf("oneof"))
				Expect(errors.Is(err, model.ErrParamEnumeration)).To(BeTrue())
			})

			It("should report numbers out of range", func() {
				f := tr098.NewForwarding()
				f.MTU = 2000
				f.ForwardingMetric = -5

				err := v.Struct(f)

				Expect(rules(err)).To(ConsistOf("max", "min"))
				Expect(errors.Is(err, model.ErrParamOutOfRange)).To(BeTrue())
			})

			It("should run the checks of the shared types", func() {
				f := tr098.NewForwarding().WithDestIPAddress("2001:db8::1")
				c := tr181.NewDynamicDNSClient().WithAlias("1st")

				Expect(errors.Is(v.Struct(f), types.ErrInvalidIPAddress)).To(BeTrue())
				Expect(errors.Is(v.Struct(c), types.ErrInvalidAlias)).To(BeTrue())
			})

			It("should report a list longer than allowed", func() {
				d := tr181.NewDynamicDNS()
				for i := 0; i < 100; i++ {
					d.SupportedServices = append(d.SupportedServices, "dyndns.example.net")
				}

				Expect(rules(v.Struct(d))).To(ConsistOf("listlen"))
			})

			It("should report a value not matching the parameter pattern", func() {
				info := tr106.NewDeviceInfo()
				info.ManufacturerOUI = "00aabb"

				err := v.Struct(info)

				Expect(rules(err)).To(ConsistOf(validate.RulePattern))
				Expect(errors.Is(err, model.ErrParamPattern)).To(BeTrue())

				info.ManufacturerOUI = "00AABB"
				Expect(v.Struct(info)).To(Succeed())
			})
		})

		Context("when an object has cross-parameter rules", func() {
			It("should report a pre-shared key with a passphrase", func() {
				psk := tr098.NewPreSharedKey().
					WithPreSharedKey(types.HexBinary{0x01}).
					WithKeyPassphrase("password")

				err := v.Struct(psk)

				Expect(rules(err)).To(ConsistOf(validate.RuleCheck))
				Expect(errors.Is(err, model.ErrExclusiveParams)).To(BeTrue())
			})
		})

		Context("when an object holds tables", func() {
			It("should report too many entries", func() {
				w := tr098.NewWLANConfiguration()
				for i := 0; i < 11; i++ {
					w.WithPreSharedKey(*tr098.NewPreSharedKey())
				}

				Expect(rules(v.Struct(w))).To(ConsistOf(validate.RuleMaxEntries))
			})

			It("should report entries sharing a unique key", func() {
				d := tr181.NewDynamicDNS().WithClient(
					*tr181.NewDynamicDNSClient().WithAlias("home").WithServer("a"),
					*tr181.NewDynamicDNSClient().WithAlias("home").WithServer("b"),
				)

				err := v.Struct(d)

				Expect(rules(err)).To(ConsistOf(validate.RuleUnique))
				Expect(errors.Is(err, model.ErrDuplicateObject)).To(BeTrue())
			})

			It("should not compare entries with empty keys", func() {
				d := tr181.NewDynamicDNS().WithClient(*tr181.NewDynamicDNSClient(), *tr181.NewDynamicDNSClient())

				Expect(v.Struct(d)).To(Succeed())
			})

			It("should report reused instance numbers", func() {
				d := tr181.NewDynamicDNS().WithClient(
					*tr181.NewDynamicDNSClient().WithAlias("a"),
					*tr181.NewDynamicDNSClient().WithAlias("b"),
				)
				d.Client[0].InstanceNumber = 4
				d.Client[1].InstanceNumber = 4

				Expect(rules(v.Struct(d))).To(ConsistOf(validate.RuleInstance))
			})

			It("should not confuse unnumbered rows with numbered ones", func() {
				r := tr181.NewRouter().WithIPv4Forwarding(
					*tr181.NewIPv4Forwarding().WithDestIPAddress("10.0.0.0").WithDestSubnetMask("255.255.0.0"),
					*tr181.NewIPv4Forwarding().WithDestIPAddress("10.1.0.0").WithDestSubnetMask("255.255.0.0"),
				)
				r.IPv4Forwarding[0].InstanceNumber = 2

				Expect(v.Struct(r)).To(Succeed())
			})

			It("should report a counter that disagrees with the table", func() {
				d := tr181.NewDynamicDNS().
					WithClientNumberOfEntries(3).
					WithClient(*tr181.NewDynamicDNSClient())

				Expect(rules(v.Struct(d))).To(ConsistOf(validate.RuleNumEntries))
			})

			It("should accept a zero counter", func() {
				d := tr181.NewDynamicDNS().WithClient(*tr181.NewDynamicDNSClient())

				Expect(v.Struct(d)).To(Succeed())
			})

			It("should check empty tables only with a registry", func() {
				d := tr181.NewDynamicDNS().WithClientNumberOfEntries(2)
				Expect(v.Struct(d)).To(Succeed())

				reg := model.NewRegistry()
				Expect(tr181.Register(reg)).To(Succeed())
				v = validate.New(validate.WithRegistry(reg))

				Expect(rules(v.Struct(d))).To(ConsistOf(validate.RuleNumEntries))
			})
		})

		Context("when a voice service runs call control", func() {
			It("should accept it", func() {
				s := tr104v2.NewVoiceService().WithCallControl(tr104v2.NewCallControl())

				Expect(v.Struct(s)).To(Succeed())
			})
		})
	})

	Describe("Tree", func() {
		It("should report violations with their concrete paths", func() {
			d := tr181.NewDynamicDNS().WithClient(
				*tr181.NewDynamicDNSClient(),
				*tr181.NewDynamicDNSClient(),
			)
			d.Client[1].Username = strings.Repeat("u", 300)

			err := v.Tree(d, "Device.DynamicDNS.")

			Expect(err).To(HaveOccurred())
			vs := validate.Violations(err)
			Expect(vs).To(HaveLen(1))
			Expect(vs[0].Path).To(Equal("Device.DynamicDNS.Client.2."))
			Expect(err.Error()).To(ContainSubstring("Device.DynamicDNS.Client.2.Username"))
		})

		It("should collect violations from every level", func() {
			d := tr181.NewDynamicDNS().WithClientNumberOfEntries(5).WithClient(
				*tr181.NewDynamicDNSClient().WithHostname(*tr181.NewDynamicDNSHostname().WithName(strings.Repeat("h", 300))),
			)

			err := v.Tree(d, "")

			Expect(rules(err)).To(ConsistOf(validate.RuleNumEntries, "max"))
		})

		It("should accept a valid tree", func() {
			l := tr098.NewLayer3Forwarding().WithForwarding(
				*tr098.NewForwarding().WithDestIPAddress("0.0.0.0").WithDestSubnetMask("0.0.0.0"),
			)

			Expect(v.Tree(l, "InternetGatewayDevice.Layer3Forwarding.")).To(Succeed())
		})
	})

	Describe("Metrics", func() {
		It("should count checks and violations per object", func() {
			rec := newRecorder()
			v = validate.New(validate.WithMetrics(rec))

			d := tr181.NewDynamicDNS().WithClient(*tr181.NewDynamicDNSClient(), *tr181.NewDynamicDNSClient())
			d.Client[0].Status = "Sleeping"

			Expect(v.Tree(d, "Device.DynamicDNS.")).NotTo(Succeed())
			Expect(rec.checks).To(HaveKeyWithValue("DynamicDNS", 1))
			Expect(rec.checks).To(HaveKeyWithValue("DynamicDNSClient", 2))
			Expect(rec.violations).To(HaveKeyWithValue("DynamicDNSClient/oneof", 1))
			Expect(rec.trees).To(Equal(1))
		})
	})
})
