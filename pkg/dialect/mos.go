package dialect

// cannotTranslate is substituted for canonical commands that have no MOS
// equivalent. The device rejects it, which surfaces the gap at the point of
// use instead of silently running the wrong command.
const cannotTranslate = "CAN NOT TRANSLATE"

// MOSRules returns the default EOS→MOS command rewrite table. Order
// matters: the ap1/ forms must be tried before the generic "l1 source
// interface" forms.
func MOSRules() []Rule {
	return []Rule{
		{Pattern: `interface ap1/(.*)`, Replace: `interface ap$1`},
		{Pattern: `l1 source interface ap1/(.*)`, Replace: `source ap$1`},
		{Pattern: `l1 source interface ap(.*)`, Replace: cannotTranslate},
		{Pattern: `l1 source interface (.*)`, Replace: `source $1`},
		{Pattern: `l1 source mac`, Replace: `source mac`},
		{Pattern: `no l1 source`, Replace: `no source`},
		{Pattern: `bash sudo cortina`, Replace: cannotTranslate},
		{Pattern: `traffic-loopback source network device phy`, Replace: `loopback internal`},
		{Pattern: `traffic-loopback source system device phy`, Replace: `loopback`},
		{Pattern: `no traffic-loopback`, Replace: `no loopback`},
	}
}

// NewMOSTranslator returns the standard translator for MOS devices:
// EOS-canonical commands rewritten with MOSRules and camelCase reply keys
// normalized to snake_case.
func NewMOSTranslator() (*Translator, error) {
	return NewTranslator(EOS, map[Dialect][]Rule{MOS: MOSRules()}, SnakeCaseKeys)
}
