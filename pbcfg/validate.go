package pbcfg

// Validate checks that c has all [Mandatory] keys, that the plugin name is
// usable and that the tool commands can be parsed. Every problem is
// reported, not only the first one.
func Validate(c *Config) (probs Problems) {
	for _, k := range Mandatory {
		v := c.Lookup(k)
		if k == KeyName {
			v = checkName(v)
		}
		if !v.Present() {
			probs = append(probs, v.Err)
		}
	}
	for _, opt := range ToolOptions {
		v := c.Get(SectionTools, opt)
		if !v.Present() || len(v.Tokens()) == 0 {
			continue
		}
		if _, err := parseToolCmd(v.Raw); err != nil {
			probs = append(probs, &MalformedValue{Key: v.Key, Value: v.Raw, Reason: err.Error()})
		}
	}
	return probs
}
