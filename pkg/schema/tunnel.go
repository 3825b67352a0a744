package schema

type NatRule struct {
	Chain   string `json:"chain"`
	Rule    string `json:"rule"`
	Present bool   `json:"present"`
}

type Tunnel struct {
	Role     string    `json:"role,omitempty"`
	Device   string    `json:"device"`
	Type     string    `json:"type,omitempty"`
	State    string    `json:"state"`
	Up       bool      `json:"up"`
	Local    string    `json:"local,omitempty"`
	Remote   string    `json:"remote,omitempty"`
	Prefix   string    `json:"prefix,omitempty"`
	Ttl      int       `json:"ttl,omitempty"`
	Mtu      int       `json:"mtu,omitempty"`
	Address  []string  `json:"address,omitempty"`
	Hook     string    `json:"hook,omitempty"`
	HookFile string    `json:"hookFile,omitempty"`
	Rules    []NatRule `json:"rules,omitempty"`
}
