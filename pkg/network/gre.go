package network

// GreLink is the state of a GRE tunnel device as seen by the kernel.
type GreLink struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	State   string   `json:"state"`
	Local   string   `json:"local,omitempty"`
	Remote  string   `json:"remote,omitempty"`
	Ttl     int      `json:"ttl,omitempty"`
	Mtu     int      `json:"mtu,omitempty"`
	Address []string `json:"address,omitempty"`
}

func (l *GreLink) Up() bool {
	return l.State == "up" || l.State == "unknown"
}

// Links manages tunnel devices.
type Links interface {
	Show(name string) (*GreLink, error)
	Delete(name string) error
}

var _ Links = (*Netlink)(nil)
